package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/raster"
	"chosenoffset.com/raycaster/internal/ui/report"
)

var (
	flagTicks    int
	flagDrags    []string
	flagSnapshot string
)

func newHeadlessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the simulation without a display and print a summary",
		Long: `Runs a fixed number of ticks into an in-memory frame, as fast as possible.
Each --drag moves the light on the next tick, in order. The last frame can be
saved as a PNG with --snapshot.`,
		RunE: runHeadless,
	}

	cmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to run")
	cmd.Flags().StringArrayVar(&flagDrags, "drag", nil, "Light position x,y applied on successive ticks (repeatable)")
	cmd.Flags().StringVar(&flagSnapshot, "snapshot", "", "Write the last frame to this PNG file")

	return cmd
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	batches, err := parseDrags(flagDrags, cfg.Plane.Width, cfg.Plane.Height)
	if err != nil {
		return err
	}

	sim, cleanup, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	canvas := raster.New(cfg.Plane.Width, cfg.Plane.Height)
	input := render.NewScriptedInput(batches...)

	var summary report.Summary
	start := time.Now()
	for i := 0; i < flagTicks; i++ {
		stats, err := sim.Tick(contextOrBackground(cmd.Context()), canvas, input.Poll())
		if err != nil {
			return err
		}
		summary.Add(stats)
	}
	summary.Elapsed = time.Since(start)
	summary.Final = sim.State()
	summary.Lit = canvas.Count(sim.Palette().Ray)

	if flagSnapshot != "" {
		if err := writeSnapshot(canvas, flagSnapshot); err != nil {
			return err
		}
		log.Printf("Wrote snapshot to %s", flagSnapshot)
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.Render())
	return nil
}

// parseDrags turns "x,y" strings into one drag event batch each, clamped to a
// width x height plane like pointer drags.
func parseDrags(drags []string, width, height int) ([][]render.Event, error) {
	batches := make([][]render.Event, 0, len(drags))
	for _, d := range drags {
		xs, ys, ok := strings.Cut(d, ",")
		if !ok {
			return nil, fmt.Errorf("invalid --drag %q: expected x,y", d)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --drag %q: %w", d, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --drag %q: %w", d, err)
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return nil, fmt.Errorf("invalid --drag %q: not a number", d)
		}
		x = min(max(x, 0), float64(width-1))
		y = min(max(y, 0), float64(height-1))
		batches = append(batches, []render.Event{render.DragTo(x, y)})
	}
	return batches, nil
}

func writeSnapshot(canvas *raster.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// contextOrBackground keeps Tick happy when the command runs without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
