package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"chosenoffset.com/raycaster/internal/render/term"
)

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the simulation in the terminal",
		Long:  "Runs the simulation inside the terminal using half-block characters. Drag with the mouse to move the light; Esc, q or Ctrl-C quits.",
		RunE:  runTerm,
	}
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sim, cleanup, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}

	ts := term.New(screen, cfg.Plane.Width, cfg.Plane.Height)
	ts.Start()
	defer ts.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = sim.Run(ctx, ts, ts, cfg.TickInterval())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
