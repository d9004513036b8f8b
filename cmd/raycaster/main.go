package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/raycaster/internal/audio"
	"chosenoffset.com/raycaster/internal/simulation"
)

var (
	flagConfig  string
	flagRays    int
	flagWorkers int
	flagSound   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "raycaster",
		Short: "Raycaster - a light casting rays around a bouncing obstacle",
		Long: `Raycaster fires a fan of rays from a point light across a bounded plane.
Rays stop at the edge of the plane or when they enter a circular obstacle that
bounces up and down, leaving its shadow behind.

Drag with the left mouse button to move the light. Esc or q quits.`,
		SilenceUsage: true,
		RunE:         runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "raycaster.json", "Scene configuration file (defaults are used if it does not exist)")
	rootCmd.PersistentFlags().IntVar(&flagRays, "rays", 0, "Override the number of rays")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Override the number of goroutines casting rays")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Click when the obstacle bounces")

	rootCmd.AddCommand(newTermCmd(), newHeadlessCmd())

	return rootCmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*simulation.Config, error) {
	cfg, err := simulation.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("rays") {
		cfg.Rays.Count = flagRays
	}
	if flags.Changed("workers") {
		cfg.Rays.Workers = flagWorkers
	}
	if flags.Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSimulation builds the simulation and, when enabled, the bounce click.
// The returned cleanup must always be called.
func newSimulation(cfg *simulation.Config) (*simulation.Simulation, func(), error) {
	sim, err := simulation.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	if !cfg.Sound.Enabled {
		return sim, func() {}, nil
	}

	cue, closeSpeaker, err := audio.OpenSpeaker(audio.Config{
		Frequency: cfg.Sound.Frequency,
		Duration:  time.Duration(cfg.Sound.DurationMS) * time.Millisecond,
		Volume:    cfg.Sound.Volume,
	})
	if err != nil {
		log.Printf("Warning: sound disabled: %v", err)
		return sim, func() {}, nil
	}
	sim.SetBounceListener(cue)
	return sim, func() {
		log.Printf("Played %d bounce clicks", cue.Played())
		closeSpeaker()
	}, nil
}
