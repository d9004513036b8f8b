package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
)

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sim, cleanup, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.NewGame(context.Background(), sim, renderer, inputMgr)
	defer g.Close()

	engine.SetWindowSize(cfg.Plane.Width, cfg.Plane.Height)
	engine.SetWindowTitle(fmt.Sprintf("Raycaster - %d rays", cfg.Rays.Count))
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.TPS())

	log.Printf("Starting window: %dx%d, %d rays, %d TPS", cfg.Plane.Width, cfg.Plane.Height, cfg.Rays.Count, cfg.TPS())
	return engine.RunGame(g)
}
