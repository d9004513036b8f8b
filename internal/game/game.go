package game

import (
	"context"
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/raster"
	"chosenoffset.com/raycaster/internal/simulation"
)

// Game adapts a Simulation to the engine's Update/Draw loop.
// Update runs one simulation tick into an offscreen frame; Draw shows it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Sim          *simulation.Simulation
	Frame        *raster.Canvas
	FrameImg     render.Image
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Input        render.InputSource
	Background   color.Color

	// UI state
	ShowHUD   bool
	LastStats simulation.FrameStats
	Messages  []Message

	ctx context.Context
}

// NewGame creates a Game that polls input through inputMgr.
func NewGame(ctx context.Context, sim *simulation.Simulation, r render.Renderer, inputMgr render.InputManager) *Game {
	cfg := sim.Config()
	g := &Game{
		ScreenWidth:  cfg.Plane.Width,
		ScreenHeight: cfg.Plane.Height,
		Sim:          sim,
		Frame:        raster.New(cfg.Plane.Width, cfg.Plane.Height),
		Renderer:     r,
		InputMgr:     inputMgr,
		Input:        render.NewPointerInput(inputMgr, cfg.Plane.Width, cfg.Plane.Height),
		Background:   sim.Palette().Background,
		ShowHUD:      true,
		ctx:          ctx,
	}
	g.Frame.OnPresent(g.upload)
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	dt := 1.0 / float64(g.Sim.Config().TPS())

	// Update message timers
	g.updateMessages(dt)

	// Toggle HUD with H key
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.ShowHUD = !g.ShowHUD
		if g.ShowHUD {
			g.ShowMessage("HUD on")
		}
	}

	stats, err := g.Sim.Tick(g.ctx, g.Frame, g.Input.Poll())
	if err != nil {
		return err
	}
	g.LastStats = stats

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// upload copies a presented frame into the GPU-side image.
func (g *Game) upload(img *image.RGBA) {
	if g.FrameImg == nil {
		g.FrameImg = g.Renderer.NewImage(g.Frame.Size())
	}
	g.FrameImg.WritePixels(img.Pix)
}

// updateMessages ages on-screen messages and drops expired ones.
func (g *Game) updateMessages(dt float64) {
	alive := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			alive = append(alive, msg)
		}
	}
	g.Messages = alive
}

// ShowMessage displays a message on screen for a couple of seconds.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 2.0,
	})
}

// Close releases the uploaded frame.
func (g *Game) Close() {
	if g.FrameImg != nil {
		g.FrameImg.Dispose()
		g.FrameImg = nil
	}
}
