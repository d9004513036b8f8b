package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Background)

	// Step 1: The frame built by the last tick, centred on the screen
	if g.FrameImg != nil {
		sw, sh := screen.Size()
		fw, fh := g.FrameImg.Size()
		screen.DrawImage(g.FrameImg, &render.DrawImageOptions{
			TranslateX: float64((sw - fw) / 2),
			TranslateY: float64((sh - fh) / 2),
		})
	}

	// Step 2: Overlays
	if g.ShowHUD {
		g.drawHUD(screen)
	}
	g.drawMessages(screen)
}

// HUDLine summarises the last tick.
func (g *Game) HUDLine() string {
	light := g.Sim.State().Bundle.Origin()
	return fmt.Sprintf("rays %d  blocked %d  light (%.0f, %.0f)  drag to move, H hides, Esc quits",
		g.LastStats.Rays, g.LastStats.Blocked, light.X, light.Y)
}

func (g *Game) drawHUD(screen render.Image) {
	g.Renderer.DrawText(screen, g.HUDLine(), 8, 4, color.White, 1.0)
}

func (g *Game) drawMessages(screen render.Image) {
	_, sh := screen.Size()
	_, h := g.Renderer.MeasureText("M", 1.0)
	y := sh - 8 - h*len(g.Messages)
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, 8, y, color.White, 1.0)
		y += h
	}
}
