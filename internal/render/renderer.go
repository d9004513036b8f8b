package render

import "image/color"

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. The simulation never touches it directly; it only draws
// the finished frame and the debug overlay.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	// Properties
	Size() (width, height int)

	// Fill paints the whole image with clr.
	Fill(clr color.Color)

	// WritePixels replaces the whole image with RGBA bytes (4 per pixel, row major).
	WritePixels(pix []byte)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	// TranslateX and TranslateY offset the source on the destination.
	TranslateX, TranslateY float64
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the simulator reacts to
const (
	KeyEscape Key = iota
	KeyQ
	KeyH // HUD toggle
)

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft drags the light.
const MouseButtonLeft MouseButton = 0

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the simulation by one tick. Returning ErrQuit ends the loop cleanly.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
