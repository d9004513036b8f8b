// Package raster is an in-memory RGBA frame buffer that implements render.Canvas.
// The window and terminal backends draw into it and copy it out on Present;
// headless runs read it back directly.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Canvas is a fixed-size RGBA frame.
type Canvas struct {
	img       *image.RGBA
	onPresent func(*image.RGBA)
}

// New creates a width x height canvas cleared to transparent black.
func New(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// OnPresent registers the hook called with the frame every time Present runs.
func (c *Canvas) OnPresent(fn func(*image.RGBA)) {
	c.onPresent = fn
}

// Size returns the canvas dimensions in pixels
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints every pixel with clr.
func (c *Canvas) Clear(clr color.Color) {
	rgba := toRGBA(clr)
	pix := c.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = rgba.R, rgba.G, rgba.B, rgba.A
	// Double the filled prefix until the buffer is covered.
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// FillRect paints a w x h rectangle at (x, y), clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, clr color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	rgba := toRGBA(clr)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		off := c.img.PixOffset(r.Min.X, py)
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.Pix[off+0] = rgba.R
			c.img.Pix[off+1] = rgba.G
			c.img.Pix[off+2] = rgba.B
			c.img.Pix[off+3] = rgba.A
			off += 4
		}
	}
}

// Present hands the frame to the registered hook.
func (c *Canvas) Present() {
	if c.onPresent != nil {
		c.onPresent(c.img)
	}
}

// Image exposes the underlying frame. Callers must not keep it across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Count returns how many pixels currently hold exactly clr.
func (c *Canvas) Count(clr color.Color) int {
	want := toRGBA(clr)
	n := 0
	for i := 0; i+3 < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] == want.R && c.img.Pix[i+1] == want.G && c.img.Pix[i+2] == want.B && c.img.Pix[i+3] == want.A {
			n++
		}
	}
	return n
}

// WritePNG encodes the current frame as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

func toRGBA(clr color.Color) color.RGBA {
	if rgba, ok := clr.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
