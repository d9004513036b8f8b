// Package term shows the simulation in a terminal through tcell.
//
// Frames are drawn into a raster canvas at full plane resolution and then
// averaged down to character cells. Each cell shows two plane rows using an
// upper half block, foreground for the top half and background for the bottom.
package term

import (
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/raster"
)

const halfBlock = '▀'

// Screen is both the Canvas and the InputSource for a terminal run.
type Screen struct {
	screen tcell.Screen
	frame  *raster.Canvas
	width  int
	height int

	mu      sync.Mutex
	pending []render.Event
	done    chan struct{}
}

// New wraps an initialised tcell screen showing a width x height plane.
func New(screen tcell.Screen, width, height int) *Screen {
	s := &Screen{
		screen: screen,
		frame:  raster.New(width, height),
		width:  width,
		height: height,
		done:   make(chan struct{}),
	}
	s.frame.OnPresent(s.show)
	return s
}

// Start enables mouse reporting and begins collecting events in the background.
func (s *Screen) Start() {
	s.screen.EnableMouse()
	s.screen.HideCursor()

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}

			events := s.translate(ev)
			if len(events) == 0 {
				continue
			}
			s.mu.Lock()
			s.pending = append(s.pending, events...)
			s.mu.Unlock()
		}
	}()
}

// Close restores the terminal.
func (s *Screen) Close() {
	close(s.done)
	s.screen.Fini()
}

// Clear implements render.Canvas.
func (s *Screen) Clear(clr color.Color) {
	s.frame.Clear(clr)
}

// FillRect implements render.Canvas.
func (s *Screen) FillRect(x, y, w, h int, clr color.Color) {
	s.frame.FillRect(x, y, w, h, clr)
}

// Present implements render.Canvas.
func (s *Screen) Present() {
	s.frame.Present()
}

// Poll implements render.InputSource.
func (s *Screen) Poll() []render.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.pending
	s.pending = nil
	return events
}

// translate maps a tcell event to simulator events.
func (s *Screen) translate(ev tcell.Event) []render.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return []render.Event{render.Quit()}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return nil
		}
		cx, cy := ev.Position()
		x, y := s.cellToPlane(cx, cy)
		return []render.Event{render.DragTo(x, y)}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return nil
}

// cellToPlane maps the centre of a character cell to plane coordinates,
// clamped to the plane.
func (s *Screen) cellToPlane(cx, cy int) (float64, float64) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}

	x := int((float64(cx) + 0.5) * float64(s.width) / float64(cols))
	y := int((float64(cy) + 0.5) * float64(s.height) / float64(rows))
	return float64(clamp(x, 0, s.width-1)), float64(clamp(y, 0, s.height-1))
}

// show downsamples the frame onto the terminal.
func (s *Screen) show(img *image.RGBA) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := s.average(img, cx, 2*cy, cols, 2*rows)
			bottom := s.average(img, cx, 2*cy+1, cols, 2*rows)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	s.screen.Show()
}

// average returns the mean colour of the plane region covered by sub-cell
// (col, row) of a cols x rows grid.
func (s *Screen) average(img *image.RGBA, col, row, cols, rows int) color.RGBA {
	x0 := col * s.width / cols
	x1 := (col + 1) * s.width / cols
	y0 := row * s.height / rows
	y1 := (row + 1) * s.height / rows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, b, n int
	for y := y0; y < y1 && y < s.height; y++ {
		for x := x0; x < x1 && x < s.width; x++ {
			c := img.RGBAAt(x, y)
			r += int(c.R)
			g += int(c.G)
			b += int(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 0xff}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
