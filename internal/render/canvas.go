package render

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrQuit is returned when the user asked to stop. Loops treat it as a clean exit.
var ErrQuit = errors.New("quit requested")

// Canvas is the drawing surface the simulation renders a frame onto.
type Canvas interface {
	// Clear paints the whole surface with clr.
	Clear(clr color.Color)

	// FillRect paints a w x h rectangle whose top-left pixel is (x, y).
	// Parts outside the surface are clipped.
	FillRect(x, y, w, h int, clr color.Color)

	// Present makes the finished frame visible.
	Present()
}

// EventKind tags an input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventDragTo
)

// Event is a single user input. X and Y are plane coordinates and only set for EventDragTo.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Quit returns a quit event
func Quit() Event {
	return Event{Kind: EventQuit}
}

// DragTo returns a drag event at (x, y)
func DragTo(x, y float64) Event {
	return Event{Kind: EventDragTo, X: x, Y: y}
}

func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "quit"
	case EventDragTo:
		return fmt.Sprintf("drag(%.0f, %.0f)", e.X, e.Y)
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}

// InputSource reports the events that arrived since the previous poll.
type InputSource interface {
	Poll() []Event
}

// PointerInput turns key and mouse state from an InputManager into simulator
// events. Escape or Q quits; holding the left button reports a drag on every
// poll, with the cursor clamped to the plane.
type PointerInput struct {
	mgr           InputManager
	width, height int
}

// NewPointerInput creates a PointerInput for a plane of the given pixel size.
func NewPointerInput(mgr InputManager, width, height int) *PointerInput {
	return &PointerInput{mgr: mgr, width: width, height: height}
}

// Poll implements InputSource.
func (p *PointerInput) Poll() []Event {
	var events []Event

	if p.mgr.IsKeyJustPressed(KeyEscape) || p.mgr.IsKeyJustPressed(KeyQ) {
		events = append(events, Quit())
	}

	if p.mgr.IsMouseButtonPressed(MouseButtonLeft) {
		x, y := p.mgr.GetCursorPosition()
		events = append(events, DragTo(float64(clamp(x, 0, p.width-1)), float64(clamp(y, 0, p.height-1))))
	}

	return events
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

// ScriptedInput replays a fixed list of per-poll event batches, then reports nothing.
// Headless runs and tests drive the simulation with it.
type ScriptedInput struct {
	batches [][]Event
	next    int
}

// NewScriptedInput creates a ScriptedInput. Batch i is returned by the i-th Poll.
func NewScriptedInput(batches ...[]Event) *ScriptedInput {
	return &ScriptedInput{batches: batches}
}

// Poll implements InputSource.
func (s *ScriptedInput) Poll() []Event {
	if s.next >= len(s.batches) {
		return nil
	}
	b := s.batches[s.next]
	s.next++
	return b
}
