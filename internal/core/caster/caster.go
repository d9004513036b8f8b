// Package caster steps rays across the plane until they leave it or enter the obstacle.
package caster

import (
	"errors"
	"fmt"
	"image/color"
	"iter"
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// Termination describes where a ray is in its walk.
type Termination int

const (
	Traveling Termination = iota
	StoppedAtBoundary
	StoppedAtObstacle
)

func (t Termination) String() string {
	switch t {
	case Traveling:
		return "traveling"
	case StoppedAtBoundary:
		return "boundary"
	case StoppedAtObstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

var (
	ErrInvalidStep      = errors.New("ray step size must be a positive finite number")
	ErrInvalidBounds    = errors.New("plane bounds must be positive and finite")
	ErrInvalidThickness = errors.New("ray thickness must be positive")
)

// Caster walks rays across a fixed plane with a fixed step.
type Caster struct {
	bounds    geometry.Bounds
	step      float64
	thickness int
	maxSteps  int
}

// New creates a Caster. A non-positive step or unbounded plane would let a ray
// walk forever, so both are rejected here instead of at cast time.
func New(bounds geometry.Bounds, step float64, thickness int) (*Caster, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	if !(bounds.Width > 0) || !(bounds.Height > 0) || math.IsInf(bounds.Width, 0) || math.IsInf(bounds.Height, 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidBounds, bounds.Width, bounds.Height)
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThickness, thickness)
	}

	// Any ray still inside the plane after its first step leaves it within one
	// diagonal. The slack covers accumulated rounding.
	diagonal := math.Hypot(bounds.Width, bounds.Height)
	maxSteps := 2*int(math.Ceil(diagonal/step)) + 2

	return &Caster{
		bounds:    bounds,
		step:      step,
		thickness: thickness,
		maxSteps:  maxSteps,
	}, nil
}

// Thickness returns the side of the square drawn for each visited point
func (c *Caster) Thickness() int {
	return c.thickness
}

// Cast walks a single ray against the obstacle, calling visit for every point
// reached, and returns how the ray stopped.
//
// The ray advances before it is tested, so its origin is never checked: a ray
// born inside the obstacle or off the plane still takes one step.
func (c *Caster) Cast(r geometry.Ray, obstacle geometry.Circle, visit func(geometry.Point)) Termination {
	state := StoppedAtBoundary
	for p, st := range c.Points(r, obstacle) {
		if visit != nil {
			visit(p)
		}
		state = st
	}
	return state
}

// classify tests a freshly stepped position. Boundary wins when both apply,
// which only changes the reported reason, never the emitted points.
func (c *Caster) classify(x, y float64, obstacle geometry.Circle) Termination {
	if x < 0 || x > c.bounds.Width {
		return StoppedAtBoundary
	}
	if y < 0 || y > c.bounds.Height {
		return StoppedAtBoundary
	}
	if geometry.PointInsideCircle(x, y, obstacle) {
		return StoppedAtObstacle
	}
	return Traveling
}

// Points lazily yields every point the ray visits together with the ray's
// state after reaching it. The final pair carries the terminal state.
func (c *Caster) Points(r geometry.Ray, obstacle geometry.Circle) iter.Seq2[geometry.Point, Termination] {
	return func(yield func(geometry.Point, Termination) bool) {
		dx := c.step * math.Cos(r.Angle)
		dy := c.step * math.Sin(r.Angle)
		x, y := r.X, r.Y

		for i := 0; i < c.maxSteps; i++ {
			x += dx
			y += dy

			state := c.classify(x, y, obstacle)
			if i == c.maxSteps-1 && state == Traveling {
				state = StoppedAtBoundary
			}
			if !yield(geometry.Point{X: x, Y: y}, state) || state != Traveling {
				return
			}
		}
	}
}

// Draw casts the ray and stamps a thickness x thickness square at every
// visited point.
func (c *Caster) Draw(dst geometry.RectFiller, r geometry.Ray, obstacle geometry.Circle, clr color.Color) Termination {
	return c.Cast(r, obstacle, func(p geometry.Point) {
		dst.FillRect(int(p.X), int(p.Y), c.thickness, c.thickness, clr)
	})
}
