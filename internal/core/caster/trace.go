package caster

import (
	"context"
	"image/color"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/rays"
)

// Trace is the recorded walk of one ray.
type Trace struct {
	Points      []geometry.Point
	Termination Termination
}

// Trace casts a ray and records every visited point.
func (c *Caster) Trace(r geometry.Ray, obstacle geometry.Circle) Trace {
	var tr Trace
	tr.Termination = c.Cast(r, obstacle, func(p geometry.Point) {
		tr.Points = append(tr.Points, p)
	})
	return tr
}

// TraceBundle casts every ray of the bundle, spreading the work across up to
// workers goroutines. Results are indexed like the bundle regardless of the
// order in which rays finish.
func (c *Caster) TraceBundle(ctx context.Context, bundle rays.Bundle, obstacle geometry.Circle, workers int) ([]Trace, error) {
	traces := make([]Trace, bundle.Len())

	if workers <= 1 {
		for i, r := range bundle.All() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			traces[i] = c.Trace(r, obstacle)
		}
		return traces, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range bundle.Len() {
		r := bundle.At(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			traces[i] = c.Trace(r, obstacle)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}

// DrawTraces stamps recorded traces onto dst in bundle order.
func (c *Caster) DrawTraces(dst geometry.RectFiller, traces []Trace, clr color.Color) {
	for _, tr := range traces {
		for _, p := range tr.Points {
			dst.FillRect(int(p.X), int(p.Y), c.thickness, c.thickness, clr)
		}
	}
}
