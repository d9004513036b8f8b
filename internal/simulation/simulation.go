package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chosenoffset.com/raycaster/internal/core/caster"
	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/motion"
	"chosenoffset.com/raycaster/internal/core/rays"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/palette"
)

// State is everything that survives from one tick to the next.
type State struct {
	Light    geometry.Circle
	Obstacle geometry.Circle
	Velocity float64
	Bundle   rays.Bundle
}

// FrameStats summarises a single tick.
type FrameStats struct {
	Tick    int
	Rays    int
	Blocked int // rays stopped by the obstacle
	Escaped int // rays stopped by the plane boundary
	Points  int // points emitted across all rays
	Contact motion.Contact
}

// BounceListener is told whenever the obstacle touches the top or bottom edge.
type BounceListener interface {
	Bounce(contact motion.Contact)
}

// Simulation owns the scene and runs it one tick at a time.
type Simulation struct {
	cfg     *Config
	caster  *caster.Caster
	palette palette.Palette
	state   State
	tick    int

	listener BounceListener
}

// New validates cfg and builds the initial scene.
func New(cfg *Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := caster.New(cfg.Bounds(), cfg.Rays.Step, cfg.Rays.Thickness)
	if err != nil {
		return nil, fmt.Errorf("failed to create ray caster: %w", err)
	}

	pal, err := cfg.ParsePalette()
	if err != nil {
		return nil, err
	}

	light := geometry.Circle{X: cfg.Light.X, Y: cfg.Light.Y, R: cfg.Light.R}
	obstacle := geometry.Circle{X: cfg.Obstacle.X, Y: cfg.Obstacle.Y, R: cfg.Obstacle.R}

	return &Simulation{
		cfg:     cfg,
		caster:  c,
		palette: pal,
		state: State{
			Light:    light,
			Obstacle: obstacle,
			Velocity: cfg.Obstacle.Speed,
			Bundle:   rays.Generate(light, cfg.Rays.Count),
		},
	}, nil
}

// SetBounceListener registers l to hear about obstacle contacts. nil disables it.
func (s *Simulation) SetBounceListener(l BounceListener) {
	s.listener = l
}

// State returns a copy of the current scene
func (s *Simulation) State() State {
	return s.state
}

// Config returns the configuration the simulation was built from
func (s *Simulation) Config() *Config {
	return s.cfg
}

// Palette returns the colours frames are drawn with
func (s *Simulation) Palette() palette.Palette {
	return s.palette
}

// MoveLight places the light at (x, y) and regenerates the bundle from there.
func (s *Simulation) MoveLight(x, y float64) {
	s.state.Light.X = x
	s.state.Light.Y = y
	s.state.Bundle = rays.Generate(s.state.Light, s.cfg.Rays.Count)
}

// Tick runs one frame: handle input, clear, cast every ray against the
// obstacle's current position, fill the obstacle then the light, move the
// obstacle, present.
//
// A quit event returns render.ErrQuit before anything is drawn.
func (s *Simulation) Tick(ctx context.Context, canvas render.Canvas, events []render.Event) (FrameStats, error) {
	dragged := false
	var dragX, dragY float64
	for _, ev := range events {
		switch ev.Kind {
		case render.EventQuit:
			return FrameStats{}, render.ErrQuit
		case render.EventDragTo:
			dragged = true
			dragX, dragY = ev.X, ev.Y
		}
	}
	// Only the latest drag applies.
	if dragged {
		s.MoveLight(dragX, dragY)
	}

	s.tick++
	stats := FrameStats{Tick: s.tick, Rays: s.state.Bundle.Len()}

	canvas.Clear(s.palette.Background)

	if err := s.castRays(ctx, canvas, &stats); err != nil {
		return stats, err
	}

	geometry.FillCircle(canvas, s.state.Obstacle, s.palette.Shape)
	geometry.FillCircle(canvas, s.state.Light, s.palette.Shape)

	s.state.Obstacle, s.state.Velocity, stats.Contact = motion.Advance(s.state.Obstacle, s.state.Velocity, float64(s.cfg.Plane.Height))
	if stats.Contact != motion.ContactNone && s.listener != nil {
		s.listener.Bounce(stats.Contact)
	}

	canvas.Present()
	return stats, nil
}

func (s *Simulation) castRays(ctx context.Context, canvas render.Canvas, stats *FrameStats) error {
	count := func(t caster.Termination) {
		switch t {
		case caster.StoppedAtObstacle:
			stats.Blocked++
		case caster.StoppedAtBoundary:
			stats.Escaped++
		}
	}

	if s.cfg.Rays.Workers <= 1 {
		for _, r := range s.state.Bundle.All() {
			t := s.caster.Cast(r, s.state.Obstacle, func(p geometry.Point) {
				stats.Points++
				canvas.FillRect(int(p.X), int(p.Y), s.caster.Thickness(), s.caster.Thickness(), s.palette.Ray)
			})
			count(t)
		}
		return nil
	}

	traces, err := s.caster.TraceBundle(ctx, s.state.Bundle, s.state.Obstacle, s.cfg.Rays.Workers)
	if err != nil {
		return fmt.Errorf("failed to cast rays: %w", err)
	}
	for _, tr := range traces {
		stats.Points += len(tr.Points)
		count(tr.Termination)
	}
	s.caster.DrawTraces(canvas, traces, s.palette.Ray)
	return nil
}

// Run ticks at a fixed interval until the input asks to quit or ctx ends.
// A quit is a normal stop and returns nil.
func (s *Simulation) Run(ctx context.Context, canvas render.Canvas, input render.InputSource, interval time.Duration) error {
	for {
		if _, err := s.Tick(ctx, canvas, input.Poll()); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
