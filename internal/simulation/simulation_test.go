package simulation

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/motion"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/raster"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	amber = color.RGBA{0xff, 0xd4, 0x3b, 0xff}
)

type bounceLog struct {
	contacts []motion.Contact
}

func (b *bounceLog) Bounce(c motion.Contact) {
	b.contacts = append(b.contacts, c)
}

// countFrames counts how often the canvas is presented.
func countFrames(c *raster.Canvas) *int {
	n := new(int)
	c.OnPresent(func(*image.RGBA) { *n++ })
	return n
}

func newSim(t *testing.T, mutate func(*Config)) (*Simulation, *raster.Canvas) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create simulation: %v", err)
	}
	return sim, raster.New(cfg.Plane.Width, cfg.Plane.Height)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rays.Step = 0

	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestReferenceSceneTick(t *testing.T) {
	sim, canvas := newSim(t, nil)
	frames := countFrames(canvas)

	stats, err := sim.Tick(context.Background(), canvas, nil)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if stats.Rays != 500 {
		t.Errorf("Expected 500 rays, got %d", stats.Rays)
	}
	if stats.Blocked <= 0 || stats.Blocked >= stats.Rays {
		t.Errorf("Expected 0 < blocked < %d, got %d", stats.Rays, stats.Blocked)
	}
	if stats.Blocked+stats.Escaped != stats.Rays {
		t.Errorf("Expected every ray to terminate, got %d blocked + %d escaped", stats.Blocked, stats.Escaped)
	}
	if *frames != 1 {
		t.Errorf("Expected 1 presented frame, got %d", *frames)
	}

	// Shapes are drawn over the rays.
	if got := canvas.Image().RGBAAt(200, 200); got != white {
		t.Errorf("Expected light centre to be white, got %v", got)
	}
	if got := canvas.Image().RGBAAt(550, 300); got != white {
		t.Errorf("Expected obstacle centre to be white, got %v", got)
	}
	if got := canvas.Image().RGBAAt(300, 200); got != amber {
		t.Errorf("Expected ray colour to the right of the light, got %v", got)
	}
	// Directly behind the obstacle, as seen from the light, stays dark.
	if got := canvas.Image().RGBAAt(1000, 420); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("Expected shadow behind the obstacle, got %v", got)
	}

	st := sim.State()
	if st.Obstacle.Y != 303 || st.Velocity != 3 {
		t.Errorf("Expected obstacle to move to y=303 at v=3, got y=%v v=%v", st.Obstacle.Y, st.Velocity)
	}
}

func TestQuitStopsBeforeDrawing(t *testing.T) {
	sim, canvas := newSim(t, nil)
	frames := countFrames(canvas)
	before := sim.State()

	_, err := sim.Tick(context.Background(), canvas, []render.Event{render.DragTo(10, 10), render.Quit()})
	if !errors.Is(err, render.ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}
	if *frames != 0 {
		t.Errorf("Expected no frame presented, got %d", *frames)
	}
	if sim.State().Obstacle != before.Obstacle || sim.State().Light != before.Light {
		t.Error("Expected scene to be unchanged after quit")
	}
}

func TestDragRegeneratesBundle(t *testing.T) {
	sim, canvas := newSim(t, nil)

	_, err := sim.Tick(context.Background(), canvas, []render.Event{render.DragTo(50, 60), render.DragTo(900, 100)})
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	st := sim.State()
	if st.Light.X != 900 || st.Light.Y != 100 {
		t.Errorf("Expected light at last drag (900, 100), got (%v, %v)", st.Light.X, st.Light.Y)
	}
	if st.Light.R != 40 {
		t.Errorf("Expected light radius unchanged, got %v", st.Light.R)
	}
	if st.Bundle.Len() != 500 {
		t.Errorf("Expected 500 rays, got %d", st.Bundle.Len())
	}
	for i, r := range st.Bundle.All() {
		if r.X != 900 || r.Y != 100 {
			t.Fatalf("Ray %d: expected origin (900, 100), got (%v, %v)", i, r.X, r.Y)
		}
	}
	if got := canvas.Image().RGBAAt(900, 100); got != white {
		t.Errorf("Expected light drawn at the new position, got %v", got)
	}
}

func TestTopContactFlipsVelocityAndNotifies(t *testing.T) {
	sim, canvas := newSim(t, func(c *Config) {
		c.Obstacle.Y = 10
		c.Obstacle.R = 40
		c.Obstacle.Speed = 3
	})
	log := &bounceLog{}
	sim.SetBounceListener(log)

	stats, err := sim.Tick(context.Background(), canvas, nil)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if sim.State().Velocity != -3 {
		t.Errorf("Expected velocity -3, got %v", sim.State().Velocity)
	}
	if stats.Contact != motion.ContactTop {
		t.Errorf("Expected top contact, got %v", stats.Contact)
	}
	if len(log.contacts) != 1 || log.contacts[0] != motion.ContactTop {
		t.Errorf("Expected one top bounce notification, got %v", log.contacts)
	}
}

func TestObstacleOffPlaneBlocksNothing(t *testing.T) {
	sim, canvas := newSim(t, func(c *Config) {
		c.Obstacle.X = 5000
		c.Obstacle.Y = 5000
		c.Obstacle.Speed = 0
	})

	stats, err := sim.Tick(context.Background(), canvas, nil)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if stats.Blocked != 0 || stats.Escaped != 500 {
		t.Errorf("Expected all 500 rays to escape, got %d blocked %d escaped", stats.Blocked, stats.Escaped)
	}
}

func TestParallelCastingDrawsSameFrame(t *testing.T) {
	seq, seqCanvas := newSim(t, nil)
	par, parCanvas := newSim(t, func(c *Config) { c.Rays.Workers = 8 })

	for i := 0; i < 3; i++ {
		a, err := seq.Tick(context.Background(), seqCanvas, nil)
		if err != nil {
			t.Fatalf("Sequential tick failed: %v", err)
		}
		b, err := par.Tick(context.Background(), parCanvas, nil)
		if err != nil {
			t.Fatalf("Parallel tick failed: %v", err)
		}
		if a != b {
			t.Errorf("Tick %d: expected stats %+v, got %+v", i, a, b)
		}
		if !bytes.Equal(seqCanvas.Image().Pix, parCanvas.Image().Pix) {
			t.Fatalf("Tick %d: parallel frame differs from sequential frame", i)
		}
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	sim, canvas := newSim(t, func(c *Config) { c.Rays.Count = 16 })
	frames := countFrames(canvas)
	input := render.NewScriptedInput(nil, []render.Event{render.DragTo(100, 100)}, []render.Event{render.Quit()})

	if err := sim.Run(context.Background(), canvas, input, time.Millisecond); err != nil {
		t.Fatalf("Expected clean stop, got %v", err)
	}
	if *frames != 2 {
		t.Errorf("Expected 2 frames before quit, got %d", *frames)
	}
	if sim.State().Light.Center() != (geometry.Point{X: 100, Y: 100}) {
		t.Errorf("Expected light at (100, 100), got %v", sim.State().Light.Center())
	}
}

func TestRunHonoursContext(t *testing.T) {
	sim, canvas := newSim(t, func(c *Config) { c.Rays.Count = 8 })
	frames := countFrames(canvas)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := sim.Run(ctx, canvas, render.NewScriptedInput(), 5*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if *frames == 0 {
		t.Error("Expected at least one frame before the deadline")
	}
}
