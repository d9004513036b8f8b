package report

import (
	"strings"
	"testing"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/motion"
	"chosenoffset.com/raycaster/internal/simulation"
)

func TestSummaryAdd(t *testing.T) {
	var s Summary
	s.Add(simulation.FrameStats{Rays: 500, Blocked: 40, Points: 1000})
	s.Add(simulation.FrameStats{Rays: 500, Blocked: 20, Points: 900, Contact: motion.ContactTop})
	s.Add(simulation.FrameStats{Rays: 500, Blocked: 60, Points: 800})

	if s.Ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", s.Ticks)
	}
	if s.MinBlocked != 20 || s.MaxBlocked != 60 {
		t.Errorf("Expected blocked range 20..60, got %d..%d", s.MinBlocked, s.MaxBlocked)
	}
	if s.MeanBlocked() != 40 {
		t.Errorf("Expected mean 40, got %v", s.MeanBlocked())
	}
	if s.Points != 2700 {
		t.Errorf("Expected 2700 points, got %d", s.Points)
	}
	if s.Bounces != 1 {
		t.Errorf("Expected 1 bounce, got %d", s.Bounces)
	}
}

func TestSummaryMinStartsAtFirstTick(t *testing.T) {
	var s Summary
	s.Add(simulation.FrameStats{Blocked: 7})

	if s.MinBlocked != 7 {
		t.Errorf("Expected min 7, got %d", s.MinBlocked)
	}
}

func TestRenderContainsFigures(t *testing.T) {
	s := Summary{Final: simulation.State{
		Light:    geometry.Circle{X: 200, Y: 200, R: 40},
		Obstacle: geometry.Circle{X: 550, Y: 303, R: 140},
		Velocity: 3,
	}}
	s.Add(simulation.FrameStats{Rays: 500, Blocked: 42})
	s.Lit = 123456

	out := s.Render()
	for _, want := range []string{"headless run", "ticks", "500", "mean 42.0", "(200, 200)", "(550, 303)", "123456"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, out)
		}
	}
}

func TestMeanBlockedEmpty(t *testing.T) {
	var s Summary
	if s.MeanBlocked() != 0 {
		t.Errorf("Expected 0, got %v", s.MeanBlocked())
	}
}
