package ebiten

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/raycaster/internal/render"
)

type stubGame struct {
	err     error
	updates int
}

func (g *stubGame) Update() error {
	g.updates++
	return g.err
}
func (g *stubGame) Draw(render.Image)          {}
func (g *stubGame) Layout(w, h int) (int, int) { return 1200, 600 }

func TestAdapterTurnsQuitIntoTermination(t *testing.T) {
	g := &stubGame{err: render.ErrQuit}
	a := &gameAdapter{game: g}

	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
	if g.updates != 1 {
		t.Errorf("Expected 1 update, got %d", g.updates)
	}
}

func TestAdapterPassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	a := &gameAdapter{game: &stubGame{err: boom}}

	if err := a.Update(); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if err := (&gameAdapter{game: &stubGame{}}).Update(); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestRunResultTreatsTerminationAsCleanExit(t *testing.T) {
	if err := runResult(ebiten.Termination); err != nil {
		t.Errorf("Expected nil for termination, got %v", err)
	}
	if err := runResult(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	boom := errors.New("boom")
	if err := runResult(boom); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

func TestAdapterLayout(t *testing.T) {
	a := &gameAdapter{game: &stubGame{}}

	w, h := a.Layout(3000, 2000)
	if w != 1200 || h != 600 {
		t.Errorf("Expected 1200x600, got %dx%d", w, h)
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		key  render.Key
		want ebiten.Key
	}{
		{render.KeyEscape, ebiten.KeyEscape},
		{render.KeyQ, ebiten.KeyQ},
		{render.KeyH, ebiten.KeyH},
	}

	for _, tt := range tests {
		if got := keyToEbitenKey(tt.key); got != tt.want {
			t.Errorf("Key %d: expected %v, got %v", tt.key, tt.want, got)
		}
	}
	if mouseButtonToEbiten(render.MouseButtonLeft) != ebiten.MouseButtonLeft {
		t.Error("Expected left button to map to ebiten.MouseButtonLeft")
	}
}

func TestMeasureText(t *testing.T) {
	r := &EbitenRenderer{}

	w, h := r.MeasureText("hello", 2)
	if w != 60 || h != 32 {
		t.Errorf("Expected 60x32, got %dx%d", w, h)
	}
}
