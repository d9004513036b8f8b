// Package simulation provides the frame orchestrator and its configuration.
// Settings are loaded from a JSON file so a scene can be tuned without rebuilding.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/render/palette"
)

// Config holds everything needed to build a scene
type Config struct {
	Plane    PlaneConfig    `json:"plane"`
	Rays     RayConfig      `json:"rays"`
	Light    CircleConfig   `json:"light"`
	Obstacle ObstacleConfig `json:"obstacle"`
	Palette  PaletteConfig  `json:"palette"`
	Sound    SoundConfig    `json:"sound"`

	TickIntervalMS int `json:"tick_interval_ms"` // Fixed delay between ticks
}

// PlaneConfig is the render surface and ray-termination rectangle
type PlaneConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RayConfig controls the ray bundle and how rays are stepped
type RayConfig struct {
	Count     int     `json:"count"`     // Rays per bundle
	Step      float64 `json:"step"`      // Distance advanced per step
	Thickness int     `json:"thickness"` // Side of the square drawn per visited point
	Workers   int     `json:"workers"`   // Goroutines casting rays; <= 1 casts sequentially
}

// CircleConfig positions a circle on the plane
type CircleConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// ObstacleConfig is the bouncing circle
type ObstacleConfig struct {
	CircleConfig
	Speed float64 `json:"speed"` // Initial vertical velocity; its sign is the initial direction
}

// PaletteConfig holds hex colours
type PaletteConfig struct {
	Background string `json:"background"`
	Ray        string `json:"ray"`
	Shape      string `json:"shape"`
}

// SoundConfig controls the bounce click
type SoundConfig struct {
	Enabled    bool    `json:"enabled"`
	Frequency  float64 `json:"frequency"`
	DurationMS int     `json:"duration_ms"`
	Volume     float64 `json:"volume"`
}

// DefaultConfig returns the reference scene
func DefaultConfig() *Config {
	return &Config{
		Plane: PlaneConfig{
			Width:  1200,
			Height: 600,
		},
		Rays: RayConfig{
			Count:     500,
			Step:      1,
			Thickness: 3,
			Workers:   1,
		},
		Light: CircleConfig{X: 200, Y: 200, R: 40},
		Obstacle: ObstacleConfig{
			CircleConfig: CircleConfig{X: 550, Y: 300, R: 140},
			Speed:        3,
		},
		Palette: PaletteConfig{
			Background: "#000000",
			Ray:        "#ffd43b",
			Shape:      "#ffffff",
		},
		Sound: SoundConfig{
			Enabled:    false,
			Frequency:  660,
			DurationMS: 40,
			Volume:     0.2,
		},
		TickIntervalMS: 10,
	}
}

// LoadConfig loads the scene from a JSON file, starting from defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid simulation config")

// Validate rejects configurations that would break the core's preconditions.
func (c *Config) Validate() error {
	var errs []error

	if c.Plane.Width <= 0 || c.Plane.Height <= 0 {
		errs = append(errs, fmt.Errorf("plane must be positive, got %dx%d", c.Plane.Width, c.Plane.Height))
	}
	if c.Rays.Count <= 0 {
		errs = append(errs, fmt.Errorf("rays.count must be positive, got %d", c.Rays.Count))
	}
	if !(c.Rays.Step > 0) || math.IsInf(c.Rays.Step, 0) {
		errs = append(errs, fmt.Errorf("rays.step must be positive and finite, got %v", c.Rays.Step))
	}
	if c.Rays.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("rays.thickness must be positive, got %d", c.Rays.Thickness))
	}
	if err := checkCircle("light", c.Light); err != nil {
		errs = append(errs, err)
	}
	if err := checkCircle("obstacle", c.Obstacle.CircleConfig); err != nil {
		errs = append(errs, err)
	}
	if !isFinite(c.Obstacle.Speed) {
		errs = append(errs, fmt.Errorf("obstacle.speed must be finite, got %v", c.Obstacle.Speed))
	}
	if c.TickIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("tick_interval_ms must not be negative, got %d", c.TickIntervalMS))
	}
	if !(c.Sound.Frequency > 0) || math.IsInf(c.Sound.Frequency, 0) {
		errs = append(errs, fmt.Errorf("sound.frequency must be positive and finite, got %v", c.Sound.Frequency))
	}
	if c.Sound.DurationMS <= 0 {
		errs = append(errs, fmt.Errorf("sound.duration_ms must be positive, got %d", c.Sound.DurationMS))
	}
	if !(c.Sound.Volume >= 0 && c.Sound.Volume <= 1) {
		errs = append(errs, fmt.Errorf("sound.volume must be within [0, 1], got %v", c.Sound.Volume))
	}
	if _, err := c.ParsePalette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func checkCircle(name string, c CircleConfig) error {
	if !isFinite(c.X) || !isFinite(c.Y) {
		return fmt.Errorf("%s position must be finite, got (%v, %v)", name, c.X, c.Y)
	}
	if !(c.R > 0) || math.IsInf(c.R, 0) {
		return fmt.Errorf("%s radius must be positive and finite, got %v", name, c.R)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParsePalette converts the hex strings into colours. An empty entry keeps
// the default colour for that role.
func (c *Config) ParsePalette() (palette.Palette, error) {
	p := palette.Default()

	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"palette.background", c.Palette.Background, &p.Background},
		{"palette.ray", c.Palette.Ray, &p.Ray},
		{"palette.shape", c.Palette.Shape, &p.Shape},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		clr, err := palette.ParseHex(f.hex)
		if err != nil {
			return p, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = clr
	}
	return p, nil
}

// Bounds returns the plane as geometry bounds
func (c *Config) Bounds() geometry.Bounds {
	return geometry.Bounds{Width: float64(c.Plane.Width), Height: float64(c.Plane.Height)}
}

// TickInterval returns the fixed delay between ticks
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// TPS returns the tick rate implied by the interval, for engines that pace themselves.
func (c *Config) TPS() int {
	if c.TickIntervalMS <= 0 {
		return 100
	}
	return max(1, 1000/c.TickIntervalMS)
}
