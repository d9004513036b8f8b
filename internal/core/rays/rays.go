// Package rays builds the fan of rays emitted by the light.
package rays

import (
	"fmt"
	"iter"
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// Bundle is an immutable, ordered set of rays sharing one origin.
// Moving the light means generating a new Bundle, never editing this one.
type Bundle struct {
	origin geometry.Point
	rays   []geometry.Ray
}

// Generate returns n rays starting at the light's centre, spread evenly over
// a full turn: ray i has angle (i/n)*2π.
// n must be positive.
func Generate(light geometry.Circle, n int) Bundle {
	if n <= 0 {
		panic(fmt.Sprintf("rays: bundle size must be positive, got %d", n))
	}

	rs := make([]geometry.Ray, n)
	for i := 0; i < n; i++ {
		angle := (float64(i) / float64(n)) * 2 * math.Pi
		rs[i] = geometry.Ray{X: light.X, Y: light.Y, Angle: angle}
	}

	return Bundle{origin: light.Center(), rays: rs}
}

// Len returns the number of rays in the bundle
func (b Bundle) Len() int {
	return len(b.rays)
}

// At returns the i-th ray
func (b Bundle) At(i int) geometry.Ray {
	return b.rays[i]
}

// Origin returns the point every ray starts from
func (b Bundle) Origin() geometry.Point {
	return b.origin
}

// All iterates over the rays in generation order.
func (b Bundle) All() iter.Seq2[int, geometry.Ray] {
	return func(yield func(int, geometry.Ray) bool) {
		for i, r := range b.rays {
			if !yield(i, r) {
				return
			}
		}
	}
}
