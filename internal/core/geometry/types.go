package geometry

// Point represents a 2D point on the plane
type Point struct {
	X, Y float64
}

// Circle is used for both the light and the obstacle.
// The radius of the light only matters for drawing its glyph.
type Circle struct {
	X, Y float64
	R    float64
}

// Center returns the centre of the circle as a Point
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

// Ray is a half-line starting at (X, Y) heading along Angle (radians)
type Ray struct {
	X, Y  float64
	Angle float64
}

// Bounds is the plane rectangle. Rays terminate once they leave [0,Width] x [0,Height].
type Bounds struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the closed rectangle [0,W] x [0,H].
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}
