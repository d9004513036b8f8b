// Package geometry holds the value types shared by the ray caster and the
// obstacle motion code, plus the two distance tests everything else is built on.
package geometry

import "image/color"

// RectFiller is anything that can fill an axis-aligned rectangle of pixels.
// render.Canvas satisfies it.
type RectFiller interface {
	FillRect(x, y, w, h int, clr color.Color)
}

// DistanceSquared returns the squared Euclidean distance between (ax, ay) and (bx, by)
func DistanceSquared(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// PointInsideCircle tests whether a point lies strictly inside the circle.
// A point exactly on the circumference is outside.
func PointInsideCircle(px, py float64, c Circle) bool {
	return DistanceSquared(px, py, c.X, c.Y) < c.R*c.R
}

// FillCircle draws a filled disk by testing every unit sample of the circle's
// enclosing square. Sample coordinates are truncated to pixel positions.
func FillCircle(dst RectFiller, c Circle, clr color.Color) {
	for x := c.X - c.R; x <= c.X+c.R; x++ {
		for y := c.Y - c.R; y <= c.Y+c.R; y++ {
			if PointInsideCircle(x, y, c) {
				dst.FillRect(int(x), int(y), 1, 1, clr)
			}
		}
	}
}
