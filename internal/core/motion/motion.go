// Package motion moves the obstacle up and down the plane.
package motion

import "chosenoffset.com/raycaster/internal/core/geometry"

// Contact records which plane edges the obstacle touched during an Advance.
type Contact uint8

const ContactNone Contact = 0

const (
	ContactTop Contact = 1 << iota
	ContactBottom
)

// Has reports whether c includes every edge in other
func (c Contact) Has(other Contact) bool {
	return c&other == other && other != ContactNone
}

func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactTop:
		return "top"
	case ContactBottom:
		return "bottom"
	case ContactTop | ContactBottom:
		return "top+bottom"
	default:
		return "invalid"
	}
}

// Advance moves the obstacle vertically by velocity and reflects the velocity
// when the obstacle pokes past the top or bottom of a plane of the given height.
//
// Both edges are tested independently. An obstacle at least as tall as the
// plane touches both and flips twice, keeping its direction. x never changes.
func Advance(obstacle geometry.Circle, velocity, height float64) (geometry.Circle, float64, Contact) {
	obstacle.Y += velocity

	contact := ContactNone
	if obstacle.Y-obstacle.R < 0 {
		velocity = -velocity
		contact |= ContactTop
	}
	if obstacle.Y+obstacle.R > height {
		velocity = -velocity
		contact |= ContactBottom
	}

	return obstacle, velocity, contact
}
