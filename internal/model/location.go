package model

import (
	"math"
	"math/bits"
)

// Location is a point on the battlefield grid.
// Value type, passed by value (immutable).
type Location struct {
	X int32
	Y int32
}

// NewLocation creates a Location with the given coordinates.
func NewLocation(x, y int32) Location {
	return Location{X: x, Y: y}
}

// delta returns |dx| and |dy|; both fit in 32 bits for any pair of int32 points.
func (l Location) delta(other Location) (uint64, uint64) {
	dx := int64(l.X) - int64(other.X)
	dy := int64(l.Y) - int64(other.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return uint64(dx), uint64(dy)
}

// Distance returns the Euclidean distance to another point.
func (l Location) Distance(other Location) float64 {
	dx, dy := l.delta(other)
	return math.Hypot(float64(dx), float64(dy))
}

// InRange reports whether other lies within radius of l (inclusive).
// dx²+dy² and radius² are compared as exact 128-bit integers, so neither
// far-apart int32 points nor huge radii overflow.
func (l Location) InRange(other Location, radius int) bool {
	if radius < 0 {
		return false
	}
	dx, dy := l.delta(other)

	hx, lx := bits.Mul64(dx, dx)
	hy, ly := bits.Mul64(dy, dy)
	lo, carry := bits.Add64(lx, ly, 0)
	hi := hx + hy + carry

	rhi, rlo := bits.Mul64(uint64(radius), uint64(radius))
	return hi < rhi || (hi == rhi && lo <= rlo)
}
