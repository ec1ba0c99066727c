// Package core provides fundamental types and utilities for the runner engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec3 is a point or extent in world space. The corridor runs along -z:
// x is lateral (lane axis), y is vertical, z is depth toward the player.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Box is an axis-aligned bounding box: a center point plus half-extents on
// each axis. Used for all collision tests.
type Box struct {
	Center Vec3
	Half   Vec3
}

// NewBox creates a box centered at center with the given half-extents.
func NewBox(center, half Vec3) Box {
	return Box{Center: center, Half: half}
}

// Overlaps returns true if the two boxes intersect. Separating-axis test:
// the boxes overlap iff the absolute center deltas on all three axes are
// each strictly less than the sum of the half-extents on that axis. Boxes
// exactly touching on an axis do not count as overlapping.
func (b Box) Overlaps(o Box) bool {
	if math.Abs(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	if math.Abs(b.Center.Y-o.Center.Y) >= b.Half.Y+o.Half.Y {
		return false
	}
	if math.Abs(b.Center.Z-o.Center.Z) >= b.Half.Z+o.Half.Z {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates from a to b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
