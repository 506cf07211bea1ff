// pkg/vec/vec.go
package vec

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned when a zero-length vector has to be normalized.
var ErrDegenerateVector = errors.New("vec: zero-length vector has no direction")

// Vec is an immutable 2D vector. Every operation returns a new value.
type Vec struct {
	X, Y float64
}

// New builds a vector from its coordinates.
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Zero is the origin.
var Zero = Vec{}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Mirror reflects the vector across the vertical axis: (x, y) -> (-x, y).
// Used for horizontally flipped ships.
func (v Vec) Mirror() Vec {
	return Vec{X: -v.X, Y: v.Y}
}

// MirrorIf mirrors the vector only when flipped is true.
func (v Vec) MirrorIf(flipped bool) Vec {
	if flipped {
		return v.Mirror()
	}
	return v
}

// Norm returns the euclidean length.
func (v Vec) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the vector scaled to length 1.
func (v Vec) Unit() (Vec, error) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) {
		return Zero, ErrDegenerateVector
	}
	return v.Scale(1 / n), nil
}

// ApproxEqual compares two vectors component-wise within eps.
func (v Vec) ApproxEqual(o Vec, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
