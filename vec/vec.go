// Package vec provides the small 2D vector type used by the simulation
// demos.
package vec

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec2 is a 2D vector with float64 components. It is a value type; all
// operations return new vectors.
type Vec2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// RandomUnit returns a unit vector pointing in a uniformly random direction.
func RandomUnit(rng *rand.Rand) Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector's magnitude.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector in v's direction. The zero vector is
// returned unchanged.
func (v Vec2) Normalized() Vec2 {
	size := v.Len()
	if size == 0 {
		return Vec2{}
	}
	return v.Scale(1 / size)
}

// Distance returns the euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Len()
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
