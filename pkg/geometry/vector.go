// Package geometry provides the integer-nanometre geometric primitives used
// by the routing world model: vectors, segments, line chains, layer ranges,
// bounding rectangles, hulls and collision predicates.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// VecI represents a 2D point or vector with integer coordinates in nanometres.
type VecI struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewVecI creates a new VecI.
func NewVecI(x, y int) VecI {
	return VecI{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v VecI) Add(other VecI) VecI {
	return VecI{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v VecI) Sub(other VecI) VecI {
	return VecI{X: v.X - other.X, Y: v.Y - other.Y}
}

// Dot returns the dot product of two vectors.
func (v VecI) Dot(other VecI) int {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the cross product of two vectors.
func (v VecI) Cross(other VecI) int {
	return v.X*other.Y - v.Y*other.X
}

// EuclideanNorm returns the length of the vector, rounded to the nearest
// nanometre.
func (v VecI) EuclideanNorm() int {
	return int(math.Round(math.Hypot(float64(v.X), float64(v.Y))))
}

// SquaredNorm returns the squared length of the vector.
func (v VecI) SquaredNorm() int {
	return v.X*v.X + v.Y*v.Y
}

// R2 converts the vector to a gonum r2.Vec for floating-point math.
func (v VecI) R2() r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

// RoundVec converts a gonum r2.Vec back to integer nanometres.
func RoundVec(v r2.Vec) VecI {
	return VecI{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

func (v VecI) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
