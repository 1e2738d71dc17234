package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrDivisionByZero is returned when a vector is divided by zero.
	ErrDivisionByZero = errors.New("geometry: division by zero")
	// ErrZeroVector is returned when a direction is required but the vector is null.
	ErrZeroVector = errors.New("geometry: zero vector has no direction")
)

// Vector is a plain 2D double precision vector.
type Vector struct {
	X, Y float64
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by a scalar. Dividing by zero is an error, never an
// infinite vector.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return v.Scale(1 / s), nil
}

// Neg returns the opposite vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the cross product. Positive means other
// lies counterclockwise from v.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Norm2 returns the squared length.
func (v Vector) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Norm returns the length.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector with the same direction.
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, ErrZeroVector
	}
	return v.Div(n)
}

// Rotate rotates v counterclockwise by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the direction of v in [-π, π]. The zero vector has angle 0.
func (v Vector) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}
