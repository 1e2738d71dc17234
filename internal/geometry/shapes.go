package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNonPositiveRadius is returned when building a circle with radius <= 0.
	ErrNonPositiveRadius = errors.New("geometry: radius must be positive")
	// ErrNonPositiveSize is returned when building a rectangle with width or height <= 0.
	ErrNonPositiveSize = errors.New("geometry: width and height must be positive")
)

// Circle is an immutable circle value.
type Circle struct {
	center Vector
	radius float64
}

// NewCircle builds a circle. The radius must be strictly positive.
func NewCircle(center Vector, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, errors.Wrapf(ErrNonPositiveRadius, "radius %v", radius)
	}
	return Circle{center: center, radius: radius}, nil
}

// Center returns the circle's center.
func (c Circle) Center() Vector { return c.center }

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

// WithCenter returns a copy of c moved to center.
func (c Circle) WithCenter(center Vector) Circle {
	c.center = center
	return c
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vector) bool {
	return c.center.Sub(p).Norm2() <= c.radius*c.radius
}

// Bounds returns the smallest axis-aligned rectangle holding the circle.
func (c Circle) Bounds() Rectangle {
	return Rectangle{
		topLeft: Vector{X: c.center.X - c.radius, Y: c.center.Y + c.radius},
		width:   2 * c.radius,
		height:  2 * c.radius,
	}
}

// Rectangle is an immutable axis-aligned rectangle described by its top left
// corner. The y axis grows upward, so the rectangle spans
// [Left, Right] x [Bottom, Top].
type Rectangle struct {
	topLeft Vector
	width   float64
	height  float64
}

// NewRectangle builds a rectangle. Width and height must be strictly positive.
func NewRectangle(topLeft Vector, width, height float64) (Rectangle, error) {
	if !(width > 0) || !(height > 0) {
		return Rectangle{}, errors.Wrapf(ErrNonPositiveSize, "width %v height %v", width, height)
	}
	return Rectangle{topLeft: topLeft, width: width, height: height}, nil
}

// TopLeft returns the top left corner.
func (r Rectangle) TopLeft() Vector { return r.topLeft }

// Width returns the rectangle's width.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the rectangle's height.
func (r Rectangle) Height() float64 { return r.height }

func (r Rectangle) Left() float64   { return r.topLeft.X }
func (r Rectangle) Right() float64  { return r.topLeft.X + r.width }
func (r Rectangle) Top() float64    { return r.topLeft.Y }
func (r Rectangle) Bottom() float64 { return r.topLeft.Y - r.height }

// Corners returns the corners clockwise from the top left one.
func (r Rectangle) Corners() [4]Vector {
	return [4]Vector{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

func (r Rectangle) spansX(x float64) bool {
	return x >= r.Left() && x <= r.Right()
}

func (r Rectangle) spansY(y float64) bool {
	return y >= r.Bottom() && y <= r.Top()
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rectangle) Contains(p Vector) bool {
	return r.spansX(p.X) && r.spansY(p.Y)
}

// CirclesIntersect reports whether two circles overlap or touch.
func CirclesIntersect(a, b Circle) bool {
	reach := a.radius + b.radius
	return a.center.Sub(b.center).Norm2() <= reach*reach
}

// CircleIntersectsRectangle reports whether a circle and a rectangle overlap.
func CircleIntersectsRectangle(c Circle, r Rectangle) bool {
	center := c.center

	// the circle's center sees a vertical edge head on
	if r.spansY(center.Y) {
		if math.Abs(center.X-r.Left()) <= c.radius || math.Abs(center.X-r.Right()) <= c.radius {
			return true
		}
	}
	// the circle's center sees a horizontal edge head on
	if r.spansX(center.X) {
		if math.Abs(center.Y-r.Top()) <= c.radius || math.Abs(center.Y-r.Bottom()) <= c.radius {
			return true
		}
	}
	for _, corner := range r.Corners() {
		if c.Contains(corner) {
			return true
		}
	}

	// circle entirely inside the rectangle
	return r.Contains(center)
}
