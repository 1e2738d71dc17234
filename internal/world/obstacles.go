package world

import (
	"iter"

	"antcolony/internal/geometry"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// R-tree node fan-out.
const (
	rtreeMinChildren = 4
	rtreeMaxChildren = 16
)

// obstacleEntry is the R-tree record for one rectangle.
type obstacleEntry struct {
	rect   geometry.Rectangle
	bounds rtreego.Rect
}

func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// Obstacles is an append-only set of rectangles. Broad-phase lookups go
// through an R-tree of the rectangle bounds, the exact circle/rectangle test
// runs only on the candidates it returns.
type Obstacles struct {
	rects []geometry.Rectangle
	tree  *rtreego.Rtree
}

// NewObstacles returns an empty obstacle set.
func NewObstacles() *Obstacles {
	return &Obstacles{
		tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
	}
}

// Add appends a rectangle.
func (o *Obstacles) Add(rect geometry.Rectangle) {
	bottomLeft := rtreego.Point{rect.Left(), rect.Bottom()}
	bounds, err := rtreego.NewRect(bottomLeft, []float64{rect.Width(), rect.Height()})
	if err != nil {
		// rectangles always have positive sizes
		panic(err)
	}

	if o.tree == nil {
		o.tree = rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)
	}
	o.rects = append(o.rects, rect)
	o.tree.Insert(&obstacleEntry{rect: rect, bounds: bounds})
}

// AddRect builds and appends a rectangle.
func (o *Obstacles) AddRect(topLeft geometry.Vector, width, height float64) error {
	rect, err := geometry.NewRectangle(topLeft, width, height)
	if err != nil {
		return errors.Wrap(err, "add obstacle")
	}
	o.Add(rect)
	return nil
}

// Len returns the number of obstacles.
func (o *Obstacles) Len() int {
	return len(o.rects)
}

// All yields the obstacles in insertion order.
func (o *Obstacles) All() iter.Seq[geometry.Rectangle] {
	return func(yield func(geometry.Rectangle) bool) {
		if o == nil {
			return
		}
		for _, r := range o.rects {
			if !yield(r) {
				return
			}
		}
	}
}

// AnyInCircle reports whether at least one obstacle intersects circle.
func (o *Obstacles) AnyInCircle(circle geometry.Circle) bool {
	if o == nil || o.tree == nil || len(o.rects) == 0 {
		return false
	}

	// pad the query so that rectangles merely touching the circle are not
	// lost by the broad phase
	b := circle.Bounds()
	pad := circle.Radius() * 1e-6
	query, err := rtreego.NewRect(
		rtreego.Point{b.Left() - pad, b.Bottom() - pad},
		[]float64{b.Width() + 2*pad, b.Height() + 2*pad},
	)
	if err != nil {
		return false
	}

	hits := o.tree.SearchIntersect(query, func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		entry := obj.(*obstacleEntry)
		if geometry.CircleIntersectsRectangle(circle, entry.rect) {
			return false, true
		}
		return true, false
	})
	return len(hits) > 0
}
