package world

import (
	"iter"
	"math"
	"math/rand"

	"antcolony/internal/geometry"
)

// Patch is a source circle and the food particles scattered inside it.
type Patch struct {
	circle    geometry.Circle
	particles []geometry.Vector
}

// Circle returns the area the patch was generated in.
func (p *Patch) Circle() geometry.Circle { return p.circle }

// Len returns the number of particles left in the patch.
func (p *Patch) Len() int { return len(p.particles) }

// Particles returns the particle positions. The slice must not be modified.
func (p *Patch) Particles() []geometry.Vector { return p.particles }

func (p *Patch) removeOneInCircle(circle geometry.Circle) bool {
	for i, pos := range p.particles {
		if circle.Contains(pos) {
			p.particles = append(p.particles[:i], p.particles[i+1:]...)
			return true
		}
	}
	return false
}

// Food owns every food patch of a scenario.
type Food struct {
	patches []*Patch
	rng     *rand.Rand
}

// NewFood returns an empty food field scattering particles with its own
// seeded generator.
func NewFood(seed int64) *Food {
	return &Food{rng: rand.New(rand.NewSource(seed))}
}

// GenerateInCircle scatters count particles in circle: uniform angle and a
// |N(0, r/3)| distance from the center, clamped to r. It returns false and
// changes nothing if the circle intersects any obstacle.
func (f *Food) GenerateInCircle(circle geometry.Circle, count int, obstacles *Obstacles) bool {
	for rect := range obstacles.All() {
		if geometry.CircleIntersectsRectangle(circle, rect) {
			return false
		}
	}
	if count <= 0 {
		return true
	}

	r := circle.Radius()
	sigma := r / 3
	patch := &Patch{circle: circle, particles: make([]geometry.Vector, 0, count)}
	for range count {
		angle := f.rng.Float64() * 2 * math.Pi
		distance := math.Min(math.Abs(f.rng.NormFloat64()*sigma), r)
		offset := geometry.Vector{X: 0, Y: 1}.Rotate(angle).Scale(distance)
		patch.particles = append(patch.particles, circle.Center().Add(offset))
	}
	f.patches = append(f.patches, patch)
	return true
}

// RemoveOneInCircle removes one particle lying inside circle, if any. A patch
// whose last particle is taken is dropped.
func (f *Food) RemoveOneInCircle(circle geometry.Circle) bool {
	for i, patch := range f.patches {
		if !geometry.CirclesIntersect(circle, patch.circle) {
			continue
		}
		if !patch.removeOneInCircle(circle) {
			continue
		}
		if patch.Len() == 0 {
			f.patches = append(f.patches[:i], f.patches[i+1:]...)
		}
		return true
	}
	return false
}

// Len returns the total number of particles.
func (f *Food) Len() int {
	n := 0
	for _, p := range f.patches {
		n += p.Len()
	}
	return n
}

// HasFood reports whether any particle is left.
func (f *Food) HasFood() bool {
	return len(f.patches) > 0
}

// Patches returns the live patches. The slice must not be modified.
func (f *Food) Patches() []*Patch {
	return f.patches
}

// All yields every particle, patch by patch.
func (f *Food) All() iter.Seq[geometry.Vector] {
	return func(yield func(geometry.Vector) bool) {
		for c := f.Begin(); !c.IsEnd(); c = c.Next() {
			if !yield(c.Position()) {
				return
			}
		}
	}
}

// Begin returns a cursor on the first particle, or End if there is none.
func (f *Food) Begin() FoodCursor {
	return FoodCursor{food: f}
}

// End returns the sentinel cursor.
func (f *Food) End() FoodCursor {
	return FoodCursor{food: f, patch: len(f.patches)}
}

// FoodCursor walks the two level patch/particle structure. Any mutation of
// the field invalidates it.
type FoodCursor struct {
	food  *Food
	patch int
	index int
}

// IsEnd reports whether the cursor is past the last particle.
func (c FoodCursor) IsEnd() bool {
	return c.food == nil || c.patch >= len(c.food.patches)
}

// Next returns the cursor on the following particle.
func (c FoodCursor) Next() FoodCursor {
	if c.IsEnd() {
		return c
	}
	c.index++
	if c.index >= c.food.patches[c.patch].Len() {
		c.patch++
		c.index = 0
	}
	return c
}

// Position returns the particle under the cursor. It panics on End.
func (c FoodCursor) Position() geometry.Vector {
	return c.food.patches[c.patch].particles[c.index]
}

// Equal reports whether both cursors point at the same particle or are both
// at the end.
func (c FoodCursor) Equal(other FoodCursor) bool {
	if c.IsEnd() || other.IsEnd() {
		return c.IsEnd() && other.IsEnd()
	}
	return c.food == other.food && c.patch == other.patch && c.index == other.index
}
