package colony

import (
	"iter"
	"math"
	"math/rand"

	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/world"

	"github.com/pkg/errors"
)

// AnimationPeriod is the simulated time between two animation frames.
const AnimationPeriod = 0.03

// Flock owns every ant and the single random stream they all draw from.
type Flock struct {
	ants             []*Ant
	rng              *rand.Rand
	sinceFrameChange float64
}

// NewFlock returns an empty flock whose ants share a generator seeded with
// seed.
func NewFlock(seed int64) *Flock {
	return &Flock{rng: rand.New(rand.NewSource(seed))}
}

// Add appends an ant.
func (f *Flock) Add(a *Ant) {
	f.ants = append(f.ants, a)
}

// AddAroundCircle spreads count ants evenly on the circumference of circle,
// facing outward.
func (f *Flock) AddAroundCircle(circle geometry.Circle, count int) {
	for i := range count {
		angle := 2 * math.Pi * float64(i) / float64(count)
		dir := geometry.Vector{X: 0, Y: 1}.Rotate(angle)
		pos := circle.Center().Add(dir.Scale(circle.Radius()))
		a, err := NewAnt(pos, dir, i%AnimationFrames, false, MaxPheromoneReserve)
		if err != nil {
			// unit direction and valid frame
			panic(err)
		}
		f.Add(a)
	}
}

// Len returns the number of ants.
func (f *Flock) Len() int {
	return len(f.ants)
}

// Ants yields the ants with their index.
func (f *Flock) Ants() iter.Seq2[int, *Ant] {
	return func(yield func(int, *Ant) bool) {
		for i, a := range f.ants {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Update runs one tick for every ant, in order, against the same shared
// state and random stream, then advances the animation clock.
func (f *Flock) Update(
	food FoodSource,
	toAnthill, toFood *pheromone.Field,
	anthill *world.Anthill,
	obstacles ObstacleSensor,
	dt float64,
) error {
	if err := checkArguments(toAnthill, toFood, dt); err != nil {
		return err
	}

	for i, a := range f.ants {
		if err := a.update(food, toAnthill, toFood, anthill, obstacles, f.rng, dt); err != nil {
			return errors.Wrapf(err, "update ant %d", i)
		}
	}

	f.sinceFrameChange += dt
	if f.sinceFrameChange > AnimationPeriod {
		f.sinceFrameChange -= AnimationPeriod
		for _, a := range f.ants {
			a.NextFrame()
		}
	}
	return nil
}
