// Package pheromone stores the decaying scent trails left by ants in a sparse
// spatial hash of square cells.
//
// Cells are twice as wide as an ant's circle of vision, so any sensing query
// touches at most the 3x3 neighbourhood of the cell holding its center. Empty
// cells are never stored.
package pheromone

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"antcolony/internal/geometry"

	"github.com/pkg/errors"
)

var (
	// ErrNonPositiveIntensity is returned when depositing a particle with intensity <= 0.
	ErrNonPositiveIntensity = errors.New("pheromone: intensity must be positive")
	// ErrNegativeDeltaT is returned when time is asked to flow backwards.
	ErrNegativeDeltaT = errors.New("pheromone: delta t can't be negative")
	// ErrNonPositiveVision is returned when the cell size can't be derived.
	ErrNonPositiveVision = errors.New("pheromone: circle of vision diameter must be positive")
)

// Kind is the scent a field holds.
type Kind int

const (
	// ToFood is left by ants carrying food and leads back to the source.
	ToFood Kind = iota
	// ToAnthill is left by searching ants and leads back home.
	ToAnthill
)

func (k Kind) String() string {
	switch k {
	case ToFood:
		return "to_food"
	case ToAnthill:
		return "to_anthill"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	// EvaporationPeriod is the simulated time between two decay steps.
	EvaporationPeriod = 1.0

	// EarlyReturnProbability is the chance, per particle found inside the
	// query circle, that RandomMaxInCircle stops with the running maximum.
	EarlyReturnProbability = 0.001

	// MaxIntensity is the strongest particle an ant can drop: a full reserve
	// of 2000 releasing 2% of it.
	MaxIntensity = 40.0
)

// Profile is a pair of evaporation constants.
type Profile struct {
	// Floor is the intensity at or below which a particle is gone.
	Floor float64
	// Decay is the fraction of intensity lost every EvaporationPeriod.
	Decay float64
}

var (
	// VisualizationProfile keeps short, readable trails.
	VisualizationProfile = Profile{Floor: 0.5, Decay: 0.01}
	// OptimizationProfile keeps long lived trails so paths converge.
	OptimizationProfile = Profile{Floor: 0.02, Decay: 0.001}
)

// Particle is a single scent deposit.
type Particle struct {
	Position  geometry.Vector
	Intensity float64
}

// Coordinate is the integer index of a square cell.
type Coordinate struct {
	X, Y int
}

type cell struct {
	coord     Coordinate
	slot      int // position in Field.order
	particles []Particle
}

// Field holds every particle of one Kind.
type Field struct {
	kind       Kind
	cellLength float64

	cells map[Coordinate]*cell
	// order fixes the iteration sequence of cells; it is compacted together
	// with cells whenever one empties
	order []*cell

	sinceEvaporation float64
	profile          Profile
}

// NewField returns an empty field whose cells are twice the given diameter.
func NewField(kind Kind, visionDiameter float64) (*Field, error) {
	if !(visionDiameter > 0) {
		return nil, errors.Wrapf(ErrNonPositiveVision, "diameter %v", visionDiameter)
	}
	return &Field{
		kind:       kind,
		cellLength: 2 * visionDiameter,
		cells:      make(map[Coordinate]*cell),
		profile:    VisualizationProfile,
	}, nil
}

// Kind returns the scent stored in the field.
func (f *Field) Kind() Kind { return f.kind }

// CellLength returns the side of a cell.
func (f *Field) CellLength() float64 { return f.cellLength }

// Profile returns the active evaporation constants.
func (f *Field) Profile() Profile { return f.profile }

// SetOptimizationMode switches between the visualization and the path
// optimization evaporation profiles.
func (f *Field) SetOptimizationMode(optimize bool) {
	if optimize {
		f.profile = OptimizationProfile
		return
	}
	f.profile = VisualizationProfile
}

// CoordinateOf returns the cell holding position.
func (f *Field) CoordinateOf(position geometry.Vector) Coordinate {
	return Coordinate{
		X: int(math.Ceil(position.X/f.cellLength)) - 1,
		Y: int(math.Ceil(position.Y / f.cellLength)),
	}
}

// cellRectangle returns the square covered by coord.
func (f *Field) cellRectangle(coord Coordinate) geometry.Rectangle {
	topLeft := geometry.Vector{X: float64(coord.X), Y: float64(coord.Y)}.Scale(f.cellLength)
	r, _ := geometry.NewRectangle(topLeft, f.cellLength, f.cellLength)
	return r
}

// Add deposits a particle. Nothing is stored if intensity is not positive.
func (f *Field) Add(position geometry.Vector, intensity float64) error {
	if !(intensity > 0) {
		return errors.Wrapf(ErrNonPositiveIntensity, "intensity %v", intensity)
	}

	coord := f.CoordinateOf(position)
	c, ok := f.cells[coord]
	if !ok {
		c = &cell{coord: coord, slot: len(f.order)}
		f.cells[coord] = c
		f.order = append(f.order, c)
	}
	c.particles = append(c.particles, Particle{Position: position, Intensity: intensity})
	return nil
}

// neighbourhood returns the stored cells that may hold particles inside
// circle, in a fixed scan order.
func (f *Field) neighbourhood(circle geometry.Circle) []*cell {
	center := f.CoordinateOf(circle.Center())
	span := 1
	if circle.Radius() > f.cellLength {
		span = int(math.Ceil(circle.Radius() / f.cellLength))
	}

	cells := make([]*cell, 0, 9)
	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			c, ok := f.cells[Coordinate{X: center.X + dx, Y: center.Y + dy}]
			if !ok {
				continue
			}
			if !geometry.CircleIntersectsRectangle(circle, f.cellRectangle(c.coord)) {
				continue
			}
			cells = append(cells, c)
		}
	}
	return cells
}

// IntensityInCircle sums the intensity of every particle inside circle.
func (f *Field) IntensityInCircle(circle geometry.Circle) float64 {
	total := 0.0
	for _, c := range f.neighbourhood(circle) {
		for _, p := range c.particles {
			if circle.Contains(p.Position) {
				total += p.Intensity
			}
		}
	}
	return total
}

// RandomMaxInCircle looks for the strongest particle inside circle. After
// every particle found inside there is an EarlyReturnProbability chance of
// returning the strongest one seen so far. The cursor is at End when the
// circle holds no particle.
func (f *Field) RandomMaxInCircle(circle geometry.Circle, rng *rand.Rand) Cursor {
	best := f.End()
	bestIntensity := math.Inf(-1)

	for _, c := range f.neighbourhood(circle) {
		for i, p := range c.particles {
			if !circle.Contains(p.Position) {
				continue
			}
			if p.Intensity > bestIntensity {
				best = f.cursorAt(c, i)
				bestIntensity = p.Intensity
			}
			if rng.Float64() < EarlyReturnProbability {
				return best
			}
		}
	}
	return best
}

// Evaporate advances the field clock by dt. Once EvaporationPeriod has
// elapsed every particle decays by the active profile, is clamped to the
// floor, and particles at the floor are removed together with the cells
// left empty.
func (f *Field) Evaporate(dt float64) error {
	if dt < 0 {
		return errors.Wrapf(ErrNegativeDeltaT, "delta t %v", dt)
	}

	f.sinceEvaporation += dt
	if f.sinceEvaporation < EvaporationPeriod {
		return nil
	}
	f.sinceEvaporation -= EvaporationPeriod

	floor := f.profile.Floor
	factor := 1 - f.profile.Decay
	kept := f.order[:0]
	for _, c := range f.order {
		live := c.particles[:0]
		for _, p := range c.particles {
			p.Intensity *= factor
			if p.Intensity < floor {
				p.Intensity = floor
			}
			if p.Intensity > floor {
				live = append(live, p)
			}
		}
		clear(c.particles[len(live):])
		c.particles = live

		if len(live) == 0 {
			delete(f.cells, c.coord)
			continue
		}
		c.slot = len(kept)
		kept = append(kept, c)
	}
	clear(f.order[len(kept):])
	f.order = kept
	return nil
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	n := 0
	for _, c := range f.order {
		n += len(c.particles)
	}
	return n
}

// CellCount returns the number of stored cells.
func (f *Field) CellCount() int {
	return len(f.order)
}

// All yields every live particle, cell by cell. The order across cells must
// not be relied upon.
func (f *Field) All() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for c := f.Begin(); !c.IsEnd(); c = c.Next() {
			if !yield(c.Particle()) {
				return
			}
		}
	}
}
