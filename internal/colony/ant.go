// Package colony holds the foraging agents and the per-tick steering rule
// that moves them.
package colony

import (
	"math"
	"math/rand"

	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/world"

	"github.com/pkg/errors"
)

// Physical constants, SI units.
const (
	AntLength   = 0.005
	AntMass     = 5e-6
	AntSpeed    = 0.025
	AntForceMax = 3e-6

	// rod pivoting around its middle
	antMomentOfInertia = AntMass * AntLength * AntLength / 12
)

// Sensing constants.
const (
	VisionRadius   = AntLength / 1.3
	VisionDistance = 1.5 * AntLength
	VisionAngle    = math.Pi / 3
)

// Pheromone handling.
const (
	MaxPheromoneReserve = 2000.0
	// fraction of the reserve released, and lost, with every deposit
	PheromoneReleaseFraction = 0.02
	// below this reserve an ant stops marking its path
	MinPheromoneReserve = 25.0

	PheromoneReleasePeriod = 0.1
	PheromoneSearchPeriod  = 0.25

	// the wander perturbation is uniform in [-MaxWanderAngle, MaxWanderAngle]
	MaxWanderAngle = math.Pi / 12
)

// Obstacle avoidance turns.
const (
	sideAvoidAngle  = math.Pi / 6
	aheadAvoidAngle = math.Pi / 2
	aheadMultiplier = 4
)

// AnimationFrames is the number of sprite frames an ant cycles through.
const AnimationFrames = 4

var (
	// ErrZeroDirection is returned when an ant is given no heading.
	ErrZeroDirection = errors.New("colony: ant direction can't be the zero vector")
	// ErrInvalidFrame is returned for animation frames outside [0, AnimationFrames).
	ErrInvalidFrame = errors.New("colony: animation frame out of range")
	// ErrNegativeReserve is returned for a negative pheromone reserve.
	ErrNegativeReserve = errors.New("colony: pheromone reserve can't be negative")
	// ErrPheromoneKindMismatch is returned when the pheromone fields are swapped.
	ErrPheromoneKindMismatch = errors.New("colony: pheromone field of the wrong kind")
	// ErrNegativeDeltaT is returned when time is asked to flow backwards.
	ErrNegativeDeltaT = errors.New("colony: delta t can't be negative")
)

// FoodSource is the food an ant can pick up.
type FoodSource interface {
	RemoveOneInCircle(circle geometry.Circle) bool
}

// ObstacleSensor tells whether a circle overlaps an obstacle.
type ObstacleSensor interface {
	AnyInCircle(circle geometry.Circle) bool
}

// Ant is a single foraging agent. Its velocity always has magnitude
// AntSpeed and its desired direction is always a unit vector.
type Ant struct {
	position         geometry.Vector
	velocity         geometry.Vector
	desiredDirection geometry.Vector
	hasFood          bool
	pheromoneReserve float64

	sinceRelease float64
	sinceSearch  float64
	frame        int
}

// NewAnt places an ant heading along direction.
func NewAnt(position, direction geometry.Vector, frame int, hasFood bool, reserve float64) (*Ant, error) {
	heading, err := direction.Normalize()
	if err != nil {
		return nil, ErrZeroDirection
	}
	if frame < 0 || frame >= AnimationFrames {
		return nil, errors.Wrapf(ErrInvalidFrame, "frame %d", frame)
	}
	if reserve < 0 {
		return nil, errors.Wrapf(ErrNegativeReserve, "reserve %v", reserve)
	}

	return &Ant{
		position:         position,
		velocity:         heading.Scale(AntSpeed),
		desiredDirection: heading,
		hasFood:          hasFood,
		pheromoneReserve: reserve,
		frame:            frame,
	}, nil
}

// Position returns the ant's position.
func (a *Ant) Position() geometry.Vector { return a.position }

// Velocity returns the ant's current velocity.
func (a *Ant) Velocity() geometry.Vector { return a.velocity }

// DesiredDirection returns the unit vector the ant is steering toward.
func (a *Ant) DesiredDirection() geometry.Vector { return a.desiredDirection }

// FacingAngle returns the heading in [-π, π].
func (a *Ant) FacingAngle() float64 { return a.velocity.Angle() }

// HasFood reports whether the ant is carrying food back home.
func (a *Ant) HasFood() bool { return a.hasFood }

// PheromoneReserve returns what is left to deposit.
func (a *Ant) PheromoneReserve() float64 { return a.pheromoneReserve }

// Frame returns the current animation frame.
func (a *Ant) Frame() int { return a.frame }

// NextFrame advances the animation frame.
func (a *Ant) NextFrame() {
	a.frame = (a.frame + 1) % AnimationFrames
}

func (a *Ant) facing() geometry.Vector {
	return a.velocity.Scale(1 / AntSpeed)
}

// CirclesOfVision returns the left, ahead and right sensing circles.
func (a *Ant) CirclesOfVision() [3]geometry.Circle {
	facing := a.facing()
	var cov [3]geometry.Circle
	angle := VisionAngle
	for i := range cov {
		center := a.position.Add(facing.Rotate(angle).Scale(VisionDistance))
		// VisionRadius is a positive constant
		cov[i], _ = geometry.NewCircle(center, VisionRadius)
		angle -= VisionAngle
	}
	return cov
}

// AvoidanceAngle returns the rotation that steers away from the obstacles
// overlapping the circles of vision, 0 if none does. A head-on obstacle
// picks a random side.
func AvoidanceAngle(cov [3]geometry.Circle, obstacles ObstacleSensor, rng *rand.Rand) float64 {
	left := obstacles.AnyInCircle(cov[0])
	ahead := obstacles.AnyInCircle(cov[1])
	right := obstacles.AnyInCircle(cov[2])

	if ahead && !left && !right {
		if rng.Intn(2) == 0 {
			return -aheadAvoidAngle
		}
		return aheadAvoidAngle
	}

	angle := 0.0
	if left {
		angle -= sideAvoidAngle
	}
	if right {
		angle += sideAvoidAngle
	}
	if ahead {
		angle = 2*aheadAvoidAngle - aheadMultiplier*angle
	}
	return angle
}

// steer rotates the velocity toward the desired direction as if two
// opposite forces pushed head and tail for dt, starting from rest, then
// moves the ant.
func (a *Ant) steer(dt float64) {
	facing := a.facing()
	alignment := math.Max(facing.Dot(a.desiredDirection), 0)
	force := AntForceMax * (1 - alignment)
	torque := force * AntLength
	turn := 0.5 * torque / antMomentOfInertia * dt * dt

	cross := facing.Cross(a.desiredDirection)
	gap := math.Abs(math.Atan2(cross, facing.Dot(a.desiredDirection)))
	turn = math.Min(turn, gap)
	if cross < 0 {
		turn = -turn
	}

	a.velocity = facing.Rotate(turn).Scale(AntSpeed)
	a.position = a.position.Add(a.velocity.Scale(dt))
}

func (a *Ant) turnAround() {
	a.velocity = a.velocity.Neg()
	a.desiredDirection = a.desiredDirection.Neg()
}

// tick advances a period timer and reports whether it elapsed.
func tick(since *float64, period, dt float64) bool {
	*since += dt
	if *since > period {
		*since -= period
		return true
	}
	return false
}

func (a *Ant) releasePheromone(toAnthill, toFood *pheromone.Field) error {
	if a.pheromoneReserve <= MinPheromoneReserve {
		return nil
	}
	field := toAnthill
	if a.hasFood {
		field = toFood
	}
	intensity := a.pheromoneReserve * PheromoneReleaseFraction
	if err := field.Add(a.position, intensity); err != nil {
		return err
	}
	a.pheromoneReserve -= intensity
	return nil
}

// Update runs one tick of the ant's behaviour: sense, steer and move, mark
// the path, then, in order of priority, avoid obstacles, pick up food, deliver
// it or head home, and follow the trail of the opposite kind.
func (a *Ant) Update(
	food FoodSource,
	toAnthill, toFood *pheromone.Field,
	anthill *world.Anthill,
	obstacles ObstacleSensor,
	rng *rand.Rand,
	dt float64,
) error {
	if err := checkArguments(toAnthill, toFood, dt); err != nil {
		return err
	}
	return a.update(food, toAnthill, toFood, anthill, obstacles, rng, dt)
}

func checkArguments(toAnthill, toFood *pheromone.Field, dt float64) error {
	if toAnthill.Kind() != pheromone.ToAnthill {
		return errors.Wrapf(ErrPheromoneKindMismatch, "to anthill field holds %v", toAnthill.Kind())
	}
	if toFood.Kind() != pheromone.ToFood {
		return errors.Wrapf(ErrPheromoneKindMismatch, "to food field holds %v", toFood.Kind())
	}
	if dt < 0 {
		return errors.Wrapf(ErrNegativeDeltaT, "delta t %v", dt)
	}
	return nil
}

func (a *Ant) update(
	food FoodSource,
	toAnthill, toFood *pheromone.Field,
	anthill *world.Anthill,
	obstacles ObstacleSensor,
	rng *rand.Rand,
	dt float64,
) error {
	// every decision of the tick uses what the ant saw before moving
	cov := a.CirclesOfVision()
	a.steer(dt)

	release := tick(&a.sinceRelease, PheromoneReleasePeriod, dt)
	search := tick(&a.sinceSearch, PheromoneSearchPeriod, dt)

	if release {
		if err := a.releasePheromone(toAnthill, toFood); err != nil {
			return err
		}
	}

	if angle := AvoidanceAngle(cov, obstacles, rng); angle != 0 {
		a.velocity = a.velocity.Rotate(angle)
		a.desiredDirection = a.facing()
		return nil
	}

	if !a.hasFood {
		for _, c := range cov {
			if food.RemoveOneInCircle(c) {
				a.hasFood = true
				a.pheromoneReserve = MaxPheromoneReserve
				a.turnAround()
				return nil
			}
		}
	}

	if anthill.Contains(a.position) {
		a.pheromoneReserve = MaxPheromoneReserve
		if a.hasFood {
			if err := anthill.AddFood(1); err != nil {
				return err
			}
			a.hasFood = false
			a.turnAround()
			return nil
		}
	} else if a.hasFood {
		for _, c := range cov {
			if !geometry.CirclesIntersect(c, anthill.Circle()) {
				continue
			}
			if home, err := anthill.Center().Sub(a.position).Normalize(); err == nil {
				a.desiredDirection = home
			}
			return nil
		}
	}

	if !search {
		return nil
	}

	a.followPheromones(cov, toAnthill, toFood, rng)
	a.desiredDirection = a.desiredDirection.Rotate((2*rng.Float64() - 1) * MaxWanderAngle)
	return nil
}

// followPheromones aims at the strongest particle seen by any circle of
// vision. Searching ants follow the trail toward food, ants carrying food
// the one toward the anthill.
func (a *Ant) followPheromones(cov [3]geometry.Circle, toAnthill, toFood *pheromone.Field, rng *rand.Rand) {
	trail := toFood
	if a.hasFood {
		trail = toAnthill
	}

	found := false
	var target pheromone.Particle
	for _, c := range cov {
		cur := trail.RandomMaxInCircle(c, rng)
		if cur.IsEnd() {
			continue
		}
		if p := cur.Particle(); !found || p.Intensity > target.Intensity {
			target = p
			found = true
		}
	}
	if !found {
		return
	}

	if dir, err := target.Position.Sub(a.position).Normalize(); err == nil {
		a.desiredDirection = dir
	}
}
