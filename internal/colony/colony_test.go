package colony

import (
	"math"
	"math/rand"
	"testing"

	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/world"

	"github.com/pkg/errors"
)

const tickDelta = 0.01

type environment struct {
	food      *world.Food
	toAnthill *pheromone.Field
	toFood    *pheromone.Field
	anthill   *world.Anthill
	obstacles *world.Obstacles
	rng       *rand.Rand
}

func newEnvironment(t *testing.T, anthillCenter geometry.Vector, anthillRadius float64) *environment {
	t.Helper()
	toAnthill, err := pheromone.NewField(pheromone.ToAnthill, 2*VisionRadius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toFood, err := pheromone.NewField(pheromone.ToFood, 2*VisionRadius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hill, err := world.NewAnthill(mustCircle(t, anthillCenter, anthillRadius), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &environment{
		food:      world.NewFood(7),
		toAnthill: toAnthill,
		toFood:    toFood,
		anthill:   hill,
		obstacles: world.NewObstacles(),
		rng:       rand.New(rand.NewSource(42)),
	}
}

func (e *environment) update(a *Ant) error {
	return a.Update(e.food, e.toAnthill, e.toFood, e.anthill, e.obstacles, e.rng, tickDelta)
}

func mustCircle(t *testing.T, center geometry.Vector, r float64) geometry.Circle {
	t.Helper()
	c, err := geometry.NewCircle(center, r)
	if err != nil {
		t.Fatalf("unexpected error building circle: %v", err)
	}
	return c
}

func mustAnt(t *testing.T, pos, dir geometry.Vector, hasFood bool) *Ant {
	t.Helper()
	a, err := NewAnt(pos, dir, 0, hasFood, MaxPheromoneReserve)
	if err != nil {
		t.Fatalf("unexpected error building ant: %v", err)
	}
	return a
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// stubSensor reports an obstacle in the circles centered on the listed points.
type stubSensor map[geometry.Vector]bool

func (s stubSensor) AnyInCircle(c geometry.Circle) bool {
	return s[c.Center()]
}

func TestNewAntValidation(t *testing.T) {
	if _, err := NewAnt(geometry.Vector{}, geometry.Vector{}, 0, false, 1); !errors.Is(err, ErrZeroDirection) {
		t.Fatalf("expected ErrZeroDirection, got %v", err)
	}
	if _, err := NewAnt(geometry.Vector{}, geometry.Vector{X: 1}, AnimationFrames, false, 1); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("expected ErrInvalidFrame, got %v", err)
	}
	if _, err := NewAnt(geometry.Vector{}, geometry.Vector{X: 1}, 0, false, -1); !errors.Is(err, ErrNegativeReserve) {
		t.Fatalf("expected ErrNegativeReserve, got %v", err)
	}

	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 3, Y: 4}, false)
	if !near(a.Velocity().Norm(), AntSpeed, 1e-12) {
		t.Fatalf("expected speed %v, got %v", AntSpeed, a.Velocity().Norm())
	}
	if !near(a.DesiredDirection().Norm(), 1, 1e-12) {
		t.Fatalf("expected a unit desired direction, got %v", a.DesiredDirection())
	}
}

func TestCirclesOfVision(t *testing.T) {
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	cov := a.CirclesOfVision()

	want := []geometry.Vector{
		{X: VisionDistance * math.Cos(VisionAngle), Y: VisionDistance * math.Sin(VisionAngle)},
		{X: VisionDistance, Y: 0},
		{X: VisionDistance * math.Cos(VisionAngle), Y: -VisionDistance * math.Sin(VisionAngle)},
	}
	for i, c := range cov {
		if !near(c.Center().X, want[i].X, 1e-12) || !near(c.Center().Y, want[i].Y, 1e-12) {
			t.Fatalf("expected circle %d centered at %v, got %v", i, want[i], c.Center())
		}
		if c.Radius() != VisionRadius {
			t.Fatalf("expected radius %v, got %v", VisionRadius, c.Radius())
		}
	}
}

func TestAvoidanceAngle(t *testing.T) {
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	cov := a.CirclesOfVision()
	rng := rand.New(rand.NewSource(1))

	sensor := func(left, ahead, right bool) stubSensor {
		return stubSensor{
			cov[0].Center(): left,
			cov[1].Center(): ahead,
			cov[2].Center(): right,
		}
	}

	cases := []struct {
		name               string
		left, ahead, right bool
		want               float64
	}{
		{"clear", false, false, false, 0},
		{"left", true, false, false, -math.Pi / 6},
		{"right", false, false, true, math.Pi / 6},
		{"corridor", true, false, true, 0},
		{"left and ahead", true, true, false, 5 * math.Pi / 3},
		{"right and ahead", false, true, true, math.Pi / 3},
		{"surrounded", true, true, true, math.Pi},
	}
	for _, tc := range cases {
		got := AvoidanceAngle(cov, sensor(tc.left, tc.ahead, tc.right), rng)
		if !near(got, tc.want, 1e-12) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	seen := map[float64]int{}
	for range 200 {
		got := AvoidanceAngle(cov, sensor(false, true, false), rng)
		if got != math.Pi/2 && got != -math.Pi/2 {
			t.Fatalf("expected ±π/2 for a head-on obstacle, got %v", got)
		}
		seen[got]++
	}
	if len(seen) != 2 {
		t.Fatalf("expected both sides to be picked, got %v", seen)
	}
}

func TestSteerTurnsTowardDesiredDirection(t *testing.T) {
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	a.desiredDirection = geometry.Vector{Y: 1}
	a.steer(tickDelta)

	// full force for one tick starting from rest
	wantTurn := 0.5 * AntForceMax * AntLength / antMomentOfInertia * tickDelta * tickDelta
	if !near(a.FacingAngle(), wantTurn, 1e-12) {
		t.Fatalf("expected a counterclockwise turn of %v, got %v", wantTurn, a.FacingAngle())
	}
	if !near(a.Velocity().Norm(), AntSpeed, 1e-12) {
		t.Fatalf("expected speed to stay %v, got %v", AntSpeed, a.Velocity().Norm())
	}
	if a.Position().X <= 0 {
		t.Fatalf("expected the ant to move forward, got %v", a.Position())
	}

	b := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	b.desiredDirection = geometry.Vector{Y: -1}
	b.steer(tickDelta)
	if !near(b.FacingAngle(), -wantTurn, 1e-12) {
		t.Fatalf("expected a clockwise turn of %v, got %v", -wantTurn, b.FacingAngle())
	}

	// a long tick never overshoots the desired heading
	c := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	c.desiredDirection = geometry.Vector{Y: 1}
	c.steer(0.1)
	if !near(c.FacingAngle(), math.Pi/2, 1e-12) {
		t.Fatalf("expected the turn to stop at π/2, got %v", c.FacingAngle())
	}

	// aligned ants keep going straight
	d := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	d.steer(tickDelta)
	if d.FacingAngle() != 0 {
		t.Fatalf("expected no turn when aligned, got %v", d.FacingAngle())
	}
}

func TestUpdateRejectsContractViolations(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 1, Y: 1}, 0.01)
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)

	err := a.Update(env.food, env.toFood, env.toAnthill, env.anthill, env.obstacles, env.rng, tickDelta)
	if !errors.Is(err, ErrPheromoneKindMismatch) {
		t.Fatalf("expected ErrPheromoneKindMismatch, got %v", err)
	}
	err = a.Update(env.food, env.toAnthill, env.toFood, env.anthill, env.obstacles, env.rng, -tickDelta)
	if !errors.Is(err, ErrNegativeDeltaT) {
		t.Fatalf("expected ErrNegativeDeltaT, got %v", err)
	}
	if a.Position() != (geometry.Vector{}) {
		t.Fatalf("expected a rejected update not to move the ant, got %v", a.Position())
	}
}

func TestFoodPickupAndDelivery(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: -0.01}, 0.003)
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)

	patch := mustCircle(t, geometry.Vector{X: VisionDistance}, 0.0005)
	if !env.food.GenerateInCircle(patch, 1, env.obstacles) {
		t.Fatal("expected food generation to succeed")
	}

	if err := env.update(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.HasFood() {
		t.Fatal("expected the ant to pick up the food in front of it")
	}
	if a.Velocity().X >= 0 {
		t.Fatalf("expected the velocity to be reversed, got %v", a.Velocity())
	}
	if env.food.HasFood() {
		t.Fatal("expected the food particle to be consumed")
	}

	for i := 0; i < 200 && a.HasFood(); i++ {
		if err := env.update(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if a.HasFood() {
		t.Fatal("expected the ant to deliver its food")
	}
	if env.anthill.FoodCounter() != 1 {
		t.Fatalf("expected food counter 1, got %d", env.anthill.FoodCounter())
	}
	if a.Velocity().X <= 0 {
		t.Fatalf("expected the ant to turn back out of the anthill, got %v", a.Velocity())
	}
	if a.PheromoneReserve() != MaxPheromoneReserve {
		t.Fatalf("expected the reserve to be refilled, got %v", a.PheromoneReserve())
	}
}

func TestPicksUpFoodAtTrailingEdgeOfVision(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 1, Y: 1}, 0.01)
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)

	// inside the circle ahead now, behind it once the ant has moved
	edge := geometry.Vector{X: VisionDistance - VisionRadius + 1e-5}
	if !env.food.GenerateInCircle(mustCircle(t, edge, 1e-7), 1, env.obstacles) {
		t.Fatal("expected food generation to succeed")
	}
	moved := edge.Sub(geometry.Vector{X: VisionDistance + AntSpeed*tickDelta}).Norm()
	if moved <= VisionRadius {
		t.Fatalf("expected the particle to leave the circle after one step, got distance %v", moved)
	}

	if err := env.update(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.HasFood() {
		t.Fatal("expected the ant to pick up the food it saw before moving")
	}
	if env.food.HasFood() {
		t.Fatal("expected the food particle to be consumed")
	}
	if a.Velocity().X >= 0 {
		t.Fatalf("expected the velocity to be reversed, got %v", a.Velocity())
	}
}

func TestDeliveryIncrementsCounterByOne(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 0.01}, 0.002)
	a := mustAnt(t, geometry.Vector{X: 0.0079}, geometry.Vector{X: 1}, true)

	if err := env.update(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.HasFood() || env.anthill.FoodCounter() != 1 {
		t.Fatalf("expected one unit delivered, got has food %v and counter %d", a.HasFood(), env.anthill.FoodCounter())
	}
	if a.Velocity().X >= 0 {
		t.Fatalf("expected the ant to turn around, got %v", a.Velocity())
	}
}

func TestAvoidancePreemptsFood(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 1, Y: 1}, 0.01)
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)

	if err := env.obstacles.AddRect(geometry.Vector{X: 0.008, Y: 0.001}, 0.002, 0.002); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// food right behind the obstacle, still within sight
	patch := mustCircle(t, geometry.Vector{X: 0.0075, Y: -0.0025}, 0.0001)
	if !env.food.GenerateInCircle(patch, 1, env.obstacles) {
		t.Fatal("expected food generation to succeed")
	}

	if err := env.update(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.HasFood() {
		t.Fatal("expected obstacle avoidance to skip food pickup")
	}
	if !near(math.Abs(a.FacingAngle()), math.Pi/2, 1e-3) {
		t.Fatalf("expected a ±π/2 turn away from the obstacle, got %v", a.FacingAngle())
	}
	if !near(a.DesiredDirection().Angle(), a.FacingAngle(), 1e-12) {
		t.Fatalf("expected the desired direction to snap to the new heading, got %v", a.DesiredDirection())
	}
}

func TestPheromoneRelease(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 1, Y: 1}, 0.01)
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)

	for range 11 {
		if err := env.update(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if env.toAnthill.Len() != 1 || env.toFood.Len() != 0 {
		t.Fatalf("expected one to-anthill particle, got %d to-anthill and %d to-food", env.toAnthill.Len(), env.toFood.Len())
	}
	want := MaxPheromoneReserve * PheromoneReleaseFraction
	for p := range env.toAnthill.All() {
		if p.Intensity != want {
			t.Fatalf("expected intensity %v, got %v", want, p.Intensity)
		}
	}
	if a.PheromoneReserve() != MaxPheromoneReserve-want {
		t.Fatalf("expected reserve %v, got %v", MaxPheromoneReserve-want, a.PheromoneReserve())
	}
}

func TestPheromoneReleaseStopsBelowMinimumReserve(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 1, Y: 1}, 0.01)
	a, err := NewAnt(geometry.Vector{}, geometry.Vector{X: 1}, 0, true, MinPheromoneReserve)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 11 {
		if err := env.update(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if env.toFood.Len() != 0 {
		t.Fatalf("expected no deposit from a depleted ant, got %d", env.toFood.Len())
	}
}

func TestFollowsTrailOfOppositeKind(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 1, Y: 1}, 0.01)
	a := mustAnt(t, geometry.Vector{}, geometry.Vector{X: 1}, false)
	a.sinceSearch = PheromoneSearchPeriod

	cov := a.CirclesOfVision()
	left, right := cov[0].Center(), cov[2].Center()

	if err := env.toFood.Add(left, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a stronger trail of the wrong kind must be ignored
	if err := env.toAnthill.Add(right, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := env.update(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := left.Sub(a.Position()).Angle()
	if got := a.DesiredDirection().Angle(); !near(got, want, MaxWanderAngle+1e-9) {
		t.Fatalf("expected to head toward the to-food trail at %v, got %v", want, got)
	}
}

func TestFlockAddAroundCircle(t *testing.T) {
	flock := NewFlock(1)
	flock.AddAroundCircle(mustCircle(t, geometry.Vector{}, 1), 0)
	if flock.Len() != 0 {
		t.Fatalf("expected no ants, got %d", flock.Len())
	}

	flock.AddAroundCircle(mustCircle(t, geometry.Vector{}, 1), 100)
	if flock.Len() != 100 {
		t.Fatalf("expected 100 ants, got %d", flock.Len())
	}
	if got := flock.ants[2].Position().X; !near(got, -0.125333, 1e-6) {
		t.Fatalf("expected third ant at x=-0.125333, got %v", got)
	}

	flock.AddAroundCircle(mustCircle(t, geometry.Vector{X: 1, Y: 1}, 1), 1)
	last := flock.ants[flock.Len()-1]
	if !near(last.Position().Y, 2, 1e-12) || !near(last.Position().X, 1, 1e-12) {
		t.Fatalf("expected a lone ant at (1,2), got %v", last.Position())
	}
	if !near(last.FacingAngle(), math.Pi/2, 1e-12) {
		t.Fatalf("expected the ant to face outward, got %v", last.FacingAngle())
	}
}

func TestFlockUpdate(t *testing.T) {
	env := newEnvironment(t, geometry.Vector{X: 10, Y: 10}, 0.01)
	flock := NewFlock(2)
	flock.AddAroundCircle(mustCircle(t, geometry.Vector{}, 0.05), 8)

	before := make([]int, flock.Len())
	for i, a := range flock.Ants() {
		before[i] = a.Frame()
	}

	err := flock.Update(env.food, env.toFood, env.toAnthill, env.anthill, env.obstacles, tickDelta)
	if !errors.Is(err, ErrPheromoneKindMismatch) {
		t.Fatalf("expected ErrPheromoneKindMismatch, got %v", err)
	}

	if err := flock.Update(env.food, env.toAnthill, env.toFood, env.anthill, env.obstacles, 0.031); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range flock.Ants() {
		if want := (before[i] + 1) % AnimationFrames; a.Frame() != want {
			t.Fatalf("expected ant %d on frame %d, got %d", i, want, a.Frame())
		}
	}

	if err := flock.Update(env.food, env.toAnthill, env.toFood, env.anthill, env.obstacles, 0.01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range flock.Ants() {
		if want := (before[i] + 1) % AnimationFrames; a.Frame() != want {
			t.Fatalf("expected ant %d to stay on frame %d, got %d", i, want, a.Frame())
		}
	}
}
