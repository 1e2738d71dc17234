package sim

import (
	"context"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"testing"
	"time"

	"antcolony/internal/colony"
	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/scenario"
	"antcolony/internal/world"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCircle(t *testing.T, x, y, r float64) geometry.Circle {
	t.Helper()
	c, err := geometry.NewCircle(geometry.Vector{X: x, Y: y}, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// newTestScenario returns an open field with an anthill at the origin,
// ants spread on its rim and a food patch to the right.
func newTestScenario(t *testing.T, ants int) *scenario.Scenario {
	t.Helper()
	obstacles := world.NewObstacles()
	if err := obstacles.AddRect(geometry.Vector{X: -0.5, Y: 0.5}, 0.1, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	anthill, err := world.NewAnthill(mustCircle(t, 0, 0, 0.02), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	food := world.NewFood(11)
	if !food.GenerateInCircle(mustCircle(t, 0.2, 0, 0.02), 20, obstacles) {
		t.Fatal("expected food generation to succeed")
	}
	flock := colony.NewFlock(44)
	flock.AddAroundCircle(anthill.Circle(), ants)

	return &scenario.Scenario{
		Name:      "test",
		Config:    scenario.DefaultConfig(),
		Obstacles: obstacles,
		Anthill:   anthill,
		Food:      food,
		Flock:     flock,
	}
}

func newTestSimulation(t *testing.T, sc *scenario.Scenario) *Simulation {
	t.Helper()
	s, err := New(sc, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestStepMovesAntsAndDepositsPheromones(t *testing.T) {
	s := newTestSimulation(t, newTestScenario(t, 10))

	for range 11 {
		if err := s.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snap := s.Snapshot()
	if snap.Tick != 11 {
		t.Fatalf("expected tick 11, got %d", snap.Tick)
	}
	if math.Abs(snap.Time-0.11) > 1e-9 {
		t.Fatalf("expected 0.11s elapsed, got %v", snap.Time)
	}
	if len(snap.ToAnthill) != 10 {
		t.Fatalf("expected one to-anthill deposit per ant, got %d", len(snap.ToAnthill))
	}
	if len(snap.ToFood) != 0 {
		t.Fatalf("expected no to-food deposit yet, got %d", len(snap.ToFood))
	}
	for _, a := range snap.Ants {
		if a.Position.Norm() <= 0.02 {
			t.Fatalf("expected ants to have walked out of the anthill, got %v", a.Position)
		}
	}
}

func TestStepKeepsPheromonesWithinBounds(t *testing.T) {
	s := newTestSimulation(t, newTestScenario(t, 20))

	for range 300 {
		if err := s.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snap := s.Snapshot()
	if len(snap.ToAnthill) == 0 {
		t.Fatal("expected pheromones to be deposited")
	}
	for _, p := range append(snap.ToAnthill, snap.ToFood...) {
		if p.Intensity > pheromone.MaxIntensity || p.Intensity <= pheromone.VisualizationProfile.Floor {
			t.Fatalf("expected intensities in (floor, max], got %v", p.Intensity)
		}
	}
}

func TestLineDistance(t *testing.T) {
	l := Line{Slope: 1}
	if got := l.Distance(geometry.Vector{X: 1}); math.Abs(got-1/math.Sqrt2) > 1e-12 {
		t.Fatalf("expected distance 1/sqrt(2), got %v", got)
	}
	if got := (Line{Intercept: 2}).Distance(geometry.Vector{X: 5, Y: 2}); got != 0 {
		t.Fatalf("expected a point on the line to be at distance 0, got %v", got)
	}
}

func TestAverageDistanceSampling(t *testing.T) {
	sc := newTestScenario(t, 0)
	ant, err := colony.NewAnt(geometry.Vector{X: 1, Y: 0.5}, geometry.Vector{X: 1}, 0, false, colony.MaxPheromoneReserve)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sc.Flock.Add(ant)

	s := newTestSimulation(t, sc)
	for range 105 {
		if err := s.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := s.AverageDistances(); len(got) != 0 {
		t.Fatalf("expected no samples outside path optimization, got %v", got)
	}

	s.SetOptimizationMode(true)
	for range 105 {
		if err := s.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got := s.AverageDistances()
	if len(got) != 1 {
		t.Fatalf("expected one sample after a second, got %v", got)
	}
	// the ant walks for about two seconds from y = 0.5
	if math.Abs(got[0]-0.5) > 3*colony.AntSpeed {
		t.Fatalf("expected a mean distance close to 0.5, got %v", got[0])
	}
	if s.Snapshot().MeanDistance != got[0] {
		t.Fatalf("expected the snapshot to carry the latest sample %v", got[0])
	}
}

func TestSetOptimizationModeSwitchesBothFields(t *testing.T) {
	sc := newTestScenario(t, 1)
	sc.Config.OptimizePath = true
	s := newTestSimulation(t, sc)

	if !s.OptimizationMode() || s.toAnthill.Profile() != pheromone.OptimizationProfile || s.toFood.Profile() != pheromone.OptimizationProfile {
		t.Fatal("expected the scenario config to enable path optimization")
	}

	s.SetOptimizationMode(false)
	if s.OptimizationMode() || s.toAnthill.Profile() != pheromone.VisualizationProfile || s.toFood.Profile() != pheromone.VisualizationProfile {
		t.Fatal("expected path optimization to be disabled on both fields")
	}
}

func TestApplyControlSettings(t *testing.T) {
	s := newTestSimulation(t, newTestScenario(t, 1))

	applied := s.ApplyControlSettings(ControlSettings{OptimizePath: true, Paused: true, Speed: -3})
	if !applied.OptimizePath || !applied.Paused {
		t.Fatalf("expected optimize and pause to be applied, got %+v", applied)
	}
	if applied.Speed != 1 {
		t.Fatalf("expected speed to clamp to 1, got %v", applied.Speed)
	}

	applied = s.ApplyControlSettings(ControlSettings{Speed: 1000})
	if applied.Speed != MaxSpeed {
		t.Fatalf("expected speed to clamp to %d, got %v", MaxSpeed, applied.Speed)
	}
	if applied.Paused || applied.OptimizePath {
		t.Fatalf("expected the knobs to be released, got %+v", applied)
	}
}

func TestSnapshotDebugIncludesVision(t *testing.T) {
	sc := newTestScenario(t, 3)
	s := newTestSimulation(t, sc)
	if snap := s.Snapshot(); snap.Ants[0].Vision != nil {
		t.Fatal("expected no vision data outside debug mode")
	}

	sc = newTestScenario(t, 3)
	sc.Config.Debug = true
	s = newTestSimulation(t, sc)
	snap := s.Snapshot()
	if len(snap.Ants[0].Vision) != 3 {
		t.Fatalf("expected three circles of vision, got %d", len(snap.Ants[0].Vision))
	}
	if len(snap.Obstacles) != 1 || len(snap.Food) != 20 {
		t.Fatalf("expected 1 obstacle and 20 food particles, got %d and %d", len(snap.Obstacles), len(snap.Food))
	}
}

func TestRunReports(t *testing.T) {
	s := newTestSimulation(t, newTestScenario(t, 5))
	s.SetSpeed(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reported := make(chan Snapshot, 1)
	done := make(chan error, 1)

	go func() {
		done <- s.Run(ctx, 5*time.Millisecond, func(snap Snapshot) {
			select {
			case reported <- snap:
			default:
			}
			cancel()
		})
	}()

	select {
	case snap := <-reported:
		if snap.Tick != 3 {
			t.Fatalf("expected 3 ticks per interval, got %d", snap.Tick)
		}
		if len(snap.Ants) != 5 {
			t.Fatalf("expected 5 ants, got %d", len(snap.Ants))
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for report")
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean stop, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestRunPaused(t *testing.T) {
	s := newTestSimulation(t, newTestScenario(t, 5))
	s.SetPaused(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reported := make(chan Snapshot, 1)

	go s.Run(ctx, 5*time.Millisecond, func(snap Snapshot) {
		select {
		case reported <- snap:
		default:
		}
		cancel()
	})

	select {
	case snap := <-reported:
		if snap.Tick != 0 || !snap.Paused {
			t.Fatalf("expected a paused simulation to stay at tick 0, got %d", snap.Tick)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for report")
	}
}

func TestSaveWritesLoadableScenario(t *testing.T) {
	s := newTestSimulation(t, newTestScenario(t, 4))
	for range 5 {
		if err := s.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	dir := filepath.Join(t.TempDir(), "saved")
	if err := s.Save(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := scenario.Load(dir, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Flock.Len() != 4 || loaded.Obstacles.Len() != 1 || loaded.Food.Len() != 20 {
		t.Fatalf("expected the saved state to load back, got %d ants, %d obstacles, %d food",
			loaded.Flock.Len(), loaded.Obstacles.Len(), loaded.Food.Len())
	}
}
