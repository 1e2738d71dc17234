package sim

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"antcolony/internal/colony"
	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/scenario"
	"antcolony/internal/world"

	"github.com/pkg/errors"
)

// DistanceCheckPeriod is the simulated time between two samples of the mean
// distance of the ants from the optimal line.
const DistanceCheckPeriod = 1.0

// MaxSpeed caps how many ticks run per wall clock interval.
const MaxSpeed = 64

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// Distance returns the distance of p from the line.
func (l Line) Distance(p geometry.Vector) float64 {
	return math.Abs(l.Slope*p.X+l.Intercept-p.Y) / math.Sqrt(l.Slope*l.Slope+1)
}

// Simulation wires a scenario to a pair of pheromone fields and advances
// them tick by tick. It is safe for concurrent use: the tick loop writes
// while spectators read snapshots and flip the control knobs.
type Simulation struct {
	mu sync.RWMutex

	name      string
	config    scenario.Config
	obstacles *world.Obstacles
	anthill   *world.Anthill
	food      *world.Food
	flock     *colony.Flock
	toAnthill *pheromone.Field
	toFood    *pheromone.Field

	tick    uint64
	elapsed float64

	paused   bool
	speed    int
	optimize bool
	line     Line

	sinceDistanceCheck float64
	distances          []float64

	logger *slog.Logger
}

// New builds a simulation over s. The scenario's objects are owned by the
// simulation from then on.
func New(s *scenario.Scenario, logger *slog.Logger) (*Simulation, error) {
	if logger == nil {
		logger = slog.Default()
	}
	toAnthill, err := pheromone.NewField(pheromone.ToAnthill, 2*colony.VisionRadius)
	if err != nil {
		return nil, err
	}
	toFood, err := pheromone.NewField(pheromone.ToFood, 2*colony.VisionRadius)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		name:      s.Name,
		config:    s.Config,
		obstacles: s.Obstacles,
		anthill:   s.Anthill,
		food:      s.Food,
		flock:     s.Flock,
		toAnthill: toAnthill,
		toFood:    toFood,
		speed:     1,
		line:      Line{Slope: s.Config.Slope, Intercept: s.Config.Intercept},
		logger:    logger.With("scenario", s.Name),
	}
	sim.setOptimizationMode(s.Config.OptimizePath)
	return sim, nil
}

// Step advances the world by one tick: every ant moves, then both
// pheromone fields age.
func (s *Simulation) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := s.config.TickDelta
	if err := s.flock.Update(s.food, s.toAnthill, s.toFood, s.anthill, s.obstacles, dt); err != nil {
		return errors.Wrapf(err, "tick %d", s.tick)
	}
	if err := s.toAnthill.Evaporate(dt); err != nil {
		return errors.Wrapf(err, "tick %d", s.tick)
	}
	if err := s.toFood.Evaporate(dt); err != nil {
		return errors.Wrapf(err, "tick %d", s.tick)
	}
	s.tick++
	s.elapsed += dt

	if s.optimize {
		s.sinceDistanceCheck += dt
		if s.sinceDistanceCheck > DistanceCheckPeriod {
			s.sinceDistanceCheck -= DistanceCheckPeriod
			if d, ok := s.averageDistance(); ok {
				s.distances = append(s.distances, d)
			}
		}
	}
	return nil
}

func (s *Simulation) averageDistance() (float64, bool) {
	if s.flock.Len() == 0 {
		return 0, false
	}
	total := 0.0
	for _, a := range s.flock.Ants() {
		total += s.line.Distance(a.Position())
	}
	return total / float64(s.flock.Len()), true
}

// SetOptimizationMode switches both fields between short lived and long
// lived pheromones and starts or stops sampling the mean distance from the
// optimal line.
func (s *Simulation) SetOptimizationMode(optimize bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOptimizationMode(optimize)
}

func (s *Simulation) setOptimizationMode(optimize bool) {
	s.optimize = optimize
	s.toAnthill.SetOptimizationMode(optimize)
	s.toFood.SetOptimizationMode(optimize)
}

// OptimizationMode reports whether path optimization is on.
func (s *Simulation) OptimizationMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.optimize
}

// SetPaused stops or resumes the Run loop. Step still works while paused.
func (s *Simulation) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

// Paused reports whether the Run loop is paused.
func (s *Simulation) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

// SetSpeed sets how many ticks Run performs per interval. Values are
// clamped to [1, MaxSpeed].
func (s *Simulation) SetSpeed(speed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if speed < 1 {
		speed = 1
	} else if speed > MaxSpeed {
		speed = MaxSpeed
	}
	s.speed = speed
}

// Speed returns the ticks performed per Run interval.
func (s *Simulation) Speed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.speed
}

// AverageDistances returns the samples of the mean distance of the ants
// from the optimal line, oldest first.
func (s *Simulation) AverageDistances() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]float64(nil), s.distances...)
}

// Save writes the current state as a scenario directory.
func (s *Simulation) Save(dir string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conf := s.config
	conf.OptimizePath = s.optimize
	snap := &scenario.Scenario{
		Name:      s.name,
		Config:    conf,
		Obstacles: s.obstacles,
		Anthill:   s.anthill,
		Food:      s.food,
		Flock:     s.flock,
	}
	if err := snap.Save(dir); err != nil {
		return err
	}
	s.logger.Info("simulation saved", "dir", dir, "tick", s.tick)
	return nil
}

// Run steps the simulation every interval until ctx is done or a tick
// fails, and hands a snapshot to report after each interval.
func (s *Simulation) Run(ctx context.Context, interval time.Duration, report func(Snapshot)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("simulation started", "interval", interval, "tick_delta", s.config.TickDelta)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("simulation stopped", "tick", s.currentTick())
			return nil
		case <-ticker.C:
			if !s.Paused() {
				for range s.Speed() {
					if err := s.Step(); err != nil {
						s.logger.Error("simulation step failed", "err", err)
						return err
					}
				}
			}
			snap := s.Snapshot()
			if report != nil {
				report(snap)
			}
			s.logger.Debug("simulation step",
				"tick", snap.Tick,
				"ants", len(snap.Ants),
				"food", len(snap.Food),
				"anthill_food", snap.FoodCounter,
			)
		}
	}
}

func (s *Simulation) currentTick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}
