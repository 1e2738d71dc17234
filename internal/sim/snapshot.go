package sim

import (
	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
)

// AntState is what a spectator sees of an ant.
type AntState struct {
	Position geometry.Vector
	Heading  float64
	HasFood  bool
	Frame    int

	// filled only for debug scenarios
	Desired geometry.Vector
	Vision  []geometry.Circle
}

// Snapshot is a copy of the render facing state, safe to keep after the
// simulation moves on.
type Snapshot struct {
	Scenario     string
	Tick         uint64
	Time         float64
	Paused       bool
	OptimizePath bool
	Speed        int
	Debug        bool

	Anthill     geometry.Circle
	FoodCounter int
	Obstacles   []geometry.Rectangle
	Food        []geometry.Vector
	Ants        []AntState
	ToAnthill   []pheromone.Particle
	ToFood      []pheromone.Particle

	// latest mean distance from the optimal line, 0 before the first sample
	MeanDistance float64
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Scenario:     s.name,
		Tick:         s.tick,
		Time:         s.elapsed,
		Paused:       s.paused,
		OptimizePath: s.optimize,
		Speed:        s.speed,
		Debug:        s.config.Debug,
		Anthill:      s.anthill.Circle(),
		FoodCounter:  s.anthill.FoodCounter(),
		Obstacles:    make([]geometry.Rectangle, 0, s.obstacles.Len()),
		Food:         make([]geometry.Vector, 0, s.food.Len()),
		Ants:         make([]AntState, 0, s.flock.Len()),
		ToAnthill:    make([]pheromone.Particle, 0, s.toAnthill.Len()),
		ToFood:       make([]pheromone.Particle, 0, s.toFood.Len()),
	}
	if n := len(s.distances); n > 0 {
		snap.MeanDistance = s.distances[n-1]
	}

	for rect := range s.obstacles.All() {
		snap.Obstacles = append(snap.Obstacles, rect)
	}
	for p := range s.food.All() {
		snap.Food = append(snap.Food, p)
	}
	for p := range s.toAnthill.All() {
		snap.ToAnthill = append(snap.ToAnthill, p)
	}
	for p := range s.toFood.All() {
		snap.ToFood = append(snap.ToFood, p)
	}
	for _, a := range s.flock.Ants() {
		state := AntState{
			Position: a.Position(),
			Heading:  a.FacingAngle(),
			HasFood:  a.HasFood(),
			Frame:    a.Frame(),
		}
		if s.config.Debug {
			cov := a.CirclesOfVision()
			state.Desired = a.DesiredDirection()
			state.Vision = cov[:]
		}
		snap.Ants = append(snap.Ants, state)
	}
	return snap
}
