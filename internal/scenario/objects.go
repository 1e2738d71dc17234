package scenario

import (
	"antcolony/internal/colony"
	"antcolony/internal/geometry"
	"antcolony/internal/world"

	"github.com/pkg/errors"
)

// LoadObstacles reads `N` followed by N rows of `x y width height`, (x, y)
// being the top left corner.
func LoadObstacles(path string) (*world.Obstacles, error) {
	obstacles := world.NewObstacles()
	err := readFile(path, func(t *tokens) error {
		n, err := t.count()
		if err != nil {
			return err
		}
		for i := range n {
			var x, y, w, h float64
			if err := t.floats(&x, &y, &w, &h); err != nil {
				return errors.Wrapf(err, "obstacle %d", i)
			}
			if err := obstacles.AddRect(geometry.Vector{X: x, Y: y}, w, h); err != nil {
				return errors.Wrapf(ErrMalformed, "obstacle %d: %v", i, err)
			}
		}
		return t.end()
	})
	if err != nil {
		return nil, err
	}
	return obstacles, nil
}

// SaveObstacles writes obstacles in the format read by LoadObstacles.
func SaveObstacles(path string, obstacles *world.Obstacles) error {
	rows := [][]string{{formatInt(obstacles.Len())}}
	for rect := range obstacles.All() {
		rows = append(rows, []string{
			formatFloat(rect.TopLeft().X),
			formatFloat(rect.TopLeft().Y),
			formatFloat(rect.Width()),
			formatFloat(rect.Height()),
		})
	}
	return writeFile(path, rows)
}

// LoadAnthill reads a single `x y radius food_counter` row. The anthill
// can't overlap any obstacle.
func LoadAnthill(path string, obstacles *world.Obstacles) (*world.Anthill, error) {
	var anthill *world.Anthill
	err := readFile(path, func(t *tokens) error {
		var x, y, r float64
		if err := t.floats(&x, &y, &r); err != nil {
			return err
		}
		counter, err := t.int()
		if err != nil {
			return err
		}
		if err := t.end(); err != nil {
			return err
		}

		circle, err := geometry.NewCircle(geometry.Vector{X: x, Y: y}, r)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "anthill: %v", err)
		}
		if obstacles.AnyInCircle(circle) {
			return errors.Wrap(ErrIntersectsObstacle, "anthill")
		}
		anthill, err = world.NewAnthill(circle, counter)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "anthill: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return anthill, nil
}

// SaveAnthill writes anthill in the format read by LoadAnthill.
func SaveAnthill(path string, anthill *world.Anthill) error {
	return writeFile(path, [][]string{{
		formatFloat(anthill.Center().X),
		formatFloat(anthill.Center().Y),
		formatFloat(anthill.Radius()),
		formatInt(anthill.FoodCounter()),
	}})
}

type patchRow struct {
	circle geometry.Circle
	count  int
}

// LoadFood reads `N` followed by N rows of `x y radius particles` and
// scatters the particles of every patch with a generator seeded with seed.
// No patch can overlap an obstacle.
func LoadFood(path string, obstacles *world.Obstacles, seed int64) (*world.Food, error) {
	var rows []patchRow
	err := readFile(path, func(t *tokens) error {
		n, err := t.count()
		if err != nil {
			return err
		}
		rows = make([]patchRow, 0, n)
		for i := range n {
			var x, y, r float64
			if err := t.floats(&x, &y, &r); err != nil {
				return errors.Wrapf(err, "patch %d", i)
			}
			count, err := t.count()
			if err != nil {
				return errors.Wrapf(err, "patch %d", i)
			}
			circle, err := geometry.NewCircle(geometry.Vector{X: x, Y: y}, r)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "patch %d: %v", i, err)
			}
			rows = append(rows, patchRow{circle: circle, count: count})
		}
		return t.end()
	})
	if err != nil {
		return nil, err
	}

	food := world.NewFood(seed)
	for i, row := range rows {
		if !food.GenerateInCircle(row.circle, row.count, obstacles) {
			return nil, errors.Wrapf(ErrIntersectsObstacle, "read %s: patch %d", path, i)
		}
	}
	return food, nil
}

// SaveFood writes one row per patch with the particles it has left. Loading
// the file scatters them anew.
func SaveFood(path string, food *world.Food) error {
	patches := food.Patches()
	rows := [][]string{{formatInt(len(patches))}}
	for _, p := range patches {
		rows = append(rows, []string{
			formatFloat(p.Circle().Center().X),
			formatFloat(p.Circle().Center().Y),
			formatFloat(p.Circle().Radius()),
			formatInt(p.Len()),
		})
	}
	return writeFile(path, rows)
}

// LoadAnts reads `N` followed by N rows of
// `x y direction_x direction_y has_food frame` into a flock drawing from a
// generator seeded with seed. Every ant starts with a full pheromone
// reserve.
func LoadAnts(path string, seed int64) (*colony.Flock, error) {
	flock := colony.NewFlock(seed)
	err := readFile(path, func(t *tokens) error {
		n, err := t.count()
		if err != nil {
			return err
		}
		for i := range n {
			var x, y, dx, dy float64
			if err := t.floats(&x, &y, &dx, &dy); err != nil {
				return errors.Wrapf(err, "ant %d", i)
			}
			hasFood, err := t.bool()
			if err != nil {
				return errors.Wrapf(err, "ant %d", i)
			}
			frame, err := t.int()
			if err != nil {
				return errors.Wrapf(err, "ant %d", i)
			}
			ant, err := colony.NewAnt(
				geometry.Vector{X: x, Y: y},
				geometry.Vector{X: dx, Y: dy},
				frame, hasFood, colony.MaxPheromoneReserve,
			)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "ant %d: %v", i, err)
			}
			flock.Add(ant)
		}
		return t.end()
	})
	if err != nil {
		return nil, err
	}
	return flock, nil
}

// SaveAnts writes the flock in the format read by LoadAnts. Directions are
// stored as unit vectors.
func SaveAnts(path string, flock *colony.Flock) error {
	rows := [][]string{{formatInt(flock.Len())}}
	for _, a := range flock.Ants() {
		dir := a.Velocity().Scale(1 / colony.AntSpeed)
		rows = append(rows, []string{
			formatFloat(a.Position().X),
			formatFloat(a.Position().Y),
			formatFloat(dir.X),
			formatFloat(dir.Y),
			formatBool(a.HasFood()),
			formatInt(a.Frame()),
		})
	}
	return writeFile(path, rows)
}
