// Package scenario reads and writes the scenario directories a simulation
// starts from.
//
// A scenario directory holds:
//
//	obstacles/obstacles.dat
//	anthill/anthill.dat
//	food/food.dat
//	ants/ants.dat
//	colony.toml          (optional)
//
// Every .dat file is whitespace separated and terminated by END. A file
// that doesn't parse is rejected as a whole.
package scenario

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"antcolony/internal/colony"
	"antcolony/internal/world"

	"github.com/pkg/errors"
)

// File locations inside a scenario directory.
const (
	ObstaclesFile = "obstacles/obstacles.dat"
	AnthillFile   = "anthill/anthill.dat"
	FoodFile      = "food/food.dat"
	AntsFile      = "ants/ants.dat"
	ConfigFile    = "colony.toml"
)

// Scenario is everything a simulation starts from.
type Scenario struct {
	Name   string
	Config Config

	Obstacles *world.Obstacles
	Anthill   *world.Anthill
	Food      *world.Food
	Flock     *colony.Flock
}

// List returns the names of the scenario directories under root, sorted.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "list scenarios in %s", root)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	if len(names) == 0 {
		return nil, errors.Errorf("list scenarios in %s: no scenario found", root)
	}
	return names, nil
}

// Resolve returns the directory of the scenario called name under root.
// An empty name picks the first scenario in alphabetical order.
func Resolve(root, name string) (string, error) {
	names, err := List(root)
	if err != nil {
		return "", err
	}
	if name == "" {
		return filepath.Join(root, names[0]), nil
	}
	if !slices.Contains(names, name) {
		return "", errors.Errorf("scenario %q not found in %s, have %v", name, root, names)
	}
	return filepath.Join(root, name), nil
}

// Load reads the scenario stored in dir. Obstacles come first since the
// anthill and the food are checked against them.
func Load(dir string, logger *slog.Logger) (*Scenario, error) {
	if logger == nil {
		logger = slog.Default()
	}
	name := filepath.Base(filepath.Clean(dir))
	logger = logger.With("scenario", name)

	conf, err := ParseConfig(filepath.Join(dir, ConfigFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("no config file, using defaults", "file", ConfigFile)
		conf = DefaultConfig()
	case err != nil:
		return nil, err
	}

	obstacles, err := LoadObstacles(filepath.Join(dir, ObstaclesFile))
	if err != nil {
		return nil, err
	}
	anthill, err := LoadAnthill(filepath.Join(dir, AnthillFile), obstacles)
	if err != nil {
		return nil, err
	}
	food, err := LoadFood(filepath.Join(dir, FoodFile), obstacles, conf.FoodSeed)
	if err != nil {
		return nil, err
	}
	flock, err := LoadAnts(filepath.Join(dir, AntsFile), conf.FlockSeed)
	if err != nil {
		return nil, err
	}

	logger.Info("scenario loaded",
		"obstacles", obstacles.Len(),
		"food", food.Len(),
		"ants", flock.Len(),
		"anthill_food", anthill.FoodCounter(),
		"optimize_path", conf.OptimizePath,
	)

	return &Scenario{
		Name:      name,
		Config:    conf,
		Obstacles: obstacles,
		Anthill:   anthill,
		Food:      food,
		Flock:     flock,
	}, nil
}

// Save writes s under dir, creating the directory layout Load expects.
func (s *Scenario) Save(dir string) error {
	for _, sub := range []string{ObstaclesFile, AnthillFile, FoodFile, AntsFile} {
		if err := os.MkdirAll(filepath.Dir(filepath.Join(dir, sub)), 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	if err := SaveObstacles(filepath.Join(dir, ObstaclesFile), s.Obstacles); err != nil {
		return err
	}
	if err := SaveAnthill(filepath.Join(dir, AnthillFile), s.Anthill); err != nil {
		return err
	}
	if err := SaveFood(filepath.Join(dir, FoodFile), s.Food); err != nil {
		return err
	}
	if err := SaveAnts(filepath.Join(dir, AntsFile), s.Flock); err != nil {
		return err
	}
	return SaveConfig(filepath.Join(dir, ConfigFile), s.Config)
}
