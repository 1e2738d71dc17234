package world

import (
	"antcolony/internal/geometry"

	"github.com/pkg/errors"
)

// ErrNegativeFood is returned for negative food counters and deposits.
var ErrNegativeFood = errors.New("world: food amount can't be negative")

// Anthill is the colony's home: a fixed circle plus the food stored in it.
type Anthill struct {
	circle      geometry.Circle
	foodCounter int
}

// NewAnthill places an anthill. foodCounter must not be negative.
func NewAnthill(circle geometry.Circle, foodCounter int) (*Anthill, error) {
	if foodCounter < 0 {
		return nil, errors.Wrapf(ErrNegativeFood, "food counter %d", foodCounter)
	}
	return &Anthill{circle: circle, foodCounter: foodCounter}, nil
}

// Circle returns the anthill's area.
func (a *Anthill) Circle() geometry.Circle { return a.circle }

// Center returns the anthill's center.
func (a *Anthill) Center() geometry.Vector { return a.circle.Center() }

// Radius returns the anthill's radius.
func (a *Anthill) Radius() float64 { return a.circle.Radius() }

// FoodCounter returns the amount of food delivered so far.
func (a *Anthill) FoodCounter() int { return a.foodCounter }

// Contains reports whether p is inside the anthill.
func (a *Anthill) Contains(p geometry.Vector) bool {
	return a.circle.Contains(p)
}

// AddFood deposits amount units of food.
func (a *Anthill) AddFood(amount int) error {
	if amount < 0 {
		return errors.Wrapf(ErrNegativeFood, "deposit %d", amount)
	}
	a.foodCounter += amount
	return nil
}
