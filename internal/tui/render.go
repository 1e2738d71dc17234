// Package tui draws simulation snapshots on a character terminal.
package tui

import (
	"fmt"
	"math"

	"antcolony/internal/geometry"
	"antcolony/internal/pheromone"
	"antcolony/internal/sim"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Canvas is where the renderer draws. tcell.Screen satisfies it.
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	backgroundColor = colorful.Color{R: 185 / 255.0, G: 148 / 255.0, B: 112 / 255.0}
	anthillColor    = colorful.Color{R: 166 / 255.0, G: 75 / 255.0, B: 42 / 255.0}
	obstacleColor   = colorful.Color{R: 111 / 255.0, G: 78 / 255.0, B: 55 / 255.0}
	foodColor       = colorful.Color{R: 95 / 255.0, G: 111 / 255.0, B: 82 / 255.0}
	toFoodColor     = colorful.Color{R: 170 / 255.0, G: 86 / 255.0, B: 86 / 255.0}
	toAnthillColor  = colorful.Color{R: 86 / 255.0, G: 113 / 255.0, B: 137 / 255.0}
	antColor        = colorful.Color{R: 20 / 255.0, G: 20 / 255.0, B: 20 / 255.0}
	loadedAntColor  = colorful.Color{R: 40 / 255.0, G: 90 / 255.0, B: 30 / 255.0}
)

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// a terminal cell is about twice as tall as it is wide
const cellAspect = 2

// headings, counterclockwise from east
var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Renderer maps a fixed world rectangle onto the canvas.
type Renderer struct {
	bounds geometry.Rectangle
}

// NewRenderer returns a renderer showing bounds.
func NewRenderer(bounds geometry.Rectangle) *Renderer {
	return &Renderer{bounds: bounds}
}

// FitBounds returns the rectangle holding every object of snap, padded by
// margin on each side.
func FitBounds(snap sim.Snapshot, margin float64) geometry.Rectangle {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	grow := func(p geometry.Vector) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	c, r := snap.Anthill.Center(), snap.Anthill.Radius()
	grow(c.Sub(geometry.Vector{X: r, Y: r}))
	grow(c.Add(geometry.Vector{X: r, Y: r}))
	for _, rect := range snap.Obstacles {
		for _, corner := range rect.Corners() {
			grow(corner)
		}
	}
	for _, p := range snap.Food {
		grow(p)
	}
	for _, a := range snap.Ants {
		grow(a.Position)
	}

	margin = math.Max(margin, 1e-9)
	// minX <= maxX since the anthill always counts
	bounds, _ := geometry.NewRectangle(
		geometry.Vector{X: minX - margin, Y: maxY + margin},
		maxX-minX+2*margin,
		maxY-minY+2*margin,
	)
	return bounds
}

type viewport struct {
	left, top float64
	cell      float64 // world width of a column
	cols      int
	rows      int
}

func (r *Renderer) viewport(cols, rows int) viewport {
	cell := math.Max(r.bounds.Width()/float64(cols), r.bounds.Height()/float64(rows*cellAspect))
	return viewport{left: r.bounds.Left(), top: r.bounds.Top(), cell: cell, cols: cols, rows: rows}
}

func (v viewport) column(x float64) float64 { return (x - v.left) / v.cell }
func (v viewport) row(y float64) float64    { return (v.top - y) / (v.cell * cellAspect) }

func (v viewport) cellOf(p geometry.Vector) (int, int, bool) {
	x := int(math.Floor(v.column(p.X)))
	y := int(math.Floor(v.row(p.Y)))
	return x, y, v.inside(x, y)
}

func (v viewport) inside(x, y int) bool {
	return x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

func (v viewport) center(x, y int) geometry.Vector {
	return geometry.Vector{
		X: v.left + (float64(x)+0.5)*v.cell,
		Y: v.top - (float64(y)+0.5)*v.cell*cellAspect,
	}
}

type cell struct {
	ch         rune
	fg         colorful.Color
	bg         colorful.Color
	toFood     float64
	toAnthill  float64
	foreground bool
}

// Draw paints snap over the whole canvas; the bottom line holds a status
// summary.
func (r *Renderer) Draw(canvas Canvas, snap sim.Snapshot) {
	width, height := canvas.Size()
	if width <= 0 || height <= 1 {
		return
	}
	v := r.viewport(width, height-1)

	grid := make([]cell, v.cols*v.rows)
	at := func(x, y int) *cell { return &grid[y*v.cols+x] }
	for i := range grid {
		grid[i] = cell{ch: ' ', bg: backgroundColor}
	}

	for _, p := range snap.ToFood {
		if x, y, ok := v.cellOf(p.Position); ok {
			at(x, y).toFood += p.Intensity
		}
	}
	for _, p := range snap.ToAnthill {
		if x, y, ok := v.cellOf(p.Position); ok {
			at(x, y).toAnthill += p.Intensity
		}
	}
	for i := range grid {
		c := &grid[i]
		if c.toFood > 0 {
			c.bg = c.bg.BlendRgb(toFoodColor, math.Min(c.toFood/pheromone.MaxIntensity, 1))
		}
		if c.toAnthill > 0 {
			c.bg = c.bg.BlendRgb(toAnthillColor, math.Min(c.toAnthill/pheromone.MaxIntensity, 1))
		}
	}

	for _, p := range snap.Food {
		if x, y, ok := v.cellOf(p); ok {
			c := at(x, y)
			c.ch, c.fg, c.foreground = '*', foodColor, true
		}
	}

	for _, rect := range snap.Obstacles {
		x0 := int(math.Floor(v.column(rect.Left())))
		x1 := int(math.Ceil(v.column(rect.Right()))) - 1
		y0 := int(math.Floor(v.row(rect.Top())))
		y1 := int(math.Ceil(v.row(rect.Bottom()))) - 1
		for y := max(y0, 0); y <= min(max(y1, y0), v.rows-1); y++ {
			for x := max(x0, 0); x <= min(max(x1, x0), v.cols-1); x++ {
				c := at(x, y)
				c.ch, c.fg, c.bg, c.foreground = ' ', obstacleColor, obstacleColor, true
			}
		}
	}

	hill := snap.Anthill
	for y := range v.rows {
		for x := range v.cols {
			if hill.Radius() > 0 && hill.Contains(v.center(x, y)) {
				at(x, y).bg = anthillColor
			}
		}
	}
	if x, y, ok := v.cellOf(hill.Center()); ok {
		c := at(x, y)
		c.ch, c.fg, c.bg, c.foreground = 'O', antColor, anthillColor, true
	}

	for _, a := range snap.Ants {
		for _, vision := range a.Vision {
			if x, y, ok := v.cellOf(vision.Center()); ok && !at(x, y).foreground {
				c := at(x, y)
				c.ch, c.fg = '·', antColor
			}
		}
	}
	for _, a := range snap.Ants {
		x, y, ok := v.cellOf(a.Position)
		if !ok {
			continue
		}
		c := at(x, y)
		c.ch, c.fg, c.foreground = headingArrow(a.Heading), antColor, true
		if a.HasFood {
			c.fg = loadedAntColor
		}
	}

	for y := range v.rows {
		for x := range v.cols {
			c := at(x, y)
			style := tcell.StyleDefault.Background(tcellColor(c.bg)).Foreground(tcellColor(c.fg))
			canvas.SetContent(x, y, c.ch, nil, style)
		}
	}

	r.drawStatus(canvas, width, height-1, snap)
}

func headingArrow(angle float64) rune {
	i := int(math.Round(angle/(math.Pi/4))) % len(arrows)
	if i < 0 {
		i += len(arrows)
	}
	return arrows[i]
}

// Status formats the one line summary shown under the world.
func Status(snap sim.Snapshot) string {
	state := "running"
	if snap.Paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s | tick %d | t=%.2fs | ants %d | food %d | anthill %d | x%d | %s",
		snap.Scenario, snap.Tick, snap.Time, len(snap.Ants), len(snap.Food), snap.FoodCounter, snap.Speed, state)
	if snap.OptimizePath {
		line += fmt.Sprintf(" | optimizing, mean distance %.4f", snap.MeanDistance)
	}
	return line
}

func (r *Renderer) drawStatus(canvas Canvas, width, y int, snap sim.Snapshot) {
	line := runewidth.Truncate(Status(snap), width, "…")
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, ch := range line {
		canvas.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < width; x++ {
		canvas.SetContent(x, y, ' ', nil, style)
	}
}
