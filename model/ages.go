package model

import "github.com/pkg/errors"

// AgeTracker derives how many consecutive generations each cell has been
// alive from a stream of grid snapshots. A newborn cell has age 1, a dead
// cell age 0.
type AgeTracker struct {
	width  int
	height int
	ages   []int
}

// NewAgeTracker starts tracking from the given grid; every living cell starts at age 1
func NewAgeTracker(g *Grid) *AgeTracker {
	t := &AgeTracker{width: g.width, height: g.height, ages: make([]int, g.width*g.height)}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				t.ages[y*g.width+x] = 1
			}
		}
	}
	return t
}

// Observe advances the ages with the next generation
func (t *AgeTracker) Observe(g *Grid) error {
	if g.width != t.width || g.height != t.height {
		return errors.Wrapf(ErrDimensionMismatch, "[AgeTracker.Observe] grid %dx%d does not match tracker %dx%d",
			g.width, g.height, t.width, t.height)
	}
	for y := range g.height {
		for x := range g.width {
			idx := y*t.width + x
			if g.cells[y][x] {
				t.ages[idx]++
			} else {
				t.ages[idx] = 0
			}
		}
	}
	return nil
}

// Age returns the age of a cell, 0 for dead or out-of-range cells
func (t *AgeTracker) Age(x, y int) int {
	if t == nil || x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0
	}
	return t.ages[y*t.width+x]
}

// Oldest returns the highest age currently on the board
func (t *AgeTracker) Oldest() (oldest int) {
	for _, a := range t.ages {
		oldest = max(oldest, a)
	}
	return
}
