// Package patterns holds named starting configurations and the presets that
// place them on a board of a given size.
package patterns

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Pattern is a named, read-only set of live cells relative to its own origin
type Pattern struct {
	Name        string
	Description string
	Cells       []model.Coord

	// Boundary is the edge the pattern is run with on its own board
	Boundary model.BoundaryPolicy
}

// Size returns the extent of the pattern measured from its origin
func (p Pattern) Size() (width, height int) {
	for _, c := range p.Cells {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}
	return
}

// Placement positions a pattern on the board. Flips mirror the pattern around
// the offset, so a flipped pattern extends left of and above it.
type Placement struct {
	Pattern Pattern
	OffsetX int
	OffsetY int
	FlipH   bool
	FlipV   bool
}

// At places a pattern without flipping
func At(p Pattern, x, y int) Placement {
	return Placement{Pattern: p, OffsetX: x, OffsetY: y}
}

// Coords returns the absolute coordinates of the placed cells, which may lie
// outside any particular board.
func (pl Placement) Coords() []model.Coord {
	coords := make([]model.Coord, 0, len(pl.Pattern.Cells))
	for _, c := range pl.Pattern.Cells {
		x := pl.OffsetX + c.X
		if pl.FlipH {
			x = pl.OffsetX - c.X
		}
		y := pl.OffsetY + c.Y
		if pl.FlipV {
			y = pl.OffsetY - c.Y
		}
		coords = append(coords, model.Coord{X: x, Y: y})
	}
	return coords
}

// Centered places p so its origin sits one cell up and left of the board centre
func Centered(p Pattern, width, height int) Placement {
	return At(p, width/2-1, height/2-1)
}

// Seed creates an all-dead width x height grid and overlays the placements.
// Cells that fall off the board are dropped.
func Seed(width, height int, placements ...Placement) (*model.Grid, error) {
	grid, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Seed] failed to create grid")
	}
	for _, pl := range placements {
		grid.SetAlive(pl.Coords()...)
	}
	return grid, nil
}
