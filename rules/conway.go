package rules

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules (B3/S23): (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Step builds the next generation from g and the neighbour counts taken from
// g before any cell changed. g is left untouched.
func Step(g *model.Grid, counts model.NeighborCount) (*model.Grid, error) {
	width, height := g.Dimensions()
	if cw, ch := counts.Dimensions(); cw != width || ch != height {
		return nil, errors.Wrapf(model.ErrDimensionMismatch, "[Step] counts %dx%d for grid %dx%d", cw, ch, width, height)
	}

	next, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Step] failed to allocate next generation")
	}

	values := counts.Values()
	born := make([]model.Coord, 0, len(values)/8)
	for y := range height {
		for x := range width {
			if ApplyConwayRules(int(values[y*width+x]), g.Alive(x, y)) {
				born = append(born, model.Coord{X: x, Y: y})
			}
		}
	}
	next.SetAlive(born...)
	return next, nil
}
