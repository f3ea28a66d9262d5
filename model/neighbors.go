package model

import "github.com/pkg/errors"

// NeighborCount holds, for one generation, the number of living Moore
// neighbours of every cell. Values are always in [0, 8].
type NeighborCount struct {
	width  int
	height int
	counts []uint8
}

// Dimensions returns the width and height the counts were taken over
func (n NeighborCount) Dimensions() (width, height int) {
	return n.width, n.height
}

// At returns the neighbour count of a cell
func (n NeighborCount) At(x, y int) (int, error) {
	if x < 0 || x >= n.width || y < 0 || y >= n.height {
		return 0, errors.Wrapf(ErrOutOfBounds, "[NeighborCount.At] (%d,%d) outside %dx%d counts", x, y, n.width, n.height)
	}
	return int(n.counts[y*n.width+x]), nil
}

// Values exposes the row-major backing slice
func (n NeighborCount) Values() []uint8 {
	return n.counts
}

// neighborOffsets is the Moore neighbourhood without the centre cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountNeighbors counts living neighbours for every cell of g under the given
// boundary policy. g is only read.
func CountNeighbors(g *Grid, policy BoundaryPolicy) (NeighborCount, error) {
	n := NeighborCount{width: g.width, height: g.height, counts: make([]uint8, g.width*g.height)}
	if err := countInto(g, policy, n); err != nil {
		return NeighborCount{}, err
	}
	return n, nil
}

func countInto(g *Grid, policy BoundaryPolicy, n NeighborCount) error {
	switch policy {
	case Wrap:
		for y := range g.height {
			for x := range g.width {
				n.counts[y*g.width+x] = g.countWrapped(x, y)
			}
		}
	case ZeroFill:
		for y := range g.height {
			for x := range g.width {
				n.counts[y*g.width+x] = g.countClipped(x, y)
			}
		}
	default:
		return errors.Wrapf(ErrUnknownBoundary, "[CountNeighbors] policy %d", int(policy))
	}
	return nil
}

// countWrapped reads neighbours on a torus. The modulo is kept non-negative so
// x-1 at the left edge lands on the last column.
func (g *Grid) countWrapped(x, y int) uint8 {
	var count uint8
	for _, off := range neighborOffsets {
		nx := ((x+off[0])%g.width + g.width) % g.width
		ny := ((y+off[1])%g.height + g.height) % g.height
		if g.cells[ny][nx] {
			count++
		}
	}
	return count
}

// countClipped reads only the part of the 3x3 window that lies on the grid;
// everything beyond the edge counts as dead.
func (g *Grid) countClipped(x, y int) uint8 {
	var count uint8

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}
