package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Coord is a cell position, x is the column and y the row
type Coord struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Grid represents one generation of the board. Its dimensions never change
// once created; a new generation is always a new Grid.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width and height must be positive, got %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

// newGrid skips validation for callers that copy dimensions from an existing grid
func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Dimensions returns the width and height of the grid
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// SetAlive marks every in-bounds coordinate alive. Coordinates outside the
// grid are ignored so a pattern drawn for a larger board can still be placed.
func (g *Grid) SetAlive(coords ...Coord) {
	for _, c := range coords {
		if g.InBounds(c.X, c.Y) {
			g.cells[c.Y][c.X] = true
		}
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Grid.Get] (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Alive reports whether a cell is alive, treating cells off the grid as
// dead. Loops that stay within Dimensions use it instead of Get.
func (g *Grid) Alive(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x]
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// LivingCells returns the coordinates of every living cell in row-major order
func (g *Grid) LivingCells() []Coord {
	var coords []Coord
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}
	return coords
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid with 'O' for alive and '.' for dead cells, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
