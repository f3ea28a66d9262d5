package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"negative height", 5, -1},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", tt.width, tt.height, err)
			}
			if g != nil {
				t.Fatal("expected nil grid on error")
			}
		})
	}
}

func TestNewGridAllDead(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	w, h := g.Dimensions()
	if w != 4 || h != 3 {
		t.Fatalf("Dimensions() = %dx%d, want 4x3", w, h)
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("new grid has %d living cells, want 0", n)
	}
}

func TestSetAliveIgnoresOutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.SetAlive(Coord{1, 1}, Coord{-1, 0}, Coord{3, 0}, Coord{0, 3}, Coord{2, 2})

	if n := g.CountLivingCells(); n != 2 {
		t.Fatalf("CountLivingCells() = %d, want 2", n)
	}
	for _, c := range []Coord{{1, 1}, {2, 2}} {
		alive, err := g.Get(c.X, c.Y)
		if err != nil || !alive {
			t.Errorf("cell (%d,%d) alive=%v err=%v, expected alive", c.X, c.Y, alive, err)
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 2)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if _, err := g.Get(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d) error = %v, want ErrOutOfBounds", c.X, c.Y, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.SetAlive(Coord{0, 0})

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}

	c.SetAlive(Coord{2, 2})
	if alive, _ := g.Get(2, 2); alive {
		t.Fatal("mutating the clone changed the original")
	}
	if c.Equal(g) {
		t.Fatal("Equal reports true for different grids")
	}
}

func TestEqualDimensions(t *testing.T) {
	a, _ := NewGrid(3, 3)
	b, _ := NewGrid(3, 4)
	if a.Equal(b) {
		t.Fatal("grids with different dimensions reported equal")
	}
	if a.Equal(nil) {
		t.Fatal("grid reported equal to nil")
	}
}

func TestHashTracksState(t *testing.T) {
	a, _ := NewGrid(4, 4)
	b, _ := NewGrid(4, 4)
	if a.Hash() != b.Hash() {
		t.Fatal("identical grids hash differently")
	}
	b.SetAlive(Coord{3, 3})
	if a.Hash() == b.Hash() {
		t.Fatal("different grids share a hash")
	}
}

func TestLivingCellsRowMajor(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.SetAlive(Coord{2, 1}, Coord{0, 2}, Coord{1, 0})

	got := g.LivingCells()
	want := []Coord{{1, 0}, {2, 1}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("LivingCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LivingCells() = %v, want %v", got, want)
		}
	}
}

func TestString(t *testing.T) {
	g, _ := NewGrid(3, 2)
	g.SetAlive(Coord{1, 0}, Coord{2, 1})
	want := ".O.\n..O\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAliveMatchesGet(t *testing.T) {
	g, _ := NewGrid(3, 2)
	g.SetAlive(Coord{X: 2, Y: 1})

	for y := range 2 {
		for x := range 3 {
			want, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", x, y, err)
			}
			if got := g.Alive(x, y); got != want {
				t.Errorf("Alive(%d,%d) = %v, Get = %v", x, y, got, want)
			}
		}
	}

	for _, c := range []Coord{{-1, 0}, {3, 1}, {0, 2}, {2, -1}} {
		if g.Alive(c.X, c.Y) {
			t.Errorf("Alive(%d,%d) should be false off the grid", c.X, c.Y)
		}
	}
}
