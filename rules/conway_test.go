package rules

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Errorf("alive cell with %d neighbours -> %v, want %v", neighbors, got, wantAlive)
		}
		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Errorf("dead cell with %d neighbours -> %v, want %v", neighbors, got, wantBorn)
		}
	}
}

func TestStepBlinker(t *testing.T) {
	g, _ := model.NewGrid(5, 5)
	g.SetAlive(model.Coord{X: 1, Y: 2}, model.Coord{X: 2, Y: 2}, model.Coord{X: 3, Y: 2})
	before := g.Clone()

	counts, err := model.CountNeighbors(g, model.ZeroFill)
	if err != nil {
		t.Fatalf("CountNeighbors: %v", err)
	}
	next, err := Step(g, counts)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	expects := map[model.Coord]bool{
		{X: 2, Y: 1}: true,
		{X: 2, Y: 2}: true,
		{X: 2, Y: 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive, _ := next.Get(x, y)
			if shouldBeAlive := expects[model.Coord{X: x, Y: y}]; shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if !g.Equal(before) {
		t.Fatal("Step mutated the current generation")
	}
}

func TestStepDimensionMismatch(t *testing.T) {
	g, _ := model.NewGrid(4, 4)
	other, _ := model.NewGrid(4, 5)
	counts, _ := model.CountNeighbors(other, model.Wrap)

	if _, err := Step(g, counts); !errors.Is(err, model.ErrDimensionMismatch) {
		t.Fatalf("error = %v, want ErrDimensionMismatch", err)
	}
}
