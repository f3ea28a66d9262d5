package model

import "testing"

func TestHistoryDetectsPeriods(t *testing.T) {
	a, _ := NewGrid(3, 3)
	b, _ := NewGrid(3, 3)
	b.SetAlive(Coord{1, 1})
	c, _ := NewGrid(3, 3)
	c.SetAlive(Coord{0, 0})

	h := NewHistory(5)
	steps := []struct {
		grid *Grid
		want int
	}{
		{a, 0},
		{b, 0},
		{a, 2},
		{a, 1},
		{c, 0},
		{b, 4},
	}
	for i, step := range steps {
		if got := h.Record(step.grid); got != step.want {
			t.Fatalf("step %d: Record() = %d, want %d", i, got, step.want)
		}
	}
}

func TestHistoryForgetsOldGenerations(t *testing.T) {
	h := NewHistory(2)
	grids := make([]*Grid, 3)
	for i := range grids {
		grids[i], _ = NewGrid(3, 3)
		grids[i].SetAlive(Coord{i, 0})
		h.Record(grids[i])
	}
	if got := h.Record(grids[0]); got != 0 {
		t.Fatalf("Record() = %d for a generation older than the history, want 0", got)
	}

	h.Reset()
	if got := h.Record(grids[0]); got != 0 {
		t.Fatalf("Record() = %d after Reset, want 0", got)
	}
}
