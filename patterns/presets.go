package patterns

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrUnknownPreset is returned when a lookup names no preset
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a complete starting scenario: board size, edge behaviour, pacing
// and where each pattern goes.
type Preset struct {
	Name     string
	Title    string
	Width    int
	Height   int
	Boundary model.BoundaryPolicy
	Delay    time.Duration
	LiveChar string
	DeadChar string

	// Place returns the placements for a board of the given size. Most presets
	// ignore the size, centred ones do not.
	Place func(width, height int) []Placement
}

// Seed builds the initial grid of the preset on a width x height board
func (p Preset) Seed(width, height int) (*model.Grid, error) {
	grid, err := Seed(width, height, p.Place(width, height)...)
	if err != nil {
		return nil, errors.Wrapf(err, "[Preset.Seed] preset %q", p.Name)
	}
	return grid, nil
}

func fixed(placements ...Placement) func(int, int) []Placement {
	return func(int, int) []Placement { return placements }
}

var presets = map[string]Preset{
	"blinker": {
		Name: "blinker", Title: "Conway's Game of Life - Blinker",
		Width: 15, Height: 7, Boundary: model.Wrap, Delay: 500 * time.Millisecond,
		LiveChar: "O ", DeadChar: ". ",
		Place: fixed(At(Blinker, 7, 3)),
	},
	"toad": {
		Name: "toad", Title: "Conway's Game of Life - Toad",
		Width: 30, Height: 15, Boundary: model.Wrap, Delay: time.Second,
		LiveChar: "o ", DeadChar: "  ",
		Place: fixed(At(Toad, 9, 5), At(Toad, 11, 10)),
	},
	"beacon": {
		Name: "beacon", Title: "Conway's Game of Life: Beacon Oscillator (Period 2)",
		Width: 30, Height: 10, Boundary: model.ZeroFill, Delay: 200 * time.Millisecond,
		LiveChar: "O", DeadChar: " ",
		Place: fixed(At(Beacon, 12, 3)),
	},
	"pulsar": {
		Name: "pulsar", Title: "Conway's Game of Life: Pulsar (Period 3 Oscillator)",
		Width: 60, Height: 30, Boundary: model.Wrap, Delay: 100 * time.Millisecond,
		LiveChar: "█", DeadChar: " ",
		Place: fixed(At(Pulsar, 23, 7)),
	},
	"glider": {
		Name: "glider", Title: "Conway's Game of Life - Glider Patterns",
		Width: 30, Height: 15, Boundary: model.Wrap, Delay: 500 * time.Millisecond,
		LiveChar: "o ", DeadChar: ". ",
		Place: fixed(At(Glider, 1, 1), At(Glider, 4, 5)),
	},
	"glider-collision": {
		Name: "glider-collision", Title: "Glider Mid-Air Collision",
		Width: 60, Height: 30, Boundary: model.ZeroFill, Delay: 100 * time.Millisecond,
		LiveChar: "O", DeadChar: " ",
		Place: fixed(
			At(Glider, 2, 2),
			Placement{Pattern: Glider, OffsetX: 22, OffsetY: 22, FlipH: true, FlipV: true},
		),
	},
	"lwss": {
		Name: "lwss", Title: "Game of Life: Aging LWSS",
		Width: 80, Height: 15, Boundary: model.Wrap, Delay: 50 * time.Millisecond,
		LiveChar: "O", DeadChar: " ",
		Place: fixed(At(LWSS, 70, 5)),
	},
	"gun": {
		Name: "gun", Title: "Conway's Game of Life: Gosper Glider Gun (Infinite Emission)",
		Width: 80, Height: 24, Boundary: model.ZeroFill, Delay: 20 * time.Millisecond,
		LiveChar: "O", DeadChar: " ",
		Place: fixed(At(GosperGliderGun, 2, 2)),
	},
	"r-pentomino": {
		Name: "r-pentomino", Title: "Conway's Game of Life: R-pentomino Evolution",
		Width: 120, Height: 60, Boundary: model.ZeroFill, Delay: 30 * time.Millisecond,
		LiveChar: "█", DeadChar: " ",
		Place: func(width, height int) []Placement {
			return []Placement{Centered(RPentomino, width, height)}
		},
	},
}

// LookupPreset finds a preset by name, case-insensitively
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, errors.Wrapf(ErrUnknownPreset, "[LookupPreset] %q", name)
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternPreset wraps a single catalog pattern, centred, into a preset so any
// pattern can be run without writing a scenario for it. The preset uses the
// pattern's own boundary.
func PatternPreset(p Pattern, width, height int) Preset {
	return Preset{
		Name:     p.Name,
		Title:    "Conway's Game of Life - " + p.Name,
		Width:    width,
		Height:   height,
		Boundary: p.Boundary,
		Delay:    100 * time.Millisecond,
		LiveChar: "O",
		DeadChar: " ",
		Place: func(w, h int) []Placement {
			pw, ph := p.Size()
			return []Placement{At(p, (w-pw)/2, (h-ph)/2)}
		},
	}
}
