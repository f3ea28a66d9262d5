package game

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

// Board size used when a single catalog pattern is run without explicit dimensions
const (
	defaultPatternWidth  = 40
	defaultPatternHeight = 20
)

// Setup is everything needed to start a game, resolved from a Config
type Setup struct {
	Name     string
	Title    string
	Width    int
	Height   int
	Boundary model.BoundaryPolicy
	Delay    time.Duration
	LiveChar string
	DeadChar string
	Grid     *model.Grid
}

// NewSetup resolves the preset or pattern named in cfg and applies the
// explicit overrides in cfg on top of it.
func NewSetup(cfg utils.Config) (Setup, error) {
	preset, err := choosePreset(cfg)
	if err != nil {
		return Setup{}, err
	}

	s := Setup{
		Name:     preset.Name,
		Title:    preset.Title,
		Width:    preset.Width,
		Height:   preset.Height,
		Boundary: preset.Boundary,
		Delay:    preset.Delay,
		LiveChar: preset.LiveChar,
		DeadChar: preset.DeadChar,
	}
	if cfg.Width > 0 {
		s.Width = cfg.Width
	}
	if cfg.Height > 0 {
		s.Height = cfg.Height
	}
	if cfg.Boundary != "" {
		if s.Boundary, err = model.ParseBoundary(cfg.Boundary); err != nil {
			return Setup{}, errors.Wrap(err, "[NewSetup] failed to parse boundary")
		}
	}
	if cfg.FrameRate > 0 {
		s.Delay = cfg.FrameRate
	}
	if cfg.LiveChar != "" {
		s.LiveChar = cfg.LiveChar
	}
	if cfg.DeadChar != "" {
		s.DeadChar = cfg.DeadChar
	}

	if s.Grid, err = preset.Seed(s.Width, s.Height); err != nil {
		return Setup{}, errors.Wrap(err, "[NewSetup] failed to seed grid")
	}
	return s, nil
}

func choosePreset(cfg utils.Config) (patterns.Preset, error) {
	if cfg.Pattern == "" {
		preset, err := patterns.LookupPreset(cfg.Preset)
		if err != nil {
			return patterns.Preset{}, errors.Wrap(err, "[NewSetup] failed to find preset")
		}
		return preset, nil
	}

	catalog := patterns.Builtin()
	if cfg.CatalogFile != "" {
		var err error
		if catalog, err = patterns.LoadCatalog(cfg.CatalogFile); err != nil {
			return patterns.Preset{}, errors.Wrap(err, "[NewSetup] failed to load catalog")
		}
	}
	p, err := catalog.Lookup(cfg.Pattern)
	if err != nil {
		return patterns.Preset{}, errors.Wrap(err, "[NewSetup] failed to find pattern")
	}
	return patterns.PatternPreset(p, defaultPatternWidth, defaultPatternHeight), nil
}
