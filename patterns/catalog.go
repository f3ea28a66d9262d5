package patterns

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

var (
	// ErrUnknownPattern is returned when a lookup names no pattern in the catalog
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrInvalidPattern is returned for a catalog entry without a name or without cells
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Cells are written as (x, y) with x the column and y the row
var (
	Block = Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Cells:       cells(0, 0, 1, 0, 0, 1, 1, 1),
	}
	Blinker = Pattern{
		Name:        "blinker",
		Description: "period 2 oscillator, three cells in a row",
		Cells:       cells(0, 0, 1, 0, 2, 0),
	}
	Toad = Pattern{
		Name:        "toad",
		Description: "period 2 oscillator",
		Cells:       cells(1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1),
	}
	Beacon = Pattern{
		Name:        "beacon",
		Description: "period 2 oscillator, two blocks touching diagonally",
		Cells:       cells(0, 0, 1, 0, 0, 1, 1, 1, 2, 2, 3, 2, 2, 3, 3, 3),
	}
	Pulsar = Pattern{
		Name:        "pulsar",
		Description: "period 3 oscillator",
		Cells: cells(
			3, 1, 4, 1, 5, 1, 9, 1, 10, 1, 11, 1,
			1, 3, 6, 3, 8, 3, 13, 3,
			1, 4, 6, 4, 8, 4, 13, 4,
			1, 5, 6, 5, 8, 5, 13, 5,
			3, 6, 4, 6, 5, 6, 9, 6, 10, 6, 11, 6,
			3, 8, 4, 8, 5, 8, 9, 8, 10, 8, 11, 8,
			1, 9, 6, 9, 8, 9, 13, 9,
			1, 10, 6, 10, 8, 10, 13, 10,
			1, 11, 6, 11, 8, 11, 13, 11,
			3, 13, 4, 13, 5, 13, 9, 13, 10, 13, 11, 13,
		),
	}
	Glider = Pattern{
		Name:        "glider",
		Description: "spaceship travelling one cell diagonally every 4 generations",
		Cells:       cells(1, 0, 2, 1, 0, 2, 1, 2, 2, 2),
	}
	LWSS = Pattern{
		Name:        "lwss",
		Description: "lightweight spaceship",
		Cells:       cells(1, 0, 4, 0, 0, 1, 0, 2, 4, 2, 0, 3, 1, 3, 2, 3, 3, 3),
	}
	GosperGliderGun = Pattern{
		Name:        "gosper-glider-gun",
		Description: "stationary gun emitting a glider every 30 generations",
		Boundary:    model.ZeroFill,
		Cells: cells(
			1, 5, 2, 5, 1, 6, 2, 6,
			11, 5, 11, 6, 11, 7, 12, 4, 12, 8,
			13, 3, 13, 9, 14, 3, 14, 9, 15, 6,
			16, 4, 16, 8, 17, 5, 17, 6, 17, 7, 18, 6,
			21, 3, 21, 4, 21, 5, 22, 3, 22, 4, 22, 5,
			23, 2, 23, 6, 25, 1, 25, 2, 25, 6, 25, 7,
			35, 3, 35, 4, 36, 3, 36, 4,
		),
	}
	RPentomino = Pattern{
		Name:        "r-pentomino",
		Description: "methuselah that stabilises after 1103 generations",
		Boundary:    model.ZeroFill,
		Cells:       cells(1, 0, 2, 0, 0, 1, 1, 1, 1, 2),
	}
)

func cells(xy ...int) []model.Coord {
	coords := make([]model.Coord, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		coords = append(coords, model.Coord{X: xy[i], Y: xy[i+1]})
	}
	return coords
}

// Catalog is a read-only set of patterns keyed by name
type Catalog struct {
	patterns map[string]Pattern
}

// Builtin returns a catalog with the patterns shipped with the game
func Builtin() *Catalog {
	c := &Catalog{patterns: map[string]Pattern{}}
	for _, p := range []Pattern{Block, Blinker, Toad, Beacon, Pulsar, Glider, LWSS, GosperGliderGun, RPentomino} {
		c.patterns[p.Name] = p
	}
	return c
}

// Lookup finds a pattern by name, case-insensitively
func (c *Catalog) Lookup(name string) (Pattern, error) {
	p, ok := c.patterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Catalog.Lookup] %q", name)
	}
	return p, nil
}

// Names returns the pattern names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.patterns))
	for name := range c.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// catalogFile is the on-disk layout read by LoadCatalog
type catalogFile struct {
	Patterns []struct {
		Name        string               `yaml:"name"`
		Description string               `yaml:"description"`
		Boundary    model.BoundaryPolicy `yaml:"boundary"`
		Cells       [][2]int             `yaml:"cells"`
	} `yaml:"patterns"`
}

// LoadCatalog reads patterns from a YAML file on top of the built-in ones.
// A file entry with the name of a built-in pattern replaces it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadCatalog] failed to read file: %+v", path)
	}

	var file catalogFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "[LoadCatalog] failed to unmarshal data from file: %+v", path)
	}

	c := Builtin()
	for i, entry := range file.Patterns {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name == "" {
			return nil, errors.Wrapf(ErrInvalidPattern, "[LoadCatalog] entry %d in %s has no name", i, path)
		}
		if len(entry.Cells) == 0 {
			return nil, errors.Wrapf(ErrInvalidPattern, "[LoadCatalog] pattern %q in %s has no cells", name, path)
		}
		p := Pattern{Name: name, Description: entry.Description, Boundary: entry.Boundary}
		for _, xy := range entry.Cells {
			if xy[0] < 0 || xy[1] < 0 {
				return nil, errors.Wrapf(ErrInvalidPattern, "[LoadCatalog] pattern %q has negative cell %v", name, xy)
			}
			p.Cells = append(p.Cells, model.Coord{X: xy[0], Y: xy[1]})
		}
		c.patterns[name] = p
	}
	return c, nil
}
