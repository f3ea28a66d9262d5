package patterns

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()
	names := c.Names()
	want := []string{"beacon", "blinker", "block", "glider", "gosper-glider-gun", "lwss", "pulsar", "r-pentomino", "toad"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	p, err := c.Lookup("Glider")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(p.Cells) != 5 {
		t.Fatalf("glider has %d cells, want 5", len(p.Cells))
	}

	if _, err := c.Lookup("spaceship-9000"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("error = %v, want ErrUnknownPattern", err)
	}
}

func TestBuiltinCellCounts(t *testing.T) {
	counts := map[string]int{
		"block": 4, "blinker": 3, "toad": 6, "beacon": 8, "pulsar": 48,
		"glider": 5, "lwss": 9, "gosper-glider-gun": 36, "r-pentomino": 5,
	}
	c := Builtin()
	for name, want := range counts {
		p, _ := c.Lookup(name)
		if len(p.Cells) != want {
			t.Errorf("%s has %d cells, want %d", name, len(p.Cells), want)
		}
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
patterns:
  - name: Diehard
    description: vanishes after 130 generations
    boundary: fill
    cells: [[6, 0], [0, 1], [1, 1], [1, 2], [5, 2], [6, 2], [7, 2]]
  - name: block
    description: replaced
    cells: [[0, 0], [1, 0], [0, 1], [1, 1]]
`)

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	diehard, err := c.Lookup("diehard")
	if err != nil {
		t.Fatalf("Lookup(diehard): %v", err)
	}
	if len(diehard.Cells) != 7 {
		t.Errorf("diehard has %d cells, want 7", len(diehard.Cells))
	}
	if w, h := diehard.Size(); w != 8 || h != 3 {
		t.Errorf("diehard size = %dx%d, want 8x3", w, h)
	}
	if diehard.Boundary != model.ZeroFill {
		t.Errorf("diehard boundary = %v, want fill", diehard.Boundary)
	}

	block, _ := c.Lookup("block")
	if block.Description != "replaced" {
		t.Errorf("block description = %q, want file entry to replace the built-in", block.Description)
	}
	if block.Boundary != model.Wrap {
		t.Errorf("block boundary = %v, want wrap when the entry sets none", block.Boundary)
	}
	if _, err := c.Lookup("pulsar"); err != nil {
		t.Errorf("built-in patterns missing after load: %v", err)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing name", "patterns:\n  - cells: [[0, 0]]\n", ErrInvalidPattern},
		{"no cells", "patterns:\n  - name: empty\n", ErrInvalidPattern},
		{"negative cell", "patterns:\n  - name: neg\n    cells: [[-1, 0]]\n", ErrInvalidPattern},
		{"unknown boundary", "patterns:\n  - name: mirrored\n    boundary: mirror\n    cells: [[0, 0]]\n", model.ErrUnknownBoundary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := LoadCatalog(writeCatalog(t, "patterns: [\n")); err == nil {
			t.Fatal("expected a parse error")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected a read error")
		}
	})
}

func TestExampleCatalogLoads(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("..", "configs", "patterns.example.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	for name, want := range map[string]int{"diehard": 7, "acorn": 7} {
		p, err := c.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if len(p.Cells) != want {
			t.Errorf("%s has %d cells, want %d", name, len(p.Cells), want)
		}
	}
	if _, err := c.Lookup("glider"); err != nil {
		t.Errorf("built-ins should remain available: %v", err)
	}
}
