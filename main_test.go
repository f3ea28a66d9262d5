package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "gol version "+version+"\n" {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var v map[string]string
	if err := json.Unmarshal([]byte(out), &v); err != nil || v["version"] != version {
		t.Errorf("json output = %q (%v)", out, err)
	}
}

func TestStepCmdJSON(t *testing.T) {
	out, err := execute(t, "step", "--pattern", "blinker", "--width", "5", "--height", "5", "-n", "1", "--json")
	if err != nil {
		t.Fatalf("step: %v", err)
	}

	var result stepResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("failed to decode %q: %v", out, err)
	}
	if result.Generation != 1 || result.Population != 3 || result.Boundary != "wrap" {
		t.Errorf("result = %+v", result)
	}
	want := []model.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	if len(result.Alive) != len(want) {
		t.Fatalf("alive = %v, want %v", result.Alive, want)
	}
	for i := range want {
		if result.Alive[i] != want[i] {
			t.Errorf("alive[%d] = %v, want %v", i, result.Alive[i], want[i])
		}
	}
}

func TestStepCmdText(t *testing.T) {
	out, err := execute(t, "step", "--preset", "beacon", "-n", "0")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !strings.Contains(out, "Generation: 0") || !strings.Contains(out, "Status: Stepped") {
		t.Errorf("output = %q", out)
	}
}

func TestStepCmdRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "step", "--boundary", "mirror"); err == nil {
		t.Error("expected an error for an unknown boundary")
	}
	if _, err := execute(t, "step", "-n", "-1"); err == nil {
		t.Error("expected an error for negative generations")
	}
	if _, err := execute(t, "step", "--preset", "nope"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, "patterns")
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	for _, name := range []string{"Presets:", "Patterns:", "gun", "gosper-glider-gun", "r-pentomino"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q:\n%s", name, out)
		}
	}

	out, err = execute(t, "patterns", "--json")
	if err != nil {
		t.Fatalf("patterns --json: %v", err)
	}
	var listing struct {
		Presets  []presetInfo  `json:"presets"`
		Patterns []patternInfo `json:"patterns"`
	}
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(listing.Presets) == 0 || len(listing.Patterns) == 0 {
		t.Errorf("listing = %+v", listing)
	}
	if !strings.Contains(out, `"boundary":"fill"`) {
		t.Errorf("boundaries should be encoded by name:\n%s", out)
	}
	boundaries := map[string]model.BoundaryPolicy{}
	for _, p := range listing.Patterns {
		boundaries[p.Name] = p.Boundary
	}
	if boundaries["glider"] != model.Wrap || boundaries["gosper-glider-gun"] != model.ZeroFill {
		t.Errorf("pattern boundaries = %v", boundaries)
	}
}

// quitOnInit presses q as soon as the screen is initialised
type quitOnInit struct {
	tcell.SimulationScreen
}

func (s quitOnInit) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	return nil
}

func screenConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Preset = "blinker"
	config.FrameRate = time.Millisecond
	config.Renderer = utils.RendererScreen
	return config
}

func TestRunGameOnScreenStopsAtMaxGenerations(t *testing.T) {
	config := screenConfig()
	config.MaxGenerations = 2

	screen := tcell.NewSimulationScreen("UTF-8")
	opened := false
	newScreen := func() (tcell.Screen, error) {
		opened = true
		return screen, nil
	}

	var out bytes.Buffer
	if err := runGame(context.Background(), config, &out, newScreen); err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if !opened {
		t.Error("screen renderer never opened the screen")
	}
	if !strings.Contains(out.String(), "Stopped: max generations") {
		t.Errorf("summary = %q", out.String())
	}
	if !strings.Contains(out.String(), "2 generations") {
		t.Errorf("summary should report 2 generations, got %q", out.String())
	}
}

func TestRunGameQuitKeyCancels(t *testing.T) {
	config := screenConfig()
	config.FrameRate = time.Hour

	newScreen := func() (tcell.Screen, error) {
		return quitOnInit{tcell.NewSimulationScreen("UTF-8")}, nil
	}

	done := make(chan error, 1)
	var out bytes.Buffer
	go func() {
		done <- runGame(context.Background(), config, &out, newScreen)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runGame: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runGame did not return after q")
	}
	if !strings.Contains(out.String(), "Stopped: cancelled") {
		t.Errorf("summary = %q", out.String())
	}
}

func TestRunGameScreenOpenError(t *testing.T) {
	config := screenConfig()
	newScreen := func() (tcell.Screen, error) {
		return nil, context.DeadlineExceeded
	}
	if err := runGame(context.Background(), config, &bytes.Buffer{}, newScreen); err == nil {
		t.Fatal("expected an error when the screen cannot be opened")
	}
}
