// Package render draws game frames, either as plain text to any writer or on
// a full-screen terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
)

const (
	defaultLiveChar = "██"
	defaultDeadChar = "  "

	clearCmd = "clear"
)

// TextRenderer writes each frame as a bordered block of text
type TextRenderer struct {
	Out      io.Writer
	LiveChar string
	DeadChar string

	// ClearScreen runs the terminal clear command before every frame
	ClearScreen bool
}

// NewTextRenderer falls back to full-block glyphs when live or dead is empty
func NewTextRenderer(out io.Writer, live, dead string) *TextRenderer {
	if live == "" {
		live = defaultLiveChar
	}
	if dead == "" {
		dead = defaultDeadChar
	}
	return &TextRenderer{Out: out, LiveChar: live, DeadChar: dead}
}

// Render writes the frame to Out
func (r *TextRenderer) Render(f game.Frame) error {
	if r.ClearScreen {
		r.Clear()
	}
	if _, err := io.WriteString(r.Out, FormatFrame(f, r.LiveChar, r.DeadChar)); err != nil {
		return errors.Wrapf(err, "[TextRenderer.Render] failed to write generation %d", f.Generation)
	}
	return nil
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}

// FormatFrame lays out title, bordered grid and status footer
func FormatFrame(f game.Frame, live, dead string) string {
	width, height := f.Grid.Dimensions()
	cellWidth := max(utf8.RuneCountInString(live), utf8.RuneCountInString(dead))
	border := "+" + strings.Repeat("-", width*cellWidth) + "+\n"

	var sb strings.Builder
	if f.Title != "" {
		sb.WriteString(f.Title)
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	for y := range height {
		sb.WriteByte('|')
		for x := range width {
			if f.Grid.Alive(x, y) {
				sb.WriteString(live)
			} else {
				sb.WriteString(dead)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteString(StatusLine(f))
	sb.WriteByte('\n')
	return sb.String()
}

// StatusLine summarises the frame in one line
func StatusLine(f game.Frame) string {
	width, height := f.Grid.Dimensions()
	return fmt.Sprintf("Dimensions: %dx%d | Generation: %d | Boundary: %s | Living: %d | Density: %.1f%% | Status: %s",
		height, width, f.Generation, f.Boundary, f.Stats.Population, f.Stats.Density, f.Status)
}
