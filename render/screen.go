package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	cellStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	footerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// AgeColor maps a cell age to its colour: newborns are white and cells fade
// through cyan to deep blue as they survive.
func AgeColor(age int) tcell.Color {
	switch {
	case age <= 1:
		return tcell.ColorWhite
	case age == 2:
		return tcell.ColorAqua
	case age == 3:
		return tcell.ColorDarkCyan
	case age == 4:
		return tcell.ColorTurquoise
	case age <= 7:
		return tcell.ColorDodgerBlue
	default:
		return tcell.ColorMediumBlue
	}
}

// ScreenRenderer draws frames on a tcell screen
type ScreenRenderer struct {
	screen  tcell.Screen
	live    []rune
	dead    []rune
	showAge bool

	closeOnce sync.Once
}

// NewScreenRenderer initialises screen and takes ownership of it
func NewScreenRenderer(screen tcell.Screen, live, dead string, showAge bool) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialise screen")
	}
	screen.HideCursor()
	screen.Clear()

	if live == "" {
		live = defaultLiveChar
	}
	if dead == "" {
		dead = defaultDeadChar
	}
	return &ScreenRenderer{
		screen:  screen,
		live:    []rune(live),
		dead:    []rune(dead),
		showAge: showAge,
	}, nil
}

// Render draws the frame and shows it
func (r *ScreenRenderer) Render(f game.Frame) error {
	width, height := f.Grid.Dimensions()
	cellWidth := max(len(r.live), len(r.dead))

	r.screen.Clear()
	row := 0
	if f.Title != "" {
		r.drawText(0, row, f.Title, titleStyle)
		row++
	}

	inner := width * cellWidth
	r.drawBorder(row, inner, '╔', '╗')
	row++
	for y := range height {
		r.screen.SetContent(0, row, '║', nil, borderStyle)
		for x := range width {
			glyph, style := r.dead, tcell.StyleDefault
			if f.Grid.Alive(x, y) {
				glyph, style = r.live, cellStyle
				if r.showAge && f.Ages != nil {
					style = tcell.StyleDefault.Foreground(AgeColor(f.Ages.Age(x, y)))
				}
			}
			for i, ch := range glyph {
				r.screen.SetContent(1+x*cellWidth+i, row, ch, nil, style)
			}
		}
		r.screen.SetContent(inner+1, row, '║', nil, borderStyle)
		row++
	}
	r.drawBorder(row, inner, '╚', '╝')
	row++

	r.drawText(0, row, StatusLine(f), footerStyle)
	row++
	r.drawText(0, row, fmt.Sprintf("%.1f gen/sec | Avg Pop: %.1f | Peak: %d | Press q, Esc or Ctrl+C to exit",
		f.Stats.GenerationsPerSecond, f.Stats.AveragePopulation, f.Stats.PeakPopulation), footerStyle)

	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) drawBorder(row, inner int, left, right rune) {
	r.screen.SetContent(0, row, left, nil, borderStyle)
	for x := 1; x <= inner; x++ {
		r.screen.SetContent(x, row, '═', nil, borderStyle)
	}
	r.screen.SetContent(inner+1, row, right, nil, borderStyle)
}

func (r *ScreenRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// WaitForQuit blocks until the user asks to quit or the screen is closed
func (r *ScreenRenderer) WaitForQuit() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				return
			}
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (r *ScreenRenderer) Close() {
	r.closeOnce.Do(r.screen.Fini)
}
