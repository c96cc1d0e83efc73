package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/faizmokh/belajar/internal/logbook"
)

const (
	// DefaultStep is the number of minutes each terminal row covers.
	DefaultStep = 60
	axisWidth   = 6
	columnGap   = 1
	filledCell  = "█"
	emptyCell   = "·"
)

// Terminal draws a calendar as a text chart: one column per day, one row per
// Step minutes, a filled cell wherever an interval overlaps the row.
type Terminal struct {
	Palette Palette
	Step    int
	Color   bool
}

// NewTerminal returns a renderer for w. Colour is enabled only when w is a terminal.
func NewTerminal(w io.Writer, palette Palette) *Terminal {
	return &Terminal{
		Palette: palette,
		Step:    DefaultStep,
		Color:   IsTerminal(w),
	}
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the chart for cal to w. An empty calendar yields the hour axis alone.
func (t *Terminal) Render(w io.Writer, cal logbook.Calendar) error {
	step := t.Step
	if step <= 0 || step > logbook.MinutesPerDay {
		step = DefaultStep
	}

	width := columnWidth(cal)
	var b strings.Builder

	b.WriteString(t.style(t.Palette.axisStyle(), strings.Repeat(" ", axisWidth)))
	for _, day := range cal {
		b.WriteString(strings.Repeat(" ", columnGap))
		b.WriteString(t.style(t.Palette.headerStyle(), pad(day.Label, width)))
	}
	b.WriteString("\n")

	for slot := 0; slot < logbook.MinutesPerDay; slot += step {
		axis := ""
		if slot%60 == 0 || step > 60 {
			axis = fmt.Sprintf("%2d:%02d", slot/60, slot%60)
		}
		b.WriteString(t.style(t.Palette.axisStyle(), padLeft(axis, axisWidth-1)+" "))
		for _, day := range cal {
			b.WriteString(strings.Repeat(" ", columnGap))
			if occupied(day.Intervals, slot, slot+step) {
				b.WriteString(t.style(t.Palette.blockStyle(), strings.Repeat(filledCell, width)))
			} else {
				b.WriteString(t.style(t.Palette.emptyStyle(), strings.Repeat(emptyCell, width)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(t.style(t.Palette.axisStyle(), padLeft("total", axisWidth-1)+" "))
	for _, day := range cal {
		b.WriteString(strings.Repeat(" ", columnGap))
		b.WriteString(pad(Duration(day.Minutes()), width))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.Color {
		return text
	}
	return s.Render(text)
}

// occupied reports whether any interval overlaps [from, to).
func occupied(intervals []logbook.Interval, from, to int) bool {
	for _, iv := range intervals {
		if iv.Start < to && iv.End > from {
			return true
		}
	}
	return false
}

func columnWidth(cal logbook.Calendar) int {
	width := 0
	for _, day := range cal {
		if w := lipgloss.Width(day.Label); w > width {
			width = w
		}
	}
	return width
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// Duration formats minutes as "2h05m", "45m" or "0m".
func Duration(minutes int) string {
	if minutes < 0 {
		return "-" + Duration(-minutes)
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
