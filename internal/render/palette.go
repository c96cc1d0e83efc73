package render

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette holds the hex colours used by every renderer.
type Palette struct {
	Background string
	Header     string
	Block      string
	Text       string
}

// DefaultPalette returns the purple study-chart palette.
func DefaultPalette() Palette {
	return Palette{
		Background: "#5b0888",
		Header:     "#713abe",
		Block:      "#9d76c1",
		Text:       "#e5cff7",
	}
}

// Validate reports the first colour that is not #rgb or #rrggbb hex.
func (p Palette) Validate() error {
	for _, c := range []struct{ name, value string }{
		{"background", p.Background},
		{"header", p.Header},
		{"block", p.Block},
		{"text", p.Text},
	} {
		if !hexColor.MatchString(c.value) {
			return fmt.Errorf("%s colour %q: want #rgb or #rrggbb", c.name, c.value)
		}
	}
	return nil
}

func (p Palette) blockStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Block)).Background(lipgloss.Color(p.Background))
}

func (p Palette) emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(p.Background))
}

func (p Palette) headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Header)).Bold(true)
}

func (p Palette) axisStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Header))
}
