package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/faizmokh/belajar/internal/logbook"
)

// Layout sets the pixel geometry of the SVG chart.
type Layout struct {
	ColumnWidth  float64
	ColumnHeight float64
	TopBarHeight float64
	LeftBarWidth float64
	TopFontSize  float64
	LeftFontSize float64
	FontFamily   string
}

// DefaultLayout maps one pixel to one minute of the day.
func DefaultLayout() Layout {
	return Layout{
		ColumnWidth:  200,
		ColumnHeight: logbook.MinutesPerDay,
		TopBarHeight: 40,
		LeftBarWidth: 50,
		TopFontSize:  16,
		LeftFontSize: 11,
		FontFamily:   "Courier New, monospace",
	}
}

// SVG draws a calendar as a vector chart with one column per day.
type SVG struct {
	Palette Palette
	Layout  Layout
}

// NewSVG returns an SVG renderer with the default layout.
func NewSVG(palette Palette) *SVG {
	return &SVG{Palette: palette, Layout: DefaultLayout()}
}

// Render writes a standalone SVG document for cal to w. Intervals that do not
// end after they start are skipped.
func (s *SVG) Render(w io.Writer, cal logbook.Calendar) error {
	l := s.Layout
	p := s.Palette
	n := float64(len(cal))
	chartWidth := l.ColumnWidth * n
	width := chartWidth + l.LeftBarWidth
	height := l.ColumnHeight + l.TopBarHeight
	perMinute := l.ColumnHeight / logbook.MinutesPerDay

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(bw, `<g font-family="%s">`+"\n", html.EscapeString(l.FontFamily))

	rect(bw, 0, 0, l.LeftBarWidth, height, p.Header)
	if len(cal) > 0 {
		rect(bw, l.LeftBarWidth, 0, chartWidth, l.TopBarHeight, p.Header)
		rect(bw, l.LeftBarWidth, l.TopBarHeight, chartWidth, l.ColumnHeight, p.Background)
	}

	for hour := 0; hour < 24; hour++ {
		y := l.TopBarHeight + perMinute*float64(hour*60)
		fmt.Fprintf(bw, `<text x="%s" y="%s" font-size="%s" fill="%s" text-anchor="end" dominant-baseline="middle">%d:00</text>`+"\n",
			num(l.LeftBarWidth-4), num(y), num(l.LeftFontSize), attr(p.Text), hour)
	}

	for i, day := range cal {
		x := l.LeftBarWidth + float64(i)*l.ColumnWidth
		fmt.Fprintf(bw, `<text x="%s" y="%s" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			num(x+l.ColumnWidth/2), num(l.TopBarHeight/2), num(l.TopFontSize), attr(p.Text), html.EscapeString(day.Label))

		for _, iv := range day.Intervals {
			if iv.End <= iv.Start {
				continue
			}
			rect(bw, x, l.TopBarHeight+perMinute*float64(iv.Start), l.ColumnWidth, perMinute*float64(iv.Minutes()), p.Block)
		}
	}

	for hour := 1; hour < 24 && len(cal) > 0; hour++ {
		y := l.TopBarHeight + perMinute*float64(hour*60)
		line(bw, l.LeftBarWidth, y, width, y, p.Header)
	}
	for day := 1; day < len(cal); day++ {
		x := l.LeftBarWidth + float64(day)*l.ColumnWidth
		line(bw, x, l.TopBarHeight, x, height, p.Header)
	}

	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

func rect(w io.Writer, x, y, width, height float64, fill string) {
	fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(width), num(height), attr(fill))
}

func line(w io.Writer, x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), attr(stroke))
}

func attr(v string) string {
	return html.EscapeString(v)
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
