// Package render draws a laid-out document as ANSI-styled terminal text,
// coloring link label ranges with the theme's link color and everything
// else with the normal color.
//
// Rendering walks the exact line ranges the layout computed rather than
// wrapping again, so glyph positions always match the layout's hit-test
// rectangles. lipgloss styles reset themselves at the end of each styled
// segment, leaving the terminal's draw state untouched.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/linkspan"
	"github.com/fwojciec/linkspan/layout"
)

// Styles maps a Theme to lipgloss styles.
type Styles struct {
	Normal lipgloss.Style
	Link   lipgloss.Style
	Focus  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t linkspan.Theme) Styles {
	return Styles{
		Normal: lipgloss.NewStyle().Foreground(ansiColor(t.Normal)),
		Link:   lipgloss.NewStyle().Foreground(ansiColor(t.Link)).Underline(true),
		Focus:  lipgloss.NewStyle().Foreground(ansiColor(t.Focus)).Underline(true).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Document renders the laid-out text with every link range in the link
// style.
func Document(l *layout.Layout, s Styles) string {
	return DocumentFocus(l, s, -1)
}

// DocumentFocus renders like Document but draws the link at index focus in
// the focus style. A negative focus draws all links alike.
func DocumentFocus(l *layout.Layout, s Styles, focus int) string {
	links := l.Links()
	var b strings.Builder
	for i := 0; i < l.Height(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderLine(&b, l, links, s, focus, i)
	}
	return b.String()
}

// renderLine writes line i, split at link boundaries. Links that wrap
// contribute the part of their range falling on this line.
func renderLine(b *strings.Builder, l *layout.Layout, links []linkspan.Link, s Styles, focus, i int) {
	start, end := l.LineRange(i)
	pos := start
	for k, lk := range links {
		if lk.End <= pos || lk.Start >= end {
			continue
		}
		segStart := max(lk.Start, pos)
		if segStart > pos {
			b.WriteString(s.Normal.Render(l.Text(pos, segStart)))
		}
		segEnd := min(lk.End, end)
		style := s.Link
		if k == focus {
			style = s.Focus
		}
		b.WriteString(style.Render(l.Text(segStart, segEnd)))
		pos = segEnd
	}
	if pos < end {
		b.WriteString(s.Normal.Render(l.Text(pos, end)))
	}
}
