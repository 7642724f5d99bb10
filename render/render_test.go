package render_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/linkspan"
	"github.com/fwojciec/linkspan/layout"
	"github.com/fwojciec/linkspan/mock"
	"github.com/fwojciec/linkspan/render"
)

// stripped renders the layout and removes all ANSI styling, leaving the
// text the terminal would show.
func stripped(l *layout.Layout, s render.Styles, focus int) string {
	return ansi.Strip(render.DocumentFocus(l, s, focus))
}

// wrappedText is the layout's lines joined with newlines: what rendering
// must produce once styling is stripped.
func wrappedText(l *layout.Layout) string {
	lines := make([]string, l.Height())
	for i := range lines {
		lines[i] = l.Line(i)
	}
	return strings.Join(lines, "\n")
}

func TestDocument(t *testing.T) {
	t.Parallel()

	styles := render.NewStyles(linkspan.DefaultTheme())

	t.Run("styled output text matches the layout lines exactly", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"plain text, no links",
			"Visit [GitHub](https://github.com) now",
			"[a](u1) and [b](u2)",
			"one [label spanning a wrapped line](u) two three four",
			"ab [](http://x) cd",
			"[whole](u)",
			"first\n\nthird [x](u)",
		}
		for _, input := range inputs {
			for _, width := range []int{5, 12, 80} {
				l := layout.New(linkspan.Parse(input), width, &mock.Measurer{})
				got := ansi.Strip(render.Document(l, styles))
				assert.Equal(t, wrappedText(l), got, "input %q width %d", input, width)
			}
		}
	})

	t.Run("link labels appear in the output", func(t *testing.T) {
		t.Parallel()
		l := layout.New(linkspan.Parse("Visit [GitHub](https://github.com) now"), 80, &mock.Measurer{})
		out := render.Document(l, styles)
		assert.Contains(t, ansi.Strip(out), "GitHub")
		assert.NotContains(t, ansi.Strip(out), "https://github.com")
	})

	t.Run("focus does not change the text", func(t *testing.T) {
		t.Parallel()
		l := layout.New(linkspan.Parse("[a](u1) and [b](u2)"), 80, &mock.Measurer{})
		require.Len(t, l.Links(), 2)
		assert.Equal(t, stripped(l, styles, -1), stripped(l, styles, 0))
		assert.Equal(t, stripped(l, styles, -1), stripped(l, styles, 1))
	})

	t.Run("empty document renders empty", func(t *testing.T) {
		t.Parallel()
		l := layout.New(linkspan.Parse(""), 80, &mock.Measurer{})
		assert.Equal(t, "", ansi.Strip(render.Document(l, styles)))
	})
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	// A negative index maps to the terminal default rather than a color.
	s := render.NewStyles(linkspan.Theme{Normal: -1, Link: 4, Focus: 5, Muted: 8, Error: 1})
	assert.Equal(t, "plain", ansi.Strip(s.Normal.Render("plain")))
	assert.Equal(t, "link", ansi.Strip(s.Link.Render("link")))
}
