package linkspan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/fwojciec/linkspan"
)

// TestParse_AgainstGoldmark cross-checks link extraction against goldmark's
// CommonMark parser on inputs where the two grammars agree: single-line
// text, plain labels, no escapes, no reference links. The engine's grammar
// is deliberately simpler than CommonMark, so this is a sanity check on the
// shared subset, not an equivalence claim.
func TestParse_AgainstGoldmark(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"no links here",
		"Visit [GitHub](https://github.com) now",
		"[a](https://a.example) and [b](https://b.example)",
		"start [one](https://one.example) mid [two](https://two.example) end",
		"tail link [docs](https://go.dev)",
	}

	for _, input := range inputs {
		res := linkspan.Parse(input)
		want := goldmarkLinks(input)
		require.Len(t, res.Links, len(want), "input %q", input)
		for i, l := range res.Links {
			assert.Equal(t, want[i].label, l.Text, "input %q", input)
			assert.Equal(t, want[i].url, l.URL, "input %q", input)
		}
	}
}

type goldmarkLink struct {
	label string
	url   string
}

// goldmarkLinks extracts inline links from src using goldmark, in document
// order.
func goldmarkLinks(src string) []goldmarkLink {
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(source))

	var out []goldmarkLink
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			out = append(out, goldmarkLink{
				label: plainText(link, source),
				url:   string(link.Destination),
			})
		}
		return ast.WalkContinue, nil
	})
	return out
}

// plainText collects the text segments directly under n.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
