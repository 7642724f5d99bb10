// Package layout word-wraps a parsed document into a fixed-width box of
// terminal cells and resolves a screen-space rectangle for every link.
//
// The renderer consumes the exact line ranges computed here instead of
// wrapping again, so drawn glyph positions always correspond to the
// hit-test rectangles. Any divergence between the two would be a bug.
package layout

import (
	"github.com/fwojciec/linkspan"
)

// Layout is the result of wrapping one parsed document at a fixed width.
// Coordinates are cells: x grows right within a line, y is the line index.
type Layout struct {
	width int
	m     linkspan.Measurer
	runes []rune
	lines []line
	links []linkspan.Link
}

// line is one wrapped line as a half-open rune-offset range into the
// display string. Newlines consumed at breaks belong to no line.
type line struct {
	start, end int
}

// New wraps the display string of res to width cells and resolves a
// rectangle for every link. A nil measurer uses CellMeasurer. res is not
// modified; the returned Layout holds its own copy of the links.
func New(res *linkspan.Result, width int, m linkspan.Measurer) *Layout {
	if m == nil {
		m = CellMeasurer{}
	}
	l := &Layout{
		width: width,
		m:     m,
		runes: res.DisplayRunes(),
		links: append([]linkspan.Link(nil), res.Links...),
	}
	l.lines = wrapLines(l.runes, width, m)
	l.resolveRects()
	return l
}

// Width returns the wrap width in cells.
func (l *Layout) Width() int { return l.width }

// Height returns the number of wrapped lines.
func (l *Layout) Height() int { return len(l.lines) }

// Links returns the links with their rectangles resolved, in parse order.
// The caller must not modify the returned slice.
func (l *Layout) Links() []linkspan.Link { return l.links }

// Line returns the text of wrapped line i.
func (l *Layout) Line(i int) string {
	ln := l.lines[i]
	return string(l.runes[ln.start:ln.end])
}

// LineRange returns the half-open display rune-offset range of line i.
func (l *Layout) LineRange(i int) (start, end int) {
	return l.lines[i].start, l.lines[i].end
}

// Text returns the display substring for the rune-offset range [start, end).
func (l *Layout) Text(start, end int) string {
	return string(l.runes[start:end])
}

// HitTest resolves a point in layout cell coordinates to the URL of the
// link under it. Links are scanned in parse order and the first rectangle
// containing the point wins. Inert links (empty URL) never match, and a
// point outside every rectangle reports no link rather than an error.
func (l *Layout) HitTest(x, y int) (url string, ok bool) {
	for _, lk := range l.links {
		if lk.Inert() {
			continue
		}
		if lk.Rect.Contains(x, y) {
			return lk.URL, true
		}
	}
	return "", false
}

// resolveRects computes one rectangle per link: from the start x on the
// first covered line to the end x on the last covered line, spanning every
// line in between. A link that wraps therefore gets a single bounding rect
// rather than one rect per line; the resulting over-approximation of the
// hit area is intentional, and when the wrap inverts the horizontal span
// the rect comes out empty and simply never matches.
func (l *Layout) resolveRects() {
	for k := range l.links {
		lk := &l.links[k]
		first := l.lineOf(lk.Start)
		last := first
		if lk.End > lk.Start {
			last = l.lineOf(lk.End - 1)
		}
		fl, ll := l.lines[first], l.lines[last]
		lk.Rect = linkspan.Rect{
			MinX: l.xAt(fl, max(lk.Start, fl.start)),
			MinY: first,
			MaxX: l.xAt(ll, min(lk.End, ll.end)),
			MaxY: last + 1,
		}
	}
}

// lineOf returns the index of the line containing display rune offset p.
// Offsets at a boundary (zero-length links at the end of a line or of the
// document) resolve to the first line whose range reaches p.
func (l *Layout) lineOf(p int) int {
	for i, ln := range l.lines {
		if p >= ln.start && p < ln.end {
			return i
		}
	}
	for i, ln := range l.lines {
		if p <= ln.end {
			return i
		}
	}
	return len(l.lines) - 1
}

// xAt returns the cell x offset of display rune p on line ln.
func (l *Layout) xAt(ln line, p int) int {
	return l.m.StringWidth(string(l.runes[ln.start:p]))
}
