// Package linkspan parses [text](url) markdown link spans out of freeform
// text and resolves them to screen positions for rendering and click
// handling.
//
// The engine is deliberately small: it recognizes the [text](url) pattern
// only, not general Markdown. Parse produces a Result holding the link-free
// display string and the parsed links; the layout package word-wraps the
// display string into a fixed-width box of terminal cells and computes a
// rectangle per link; the render package draws the wrapped text with link
// ranges colored; hit-testing resolves a cell coordinate back to a URL.
//
// Parse, layout, render and hit-test are synchronous and touch no shared
// state. A Result is immutable after parse; scope one per render cycle.
package linkspan

// Measurer reports rendered text extents in terminal cells. Implementations
// must agree with the output device the text is drawn to; layout.CellMeasurer
// matches ANSI terminals, including wide and combining characters.
type Measurer interface {
	// StringWidth returns the total cell width of s.
	StringWidth(s string) int
	// RuneWidth returns the cell width of a single rune.
	RuneWidth(r rune) int
}

// URLOpener opens a URL with the platform's default handler.
type URLOpener interface {
	Open(url string) error
}
