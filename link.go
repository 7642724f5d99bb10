package linkspan

// Rect is a half-open rectangle in layout cell coordinates: x grows right,
// y grows down, one cell per unit. The zero Rect is empty.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Empty reports whether the rectangle covers no cells. Rectangles for links
// that wrap across lines can come out empty when the wrap inverts the
// horizontal span; Contains is simply never true for them.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Link is one parsed markdown link span. Text, URL and the offset range are
// fixed at parse time; Rect stays zero until a layout pass resolves it.
type Link struct {
	// Text is the display label, already stripped of link syntax.
	Text string

	// URL is the destination. An empty URL is valid, inert data: hit-testing
	// never reports such a link and opening it is a no-op.
	URL string

	// Start and End are the half-open rune-offset range the label occupies
	// in the display string. Start == End for an empty label.
	Start int
	End   int

	// Rect is the link's screen-space rectangle, resolved by layout.New.
	Rect Rect
}

// Inert reports whether clicking the link should do nothing.
func (l Link) Inert() bool { return l.URL == "" }

// Result holds the output of one Parse call: the display string with all
// link syntax stripped, and the links in the order found. Links are disjoint
// and ordered left to right. Treat a Result as immutable after parse.
type Result struct {
	Display string
	Links   []Link
}

// DisplayRunes returns the display string as runes. Link offsets index this
// slice.
func (r *Result) DisplayRunes() []rune {
	return []rune(r.Display)
}
