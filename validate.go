package linkspan

import "fmt"

// Validate checks the link range invariants: every range lies within the
// display string, ranges are ordered left to right, and no two ranges
// overlap. Parse output always satisfies these; Validate is for callers that
// assemble or transform Results themselves.
func (r *Result) Validate() error {
	n := len(r.DisplayRunes())
	prevEnd := 0
	for i, l := range r.Links {
		if l.Start < 0 || l.Start > l.End || l.End > n {
			return fmt.Errorf("link %d (%q): range [%d, %d) outside display of %d runes: %w",
				i, l.Text, l.Start, l.End, n, ErrInvalidRange)
		}
		if l.Start < prevEnd {
			return fmt.Errorf("link %d (%q): range [%d, %d) overlaps previous link ending at %d: %w",
				i, l.Text, l.Start, l.End, prevEnd, ErrInvalidRange)
		}
		prevEnd = l.End
	}
	return nil
}
