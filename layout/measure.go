package layout

import (
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/fwojciec/linkspan"
)

// Interface compliance check.
var _ linkspan.Measurer = CellMeasurer{}

// CellMeasurer measures text as an ANSI terminal renders it: wide East
// Asian characters and emoji occupy two cells, combining marks zero. It is
// the default Measurer for New.
type CellMeasurer struct{}

// StringWidth returns the total cell width of s.
func (CellMeasurer) StringWidth(s string) int { return uniseg.StringWidth(s) }

// RuneWidth returns the cell width of a single rune.
func (CellMeasurer) RuneWidth(r rune) int { return rw.RuneWidth(r) }
