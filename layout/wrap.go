package layout

import (
	"unicode"

	"github.com/fwojciec/linkspan"
)

// wrapLines splits runes into greedily wrapped lines no wider than width
// cells: words accumulate on the current line and a word that would
// overflow starts the next one. Whitespace rides along on the line it
// follows, a word wider than the whole box hard-breaks at cell boundaries,
// and an explicit newline always forces a break. A non-positive width
// disables wrapping.
func wrapLines(runes []rune, width int, m linkspan.Measurer) []line {
	if width <= 0 {
		return []line{{start: 0, end: len(runes)}}
	}

	var (
		lines []line
		start int // first rune of the current line
		end   int // one past the last rune of the current line
		w     int // cell width of the current line
	)
	brk := func(next int) {
		lines = append(lines, line{start: start, end: end})
		start, end, w = next, next, 0
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\n':
			brk(i + 1)
			i++

		case unicode.IsSpace(r):
			w += m.RuneWidth(r)
			i++
			end = i

		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) {
				j++
			}
			ww := m.StringWidth(string(runes[i:j]))
			if ww > width {
				for i < j {
					rw := m.RuneWidth(runes[i])
					if w > 0 && w+rw > width {
						brk(i)
					}
					w += rw
					i++
					end = i
				}
				continue
			}
			if w > 0 && w+ww > width {
				brk(i)
			}
			w += ww
			i = j
			end = i
		}
	}

	return append(lines, line{start: start, end: end})
}
