package linkspan

// Parse scans input for [text](url) markdown link spans in a single
// left-to-right pass. It returns a Result whose display string has every
// resolved span replaced by its bare label, and whose links record label,
// URL and the label's rune-offset range in the display string.
//
// A span resolves only when a matching ']' appears before any '[' or
// newline and is immediately followed by a '(' ... ')' pair. URL characters
// are accepted as-is up to the closing ')'. Anything that does not fully
// resolve — a missing ']', a missing '(' or ')', input ending mid-span —
// degrades to literal text: the leading '[' is copied through and scanning
// resumes at the next rune. Malformed markdown is never an error.
//
// Empty labels and empty URLs are both recorded: [](url) yields a
// zero-length span at its column, and [text]() yields an inert link that
// hit-testing skips.
func Parse(input string) *Result {
	src := []rune(input)
	display := make([]rune, 0, len(src))
	var links []Link

	for i := 0; i < len(src); {
		if src[i] != '[' {
			display = append(display, src[i])
			i++
			continue
		}
		label, url, next, ok := scanSpan(src, i)
		if !ok {
			display = append(display, '[')
			i++
			continue
		}
		start := len(display)
		display = append(display, label...)
		links = append(links, Link{
			Text:  string(label),
			URL:   string(url),
			Start: start,
			End:   len(display),
		})
		i = next
	}

	return &Result{Display: string(display), Links: links}
}

// scanSpan tries to read a complete [label](url) span whose '[' sits at
// src[open]. On success it returns the label and URL runes and the index
// just past the closing ')'. On failure ok is false and the caller treats
// the '[' as a literal; no already-emitted output is revisited.
func scanSpan(src []rune, open int) (label, url []rune, next int, ok bool) {
	labelEnd := -1
	for j := open + 1; j < len(src); j++ {
		r := src[j]
		if r == ']' {
			labelEnd = j
			break
		}
		if r == '[' || r == '\n' {
			return nil, nil, 0, false
		}
	}
	if labelEnd < 0 {
		return nil, nil, 0, false
	}
	if labelEnd+1 >= len(src) || src[labelEnd+1] != '(' {
		return nil, nil, 0, false
	}
	urlEnd := -1
	for j := labelEnd + 2; j < len(src); j++ {
		if src[j] == ')' {
			urlEnd = j
			break
		}
	}
	if urlEnd < 0 {
		return nil, nil, 0, false
	}
	return src[open+1 : labelEnd], src[labelEnd+2 : urlEnd], urlEnd + 1, true
}
