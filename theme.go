package linkspan

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so rendered
// output automatically matches any color scheme. A negative index means the
// terminal's default color.
type Theme struct {
	Normal int // body text
	Link   int // link labels
	Focus  int // focused link in the interactive viewer
	Muted  int // status line, hints
	Error  int // error messages
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Normal: -1,
		Link:   4,
		Focus:  5,
		Muted:  8,
		Error:  1,
	}
}
