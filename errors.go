package linkspan

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrInvalidRange indicates a link offset range that does not fit the
	// display string or overlaps another link.
	ErrInvalidRange = errors.New("invalid link range")

	// ErrEmptyURL indicates an attempt to open an inert link.
	ErrEmptyURL = errors.New("empty URL")

	// ErrUnsupportedPlatform indicates no default URL handler is known for
	// the current platform.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
