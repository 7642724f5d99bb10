// Package mock provides test doubles for linkspan interfaces using
// function fields.
package mock

import "github.com/fwojciec/linkspan"

// Interface compliance checks.
var (
	_ linkspan.Measurer  = (*Measurer)(nil)
	_ linkspan.URLOpener = (*Opener)(nil)
)

// Measurer is a test double for linkspan.Measurer. The zero value measures
// every rune as one cell, which makes expected cell geometry equal to rune
// counts in tests; set the function fields to override.
type Measurer struct {
	StringWidthFn func(s string) int
	RuneWidthFn   func(r rune) int
}

// StringWidth delegates to StringWidthFn when set.
func (m *Measurer) StringWidth(s string) int {
	if m.StringWidthFn != nil {
		return m.StringWidthFn(s)
	}
	return len([]rune(s))
}

// RuneWidth delegates to RuneWidthFn when set.
func (m *Measurer) RuneWidth(r rune) int {
	if m.RuneWidthFn != nil {
		return m.RuneWidthFn(r)
	}
	return 1
}

// Opener is a test double for linkspan.URLOpener. It records every opened
// URL; set OpenFn to control the returned error.
type Opener struct {
	OpenFn func(url string) error
	Opened []string
}

// Open records url and delegates to OpenFn when set.
func (o *Opener) Open(url string) error {
	o.Opened = append(o.Opened, url)
	if o.OpenFn != nil {
		return o.OpenFn(url)
	}
	return nil
}
