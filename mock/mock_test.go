package mock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/linkspan/mock"
)

func TestMeasurer(t *testing.T) {
	t.Parallel()

	t.Run("zero value measures one cell per rune", func(t *testing.T) {
		t.Parallel()
		m := &mock.Measurer{}
		assert.Equal(t, 5, m.StringWidth("héllo"))
		assert.Equal(t, 1, m.RuneWidth('日'))
	})

	t.Run("function fields override", func(t *testing.T) {
		t.Parallel()
		m := &mock.Measurer{
			StringWidthFn: func(s string) int { return 2 * len([]rune(s)) },
			RuneWidthFn:   func(r rune) int { return 2 },
		}
		assert.Equal(t, 6, m.StringWidth("abc"))
		assert.Equal(t, 2, m.RuneWidth('a'))
	})
}

func TestOpener(t *testing.T) {
	t.Parallel()

	t.Run("records opened URLs", func(t *testing.T) {
		t.Parallel()
		o := &mock.Opener{}
		assert.NoError(t, o.Open("https://a.example"))
		assert.NoError(t, o.Open("https://b.example"))
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, o.Opened)
	})

	t.Run("OpenFn controls the error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("boom")
		o := &mock.Opener{OpenFn: func(string) error { return wantErr }}
		assert.ErrorIs(t, o.Open("https://a.example"), wantErr)
		assert.Equal(t, []string{"https://a.example"}, o.Opened)
	})
}
