package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/linkspan/layout"
)

func TestCellMeasurer(t *testing.T) {
	t.Parallel()

	m := layout.CellMeasurer{}

	assert.Equal(t, 3, m.StringWidth("abc"))
	assert.Equal(t, 4, m.StringWidth("日本"))
	assert.Equal(t, 0, m.StringWidth(""))
	assert.Equal(t, 1, m.RuneWidth('a'))
	assert.Equal(t, 2, m.RuneWidth('日'))
}
