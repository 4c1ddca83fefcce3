package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridToString(t *testing.T) {
	g := Grid{0, 1, Unknown, ExplodedMine, UnflaggedMine, 8}
	assert.Equal(t, "  1 . \nX * 8 \n", g.ToString(3))
}

func TestCellStateRevealed(t *testing.T) {
	assert.True(t, CellState(0).Revealed())
	assert.True(t, CellState(8).Revealed())
	assert.False(t, Unknown.Revealed())
	assert.False(t, ExplodedMine.Revealed())
}
