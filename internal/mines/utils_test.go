package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelltodoFIFO(t *testing.T) {
	std := newCelltodo(8)
	assert.True(t, std.empty())

	for _, i := range []int{3, 1, 7} {
		std.add(i)
	}
	var got []int
	for !std.empty() {
		i, ok := std.pop()
		assert.True(t, ok)
		got = append(got, i)
	}
	assert.Equal(t, []int{3, 1, 7}, got)

	_, ok := std.pop()
	assert.False(t, ok)

	std.add(5)
	i, ok := std.pop()
	assert.True(t, ok)
	assert.Equal(t, 5, i)
}
