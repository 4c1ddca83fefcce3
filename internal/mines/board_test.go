package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Size())
	assert.False(t, b.Placed())
	for _, c := range coords(4) {
		tile, err := b.TileAt(c)
		require.NoError(t, err)
		assert.False(t, tile.Revealed)
		assert.False(t, tile.Bomb)
		_, known := tile.AdjacentBombs()
		assert.False(t, known)
	}

	_, err = NewBoard(0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPlaceBombs(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for count := 1; count < 16; count++ {
		for _, first := range coords(4) {
			b, _ := NewBoard(4)
			require.NoError(t, b.PlaceBombs(count, first, r))

			assert.False(t, b.IsBomb(first), "first %s with %d bombs", first, count)
			assert.Len(t, b.Bombs(), count)
			assert.Equal(t, count, b.BombCount())
			assert.True(t, b.Placed())
		}
	}
}

func TestPlaceSingleBombAvoidsCorners(t *testing.T) {
	t.Parallel()

	corners := []Coordinate{{0, 0}, {3, 0}, {0, 3}, {3, 3}}
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[Coordinate]bool{}
	for range 500 {
		for _, first := range coords(4) {
			b, _ := NewBoard(4)
			require.NoError(t, b.PlaceBombs(1, first, r))
			bombs := b.Bombs()
			require.Len(t, bombs, 1)
			assert.NotContains(t, corners, bombs[0])
			assert.NotEqual(t, first, bombs[0])
			seen[bombs[0]] = true
		}
	}
	// every non-corner cell is reachable
	assert.Len(t, seen, 12)
}

func TestPlaceSingleBombFirstInCorner(t *testing.T) {
	b, _ := NewBoard(4)
	// candidates for first = 0:0 are 1,2,4,5,6,7,8,9,10,11,13,14
	r := &scriptedRand{draws: []int{0}}
	require.NoError(t, b.PlaceBombs(1, Coordinate{0, 0}, r))
	assert.Equal(t, []Coordinate{{1, 0}}, b.Bombs())

	b, _ = NewBoard(4)
	r = &scriptedRand{draws: []int{11}}
	require.NoError(t, b.PlaceBombs(1, Coordinate{0, 0}, r))
	assert.Equal(t, []Coordinate{{2, 3}}, b.Bombs())
}

func TestPlaceBombsRetriesCollisions(t *testing.T) {
	b, _ := NewBoard(4)
	// 5 is the first cell, 7 repeats; both are redrawn
	r := &scriptedRand{draws: []int{5, 7, 7, 5, 9}}
	require.NoError(t, b.PlaceBombs(2, Coordinate{1, 1}, r))
	assert.Equal(t, []Coordinate{{3, 1}, {1, 2}}, b.Bombs())
	assert.Equal(t, 5, r.i)
}

func TestPlaceBombsErrors(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name  string
		count int
		first Coordinate
		err   error
	}{
		{"whole board", 16, Coordinate{0, 0}, ErrInvalidConfiguration},
		{"more than board", 20, Coordinate{0, 0}, ErrInvalidConfiguration},
		{"zero", 0, Coordinate{0, 0}, ErrInvalidConfiguration},
		{"first out of bounds", 1, Coordinate{4, 0}, ErrOutOfBounds},
		{"first negative", 1, Coordinate{0, -1}, ErrOutOfBounds},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, _ := NewBoard(4)
			err := b.PlaceBombs(test.count, test.first, r)
			assert.ErrorIs(t, err, test.err)
			assert.False(t, b.Placed())
			assert.Empty(t, b.Bombs())
		})
	}

	t.Run("twice", func(t *testing.T) {
		b, _ := NewBoard(4)
		require.NoError(t, b.PlaceBombs(3, Coordinate{0, 0}, r))
		before := b.Bombs()
		assert.ErrorIs(t, b.PlaceBombs(3, Coordinate{0, 0}, r), ErrBombsPlaced)
		assert.Equal(t, before, b.Bombs())
	})

	t.Run("single bomb without candidates", func(t *testing.T) {
		b, _ := NewBoard(2)
		err := b.PlaceBombs(1, Coordinate{0, 0}, r)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.False(t, b.Placed())
	})
}

func TestNeighbors(t *testing.T) {
	b, _ := NewBoard(4)

	assert.Equal(t,
		[]Coordinate{{1, 0}, {0, 1}, {1, 1}},
		b.Neighbors(Coordinate{0, 0}),
	)
	assert.Equal(t,
		[]Coordinate{{2, 2}, {3, 2}, {2, 3}},
		b.Neighbors(Coordinate{3, 3}),
	)
	assert.Len(t, b.Neighbors(Coordinate{1, 0}), 5)
	assert.Len(t, b.Neighbors(Coordinate{1, 1}), 8)

	for _, c := range coords(4) {
		for _, n := range b.Neighbors(c) {
			assert.True(t, b.Contains(n))
			assert.NotEqual(t, c, n)
		}
	}

	one, _ := NewBoard(1)
	assert.Empty(t, one.Neighbors(Coordinate{0, 0}))
}

func TestTileAtOutOfBounds(t *testing.T) {
	b, _ := NewBoard(4)
	_, err := b.TileAt(Coordinate{0, 4})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.False(t, b.IsBomb(Coordinate{-1, -1}))
}

func TestCleared(t *testing.T) {
	b := boardWithBombs(4, Coordinate{2, 2})
	assert.False(t, b.Cleared())
	for i := range b.tiles {
		if !b.tiles[i].Bomb {
			b.tiles[i].Revealed = true
		}
	}
	assert.True(t, b.Cleared())

	b.tiles[0].Revealed = false
	assert.False(t, b.Cleared())
}
