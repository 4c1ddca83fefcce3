package mines

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// scriptedRand replays draws, wrapping each into [0, n).
type scriptedRand struct {
	draws []int
	i     int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.draws[r.i%len(r.draws)] % n
	r.i++
	return v
}

// boardWithBombs builds a board with bombs at fixed positions.
func boardWithBombs(size int, bombs ...Coordinate) *Board {
	b, _ := NewBoard(size)
	for _, c := range bombs {
		b.tiles[c.index(size)].Bomb = true
	}
	b.bombCount = len(bombs)
	b.placed = true
	return b
}

func coords(size int) []Coordinate {
	cs := make([]Coordinate, 0, size*size)
	for y := range size {
		for x := range size {
			cs = append(cs, Coordinate{x, y})
		}
	}
	return cs
}
