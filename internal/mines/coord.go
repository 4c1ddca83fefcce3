package mines

import (
	"fmt"
	"strings"
)

type Coordinate struct {
	X, Y int
}

// Coordinate implements [fmt.Stringer]
func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// ParseCoordinate accepts "x:y", "x,y" or "x y".
func ParseCoordinate(s string) (Coordinate, error) {
	var c Coordinate
	ss := strings.NewReplacer(":", " ", ",", " ").Replace(strings.TrimSpace(s))
	n, err := fmt.Sscanf(ss, "%d %d", &c.X, &c.Y)
	if n != 2 || err != nil {
		return c, fmt.Errorf(
			`invalid coordinate (s = "%s", n = %d, err = %w)`, s, n, err,
		)
	}
	return c, nil
}

func (c Coordinate) index(size int) int {
	return c.Y*size + c.X
}

func coordinateAt(i, size int) Coordinate {
	return Coordinate{X: i % size, Y: i / size}
}
