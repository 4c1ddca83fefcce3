package mines

import (
	"fmt"
	"strings"
)

// Rules fix the board size and the bomb progression of a session.
type Rules struct {
	Size         int
	InitialBombs int
	MaxBombs     int
	BombEvery    int // a bomb is added whenever the new level is a multiple of this
}

var DefaultRules = Rules{
	Size:         4,
	InitialBombs: 1,
	MaxBombs:     5,
	BombEvery:    3,
}

func (r Rules) Unpack() (size, initial, max, every int) {
	return r.Size, r.InitialBombs, r.MaxBombs, r.BombEvery
}

func (r Rules) Seed() string {
	return fmt.Sprintf("%d:%d:%d:%d", r.Size, r.InitialBombs, r.MaxBombs, r.BombEvery)
}

func ParseRules(seed string) (*Rules, error) {
	r := &Rules{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d", &r.Size, &r.InitialBombs, &r.MaxBombs, &r.BombEvery,
	)
	if n != 4 || err != nil {
		return nil, fmt.Errorf(
			`invalid rules seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return r, r.Validate()
}

func (r Rules) Validate() error {
	size, initial, max, every := r.Unpack()
	switch {
	case size < 1:
		return fmt.Errorf("%w: board size %d", ErrInvalidConfiguration, size)
	case initial < 1:
		return fmt.Errorf("%w: initial bomb count %d", ErrInvalidConfiguration, initial)
	case max < initial:
		return fmt.Errorf("%w: max bombs %d below initial %d", ErrInvalidConfiguration, max, initial)
	case max >= size*size:
		return fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d board",
			ErrInvalidConfiguration, max, size, size)
	case initial == 1 && size < 3:
		return fmt.Errorf("%w: a single bomb needs a non-corner cell, board is %dx%d",
			ErrInvalidConfiguration, size, size)
	case every < 1:
		return fmt.Errorf("%w: bomb interval %d", ErrInvalidConfiguration, every)
	}
	return nil
}
