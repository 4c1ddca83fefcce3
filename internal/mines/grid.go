package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown       CellState = -2
	ExplodedMine  CellState = 65
	UnflaggedMine CellState = 67
	/*
	 * A snapshot cell is one of:
	 *
	 *  - 0 to 8: the tile is revealed and has that many bombs around it.
	 *
	 *  - -2: the tile is hidden.
	 *
	 *  - 65: the bomb the player hit.
	 *
	 *  - 67: any other bomb, only shown once the level is over.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == ExplodedMine:
		return "X"
	case s == UnflaggedMine:
		return "*"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

// Grid is a row-major snapshot of a board.
type Grid []CellState

func (g Grid) At(c Coordinate, size int) CellState {
	return g[c.index(size)]
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
