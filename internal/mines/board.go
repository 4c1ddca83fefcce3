package mines

import "fmt"

type Tile struct {
	Revealed bool
	Bomb     bool
	count    int
}

// AdjacentBombs reports the number of bombs around the tile. The second
// result is false while the tile is hidden.
func (t Tile) AdjacentBombs() (int, bool) {
	if !t.Revealed {
		return 0, false
	}
	return t.count, true
}

type Board struct {
	size      int
	tiles     []Tile
	bombCount int
	placed    bool
}

// NewBoard builds a size x size board with every tile hidden and no bombs.
// Bombs are placed later with [Board.PlaceBombs] once the first tile is
// known.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidConfiguration, size)
	}
	return &Board{
		size:  size,
		tiles: make([]Tile, size*size),
	}, nil
}

func (b *Board) Size() int { return b.size }
func (b *Board) BombCount() int { return b.bombCount }
func (b *Board) Placed() bool { return b.placed }

func (b *Board) Contains(c Coordinate) bool {
	return 0 <= c.X && c.X < b.size && 0 <= c.Y && c.Y < b.size
}

func (b *Board) checkBounds(c Coordinate) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, c, b.size, b.size)
	}
	return nil
}

func (b *Board) isCorner(c Coordinate) bool {
	last := b.size - 1
	return (c.X == 0 || c.X == last) && (c.Y == 0 || c.Y == last)
}

// PlaceBombs marks count distinct tiles as bombs, never first. A single
// bomb is never put in a corner. Either every bomb is placed or the board
// is left untouched.
func (b *Board) PlaceBombs(count int, first Coordinate, rnd Rand) error {
	if b.placed {
		return ErrBombsPlaced
	}
	if err := b.checkBounds(first); err != nil {
		return err
	}
	n := b.size * b.size
	if count < 1 || count >= n {
		return fmt.Errorf(
			"%w: cannot place %d bombs on a %dx%d board with a safe first cell",
			ErrInvalidConfiguration, count, b.size, b.size,
		)
	}

	bombs := make([]bool, n)
	skip := first.index(b.size)

	if count == 1 {
		candidates := make([]int, 0, n)
		for i := range n {
			if i != skip && !b.isCorner(coordinateAt(i, b.size)) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			return fmt.Errorf(
				"%w: no cell for a single bomb on a %dx%d board",
				ErrInvalidConfiguration, b.size, b.size,
			)
		}
		bombs[candidates[rnd.IntN(len(candidates))]] = true
	} else {
		for placed := 0; placed < count; {
			i := rnd.IntN(n)
			if i == skip || bombs[i] {
				continue
			}
			bombs[i] = true
			placed++
		}
	}

	for i, bomb := range bombs {
		b.tiles[i].Bomb = bomb
	}
	b.bombCount = count
	b.placed = true
	return nil
}

// Neighbors returns the Moore neighbourhood of c clipped to the board, in
// row-major order.
func (b *Board) Neighbors(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if b.Contains(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

func (b *Board) IsBomb(c Coordinate) bool {
	return b.Contains(c) && b.tiles[c.index(b.size)].Bomb
}

func (b *Board) TileAt(c Coordinate) (Tile, error) {
	if err := b.checkBounds(c); err != nil {
		return Tile{}, err
	}
	return b.tiles[c.index(b.size)], nil
}

func (b *Board) Bombs() []Coordinate {
	bombs := make([]Coordinate, 0, b.bombCount)
	for i, t := range b.tiles {
		if t.Bomb {
			bombs = append(bombs, coordinateAt(i, b.size))
		}
	}
	return bombs
}

func (b *Board) adjacentBombs(c Coordinate) int {
	count := 0
	for _, n := range b.Neighbors(c) {
		if b.tiles[n.index(b.size)].Bomb {
			count++
		}
	}
	return count
}

// Cleared reports whether every tile that is not a bomb has been revealed.
func (b *Board) Cleared() bool {
	for _, t := range b.tiles {
		if !t.Bomb && !t.Revealed {
			return false
		}
	}
	return true
}

func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.tiles))
	for i, t := range b.tiles {
		switch {
		case t.Revealed && t.Bomb:
			grid[i] = ExplodedMine
		case t.Revealed:
			grid[i] = CellState(t.count)
		default:
			grid[i] = Unknown
		}
	}
	return grid
}

// lostGrid is the grid shown once hit has exploded: every bomb is exposed.
func (b *Board) lostGrid(hit Coordinate) Grid {
	grid := b.Grid()
	for i, t := range b.tiles {
		if t.Bomb {
			grid[i] = UnflaggedMine
		}
	}
	grid[hit.index(b.size)] = ExplodedMine
	return grid
}
