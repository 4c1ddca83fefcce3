package mines

type RevealKind int

const (
	NoChange RevealKind = iota
	BombHit
	Revealed
)

func (k RevealKind) String() string {
	switch k {
	case NoChange:
		return "no change"
	case BombHit:
		return "bomb hit"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

type RevealedTile struct {
	Coordinate
	Count int
}

type RevealOutcome struct {
	Kind     RevealKind
	Bomb     Coordinate     // set for BombHit
	Revealed []RevealedTile // set for Revealed, in reveal order
}

// Reveal opens c on b. A bomb is reported without revealing anything.
// Otherwise c is revealed and, whenever a revealed tile has no bombs
// around it, its hidden neighbours are revealed too. Numbered tiles stop
// the spread.
func Reveal(b *Board, c Coordinate) (RevealOutcome, error) {
	if err := b.checkBounds(c); err != nil {
		return RevealOutcome{Kind: NoChange}, err
	}
	start := c.index(b.size)
	if b.tiles[start].Bomb {
		return RevealOutcome{Kind: BombHit, Bomb: c}, nil
	}
	if b.tiles[start].Revealed {
		return RevealOutcome{Kind: NoChange}, nil
	}

	/*
	 * Tiles are marked revealed as they are queued, so nothing is queued
	 * twice and the walk ends after at most size*size steps.
	 */
	std := newCelltodo(len(b.tiles))
	b.tiles[start].Revealed = true
	std.add(start)

	var revealed []RevealedTile
	for !std.empty() {
		i, _ := std.pop()
		cc := coordinateAt(i, b.size)
		v := b.adjacentBombs(cc)
		b.tiles[i].count = v
		revealed = append(revealed, RevealedTile{Coordinate: cc, Count: v})

		if v > 0 {
			continue
		}
		for _, n := range b.Neighbors(cc) {
			j := n.index(b.size)
			if t := &b.tiles[j]; !t.Revealed && !t.Bomb {
				t.Revealed = true
				std.add(j)
			}
		}
	}

	return RevealOutcome{Kind: Revealed, Revealed: revealed}, nil
}
