package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines-lite/internal/mines"
)

var errQuit = errors.New("quit")

const help = `commands:
  x:y      select a tile (also "x y" or "x,y")
  status   show level, bombs and high score
  quit     leave the game
`

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.WithError(err).Error("unable to read input")
		}
	}()
	return lines
}

// play reads commands from r until it is exhausted, a quit command arrives
// or ctx is done. It returns errQuit in the first two cases.
func play(ctx context.Context, s *mines.Session, r io.Reader, w io.Writer) error {
	lines := readLines(r)
	size := s.Rules().Size

	printStatus(w, s)
	fmt.Fprint(w, s.Snapshot().ToString(size))

	for {
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return errQuit
			}
			line = strings.TrimSpace(l)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return errQuit
		case "s", "status":
			printStatus(w, s)
			continue
		case "h", "help", "?":
			fmt.Fprint(w, help)
			continue
		}

		c, err := mines.ParseCoordinate(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		out, err := s.SelectTile(ctx, c)
		if errors.Is(err, mines.ErrOutOfBounds) {
			fmt.Fprintln(w, err)
			continue
		}
		if err != nil {
			log.WithError(err).Error("selection failed")
			if !out.Changed() {
				continue
			}
		}

		log.WithFields(logrus.Fields{
			"tile":     c.String(),
			"revealed": len(out.Revealed),
			"state":    out.State.String(),
		}).Debug("tile selected")

		printOutcome(w, out, size)
		if out.NextState == mines.NotStarted && out.Changed() {
			fmt.Fprint(w, s.Snapshot().ToString(size))
		}
	}
}

func printStatus(w io.Writer, s *mines.Session) {
	fmt.Fprintf(w, "level %d, bombs %d, high score %d (%s)\n",
		s.Level(), s.BombCount(), s.HighScore(), s.State())
}

func printOutcome(w io.Writer, out mines.SelectionOutcome, size int) {
	switch {
	case out.BombHit:
		fmt.Fprintf(w, "boom! bomb at %s\n", out.Bomb)
		fmt.Fprint(w, out.Grid.ToString(size))
		fmt.Fprintf(w, "back to level %d, high score %d\n", out.Level, out.HighScore)
	case out.LevelCleared:
		fmt.Fprint(w, out.Grid.ToString(size))
		fmt.Fprintf(w, "level cleared! now level %d", out.Level)
		if out.BombAdded {
			fmt.Fprintf(w, ", %d bombs", out.BombCount)
		}
		fmt.Fprintf(w, ", high score %d\n", out.HighScore)
	case len(out.Revealed) > 0:
		fmt.Fprint(w, out.Grid.ToString(size))
	default:
		fmt.Fprintln(w, "nothing happens")
	}
}
