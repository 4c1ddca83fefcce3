package mines

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameState int

const (
	NotStarted GameState = iota
	InProgress
	LevelCleared
	Ended
)

func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case LevelCleared:
		return "level cleared"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// SelectionOutcome describes everything a single selection changed.
type SelectionOutcome struct {
	Revealed     []RevealedTile
	BombHit      bool
	Bomb         Coordinate   // the bomb that was hit
	Bombs        []Coordinate // every bomb of the finished board
	LevelCleared bool

	LevelAdvanced bool
	BombAdded     bool

	// Grid is the board as it stood when the selection resolved, before
	// any rebuild.
	Grid Grid

	// State is the state the selection led to. NextState is where the
	// session settled after consuming LevelCleared or Ended.
	State     GameState
	NextState GameState

	Level     int
	BombCount int
	HighScore int
}

// Changed reports whether the selection had any effect.
func (o SelectionOutcome) Changed() bool {
	return len(o.Revealed) > 0 || o.BombHit || o.LevelCleared
}

// Session drives one play session: a run of levels on a fresh board each,
// ending with a reset whenever a bomb is hit. It is not safe for
// concurrent use.
type Session struct {
	ID uuid.UUID

	rules     Rules
	level     int
	bombCount int
	highScore int
	state     GameState
	board     *Board

	rnd    Rand
	scores HighScoreStore
	log    *logrus.Entry
}

func NewSession(
	ctx context.Context, scores HighScoreStore, rnd Rand, rules Rules,
) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	highScore, err := scores.LoadHighScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load high score: %w", err)
	}
	if highScore < 0 {
		highScore = 0
	}

	board, err := NewBoard(rules.Size)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	s := &Session{
		ID:        id,
		rules:     rules,
		level:     1,
		bombCount: rules.InitialBombs,
		highScore: highScore,
		state:     NotStarted,
		board:     board,
		rnd:       rnd,
		scores:    scores,
		log:       Log.WithField("session", id.String()),
	}
	s.log.WithFields(logrus.Fields{
		"rules":     rules.Seed(),
		"highScore": highScore,
	}).Debug("session created")
	return s, nil
}

func (s *Session) Rules() Rules { return s.rules }
func (s *Session) Level() int { return s.level }
func (s *Session) BombCount() int { return s.bombCount }
func (s *Session) HighScore() int { return s.highScore }
func (s *Session) State() GameState { return s.state }
func (s *Session) Snapshot() Grid { return s.board.Grid() }

// SelectTile is the only way to change a session. Out of bounds coordinates
// are rejected before anything changes; every other input is accepted, and
// inputs that cannot change anything yield an outcome with no changes.
//
// The returned error is also non-nil when the move was applied but the new
// high score could not be saved; the outcome is valid in that case.
func (s *Session) SelectTile(ctx context.Context, c Coordinate) (SelectionOutcome, error) {
	if err := s.board.checkBounds(c); err != nil {
		return s.outcome(), err
	}

	switch s.state {
	case NotStarted:
		if err := s.board.PlaceBombs(s.bombCount, c, s.rnd); err != nil {
			return s.outcome(), err
		}
		s.state = InProgress
		s.log.WithFields(logrus.Fields{
			"level": s.level,
			"bombs": s.bombCount,
			"first": c.String(),
		}).Debug("bombs placed")
	case InProgress:
	default:
		return s.outcome(), nil
	}

	res, err := Reveal(s.board, c)
	if err != nil {
		return s.outcome(), err
	}

	switch res.Kind {
	case BombHit:
		return s.explode(res.Bomb), nil
	case Revealed:
		out := s.outcome()
		out.Revealed = res.Revealed
		if !s.board.Cleared() {
			out.Grid = s.board.Grid()
			return out, nil
		}
		return s.advance(ctx, out)
	default:
		return s.outcome(), nil
	}
}

func (s *Session) explode(bomb Coordinate) SelectionOutcome {
	out := s.outcome()
	out.BombHit = true
	out.Bomb = bomb
	out.Bombs = s.board.Bombs()
	out.Grid = s.board.lostGrid(bomb)

	s.state = Ended
	out.State = s.state
	s.log.WithFields(logrus.Fields{
		"level": s.level,
		"bomb":  bomb.String(),
	}).Info("bomb hit")

	s.reset()
	s.settle(&out)
	return out
}

func (s *Session) advance(ctx context.Context, out SelectionOutcome) (SelectionOutcome, error) {
	out.LevelCleared = true
	out.Bombs = s.board.Bombs()
	out.Grid = s.board.Grid()

	s.state = LevelCleared
	out.State = s.state

	s.level++
	out.LevelAdvanced = true
	if s.bombCount < s.rules.MaxBombs && s.level%s.rules.BombEvery == 0 {
		s.bombCount++
		out.BombAdded = true
	}

	var err error
	if s.level > s.highScore {
		s.highScore = s.level
		if saveErr := s.scores.SaveHighScore(ctx, s.highScore); saveErr != nil {
			err = fmt.Errorf("unable to save high score %d: %w", s.highScore, saveErr)
			s.log.WithError(saveErr).Error("high score not saved")
		}
	}

	s.log.WithFields(logrus.Fields{
		"level":     s.level,
		"bombs":     s.bombCount,
		"highScore": s.highScore,
	}).Info("level cleared")

	s.rebuild()
	s.settle(&out)
	return out, err
}

func (s *Session) reset() {
	s.level = 1
	s.bombCount = s.rules.InitialBombs
	s.rebuild()
}

func (s *Session) rebuild() {
	// Rules were validated, so the size is always buildable.
	board, _ := NewBoard(s.rules.Size)
	s.board = board
	s.state = NotStarted
}

func (s *Session) outcome() SelectionOutcome {
	return SelectionOutcome{
		State:     s.state,
		NextState: s.state,
		Level:     s.level,
		BombCount: s.bombCount,
		HighScore: s.highScore,
	}
}

func (s *Session) settle(out *SelectionOutcome) {
	out.NextState = s.state
	out.Level = s.level
	out.BombCount = s.bombCount
	out.HighScore = s.highScore
}
