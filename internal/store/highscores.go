package store

import (
	"context"
	"errors"
	"fmt"
)

const DefaultHighScoreKey = "highscore"

// HighScores keeps the high score under a single key of a [Store]. It
// implements [mines.HighScoreStore].
type HighScores struct {
	store *Store
	key   string
}

func NewHighScores(s *Store, key string) *HighScores {
	if key == "" {
		key = DefaultHighScoreKey
	}
	return &HighScores{store: s, key: key}
}

// LoadHighScore returns 0 when no score was saved yet.
func (h *HighScores) LoadHighScore(ctx context.Context) (int, error) {
	var score int
	err := h.store.Get(ctx, h.key, &score)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unable to read %s: %w", h.key, err)
	}
	return score, nil
}

func (h *HighScores) SaveHighScore(ctx context.Context, score int) error {
	if err := h.store.Set(ctx, h.key, score); err != nil {
		return fmt.Errorf("unable to write %s: %w", h.key, err)
	}
	return nil
}
