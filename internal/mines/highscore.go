package mines

import (
	"context"
	"sync"
)

// HighScoreStore persists the single best level reached.
type HighScoreStore interface {
	LoadHighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

type MemoryHighScores struct {
	mu    sync.Mutex
	score int
	saves int
}

func NewMemoryHighScores(score int) *MemoryHighScores {
	return &MemoryHighScores{score: score}
}

func (m *MemoryHighScores) LoadHighScore(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryHighScores) SaveHighScore(ctx context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves reports how many times SaveHighScore was called.
func (m *MemoryHighScores) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
