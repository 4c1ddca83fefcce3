package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/mines-lite/internal/mines"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	mines.Log = log
	m.Run()
}

func newTestSession(t *testing.T, scores mines.HighScoreStore) *mines.Session {
	t.Helper()
	s, err := mines.NewSession(
		context.Background(), scores, mines.NewSeededRand(7), mines.DefaultRules,
	)
	require.NoError(t, err)
	return s
}

func TestPlayQuits(t *testing.T) {
	s := newTestSession(t, mines.NewMemoryHighScores(4))
	var out bytes.Buffer

	err := play(context.Background(), s, strings.NewReader("status\nquit\n9:9\n"), &out)
	assert.ErrorIs(t, err, errQuit)
	assert.Contains(t, out.String(), "level 1, bombs 1, high score 4 (not started)")
	assert.Equal(t, mines.NotStarted, s.State())
}

func TestPlaySelectsTiles(t *testing.T) {
	s := newTestSession(t, mines.NewMemoryHighScores(0))
	var out bytes.Buffer

	err := play(context.Background(), s, strings.NewReader("0:0\nnope\n5 5\n"), &out)
	assert.ErrorIs(t, err, errQuit)
	started := s.State() == mines.InProgress || s.Level() == 2
	assert.True(t, started, "first selection starts the level")
	assert.Contains(t, out.String(), "invalid coordinate")
	assert.Contains(t, out.String(), "out of bounds")
}

func TestPlayStopsOnCancel(t *testing.T) {
	s := newTestSession(t, mines.NewMemoryHighScores(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()
	err := play(ctx, s, r, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
