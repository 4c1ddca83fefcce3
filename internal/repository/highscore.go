package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultProfile = "default"

var ErrInvalidScore = errors.New("invalid high score")

type Highscore struct {
	Profile   string             `json:"profile" db:"profile"`
	Score     int                `json:"score" db:"score"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at" db:"updated_at"`
}

func (q *Queries) FetchHighscore(ctx context.Context, profile string) (*Highscore, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT profile, score, updated_at FROM highscore WHERE profile = $1",
		profile,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Highscore])
}

func (q *Queries) UpsertHighscore(ctx context.Context, profile string, score int) (*Highscore, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO highscore (profile, score)
		VALUES (@profile, @score)
		ON CONFLICT (profile)
		DO UPDATE SET score = excluded.score, updated_at = now()
		RETURNING profile, score, updated_at;`,
		pgx.NamedArgs{
			"profile": profile,
			"score":   score,
		},
	)
	h, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Highscore])
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return nil, fmt.Errorf("%w %d: %s", ErrInvalidScore, score, pgErr.Message)
	}
	return h, err
}

// HighScores keeps one profile's high score in Postgres. It implements
// [mines.HighScoreStore].
type HighScores struct {
	q       *Queries
	profile string
}

func NewHighScores(q *Queries, profile string) *HighScores {
	if profile == "" {
		profile = DefaultProfile
	}
	return &HighScores{q: q, profile: profile}
}

func (h *HighScores) LoadHighScore(ctx context.Context) (int, error) {
	hs, err := h.q.FetchHighscore(ctx, h.profile)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unable to fetch high score of %s: %w", h.profile, err)
	}
	return hs.Score, nil
}

func (h *HighScores) SaveHighScore(ctx context.Context, score int) error {
	if _, err := h.q.UpsertHighscore(ctx, h.profile, score); err != nil {
		return fmt.Errorf("unable to save high score of %s: %w", h.profile, err)
	}
	return nil
}
