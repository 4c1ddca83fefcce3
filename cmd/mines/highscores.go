package main

import (
	"context"
	"fmt"

	"github.com/vancomm/mines-lite/internal/config"
	"github.com/vancomm/mines-lite/internal/database"
	"github.com/vancomm/mines-lite/internal/mines"
	"github.com/vancomm/mines-lite/internal/repository"
	"github.com/vancomm/mines-lite/internal/store"
)

// openHighScores picks the high score store named by rawURL. The returned
// func releases it.
func openHighScores(ctx context.Context, rawURL string) (mines.HighScoreStore, func(), error) {
	s, err := config.ParseStore(rawURL)
	if err != nil {
		return nil, nil, err
	}

	switch s.Kind {
	case config.StoreSQLite:
		db, err := store.OpenSQLite(s.DSN)
		if err != nil {
			return nil, nil, err
		}
		kv, err := store.New(ctx, db, s.Options.Table)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.WithField("path", s.DSN).Info("using sqlite high score store")
		return store.NewHighScores(kv, s.Options.Key), func() { db.Close() }, nil

	case config.StorePostgres:
		pool, migrator, err := database.ConnectAndMigrate(ctx, s.DSN)
		if err != nil {
			return nil, nil, err
		}
		if version, dirty, err := migrator.Version(); err == nil {
			log.WithField("version", version).WithField("dirty", dirty).Debug("migrations applied")
		}
		migrator.Close()
		log.WithField("profile", s.Options.Profile).Info("using postgres high score store")
		return repository.NewHighScores(repository.New(pool), s.Options.Profile), pool.Close, nil

	case config.StoreMemory:
		log.Warn("high score is kept in memory and lost on exit")
		return mines.NewMemoryHighScores(0), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store kind %s", s.Kind)
	}
}
