package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/runner"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// backend is the opened persistence for a local run.
type backend struct {
	best runner.BestScoreStore
	db   *storage.Store // Run history; nil unless the sqlite database opened
}

func (b backend) Close() {
	if b.db != nil {
		b.db.Close()
	}
}

// openBackend opens the best score store selected by --store.
// Failures degrade to an in-memory store so the game still runs.
func openBackend(logger *log.Logger) backend {
	switch flagStore {
	case storage.BackendMemory:
		return backend{best: storage.NewMemoryStore()}

	case storage.BackendGdata:
		g, err := storage.OpenGdata("dinodash")
		if err != nil {
			logger.Warn("could not open gdata store, best score will not persist", "error", err)
			return backend{best: storage.NewMemoryStore()}
		}
		b := backend{best: g}
		// Run history still lives in sqlite when it is available
		if db, err := storage.Open(flagDBPath); err == nil {
			b.db = db
		}
		return b

	default:
		if flagStore != storage.BackendSQLite {
			logger.Warn("unknown store backend, using sqlite", "store", flagStore)
		}
		db, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database, best score will not persist", "error", err)
			return backend{best: storage.NewMemoryStore()}
		}
		return backend{best: db, db: db}
	}
}

// openHistory opens the sqlite run history for the read-only commands.
func openHistory() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}
