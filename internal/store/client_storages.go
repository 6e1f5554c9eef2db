package store

import (
	"context"
	"fmt"

	"github.com/foodblog/go-food-blog/internal/config"
	"github.com/foodblog/go-food-blog/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Drafts holds autosaved recipe drafts.
	Drafts DraftRepository

	// Lookups caches the authoring lookup lists.
	Lookups LookupRepository
}

// NewClientStorages initialises the client storage layer: it opens the SQLite
// database at cfg.DB.DSN (creating the file on first run), applies pending
// schema migrations, and wires the repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Drafts:  NewDraftRepository(db, logger),
		Lookups: NewLookupRepository(db, logger),
	}, nil
}
