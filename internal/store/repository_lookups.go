package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/models"
)

type lookupRepository struct {
	*DB
	logger *logger.Logger
}

func NewLookupRepository(db *DB, logger *logger.Logger) LookupRepository {
	return &lookupRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLookups replaces the cached list for kind inside one transaction, so a
// reader never observes a half-refreshed kind.
func (l *lookupRepository) SaveLookups(ctx context.Context, kind string, items []models.LookupItem) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin lookup refresh (kind=%s): %w", kind, err)
	}
	defer tx.Rollback()

	delQuery, delArgs, err := sq.Delete("lookups").
		Where(sq.Eq{"kind": kind}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build lookup delete: %w", err)
	}
	if _, err = tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		log.Err(err).
			Str("func", "lookupRepository.SaveLookups").
			Str("kind", kind).
			Msg("failed to clear cached lookups")
		return fmt.Errorf("failed to clear lookups (kind=%s): %w", kind, err)
	}

	if len(items) > 0 {
		insert := sq.Insert("lookups").Columns("kind", "id", "name")
		for _, item := range items {
			insert = insert.Values(kind, item.ID, item.Name)
		}

		insQuery, insArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build lookup insert: %w", err)
		}
		if _, err = tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			log.Err(err).
				Str("func", "lookupRepository.SaveLookups").
				Str("kind", kind).
				Int("count", len(items)).
				Msg("failed to insert cached lookups")
			return fmt.Errorf("failed to cache lookups (kind=%s): %w", kind, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit lookup refresh (kind=%s): %w", kind, err)
	}

	return nil
}

// LoadLookups returns the cached list for kind in name order. An empty cache
// yields an empty slice, not an error.
func (l *lookupRepository) LoadLookups(ctx context.Context, kind string) ([]models.LookupItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "name").
		From("lookups").
		Where(sq.Eq{"kind": kind}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookup select: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "lookupRepository.LoadLookups").
			Str("kind", kind).
			Msg("failed to query cached lookups")
		return nil, fmt.Errorf("failed to load lookups (kind=%s): %w", kind, err)
	}
	defer rows.Close()

	var items []models.LookupItem
	for rows.Next() {
		var item models.LookupItem
		if err = rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan lookup row (kind=%s): %w", kind, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookup rows (kind=%s): %w", kind, err)
	}

	return items, nil
}
