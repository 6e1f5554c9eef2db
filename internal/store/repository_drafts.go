package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/recipeform"
)

type draftRepository struct {
	*DB
	logger *logger.Logger
}

func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDraft upserts the draft under key. The draft body is stored as one JSON
// document; the schema never chases the form's field set.
func (d *draftRepository) SaveDraft(ctx context.Context, key string, draft recipeform.Draft) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft %q: %w", key, err)
	}

	query, args, err := sq.Insert("drafts").
		Columns("draft_key", "payload", "updated_at").
		Values(key, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(draft_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build draft upsert: %w", err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "draftRepository.SaveDraft").
			Str("draft_key", key).
			Msg("failed to execute upsert for draft")
		return fmt.Errorf("failed to save draft (key=%s): %w", key, err)
	}

	return nil
}

// LoadDraft returns the draft stored under key and the instant it was last
// saved. Returns [ErrDraftNotFound] when no draft is stored.
func (d *draftRepository) LoadDraft(ctx context.Context, key string) (recipeform.Draft, time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("payload", "updated_at").
		From("drafts").
		Where(sq.Eq{"draft_key": key}).
		ToSql()
	if err != nil {
		return recipeform.Draft{}, time.Time{}, fmt.Errorf("build draft select: %w", err)
	}

	var (
		payload string
		savedAt time.Time
	)
	row := d.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recipeform.Draft{}, time.Time{}, ErrDraftNotFound
		}
		log.Err(err).
			Str("func", "draftRepository.LoadDraft").
			Str("draft_key", key).
			Msg("failed to scan draft row")
		return recipeform.Draft{}, time.Time{}, fmt.Errorf("failed to load draft (key=%s): %w", key, err)
	}

	var draft recipeform.Draft
	if err = json.Unmarshal([]byte(payload), &draft); err != nil {
		return recipeform.Draft{}, time.Time{}, fmt.Errorf("decode draft %q: %w", key, err)
	}

	return draft, savedAt, nil
}

// DeleteDraft removes the draft stored under key. Deleting an absent draft is
// not an error.
func (d *draftRepository) DeleteDraft(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("drafts").
		Where(sq.Eq{"draft_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build draft delete: %w", err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "draftRepository.DeleteDraft").
			Str("draft_key", key).
			Msg("failed to execute delete for draft")
		return fmt.Errorf("failed to delete draft (key=%s): %w", key, err)
	}

	return nil
}
