// Package store holds the client-local SQLite database: autosaved recipe
// drafts and a cache of authoring lookups (categories, cuisines, tags,
// dietary tags) so the form can render labels while the backend is briefly
// unreachable. Posts and accounts live server-side only.
package store

import (
	"context"
	"time"

	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DraftRepository persists autosaved recipe drafts keyed by editing context
// (one slot for the create form, one per post being edited).
type DraftRepository interface {
	SaveDraft(ctx context.Context, key string, draft recipeform.Draft) error
	LoadDraft(ctx context.Context, key string) (recipeform.Draft, time.Time, error)
	DeleteDraft(ctx context.Context, key string) error
}

// LookupRepository caches authoring lookups by kind. SaveLookups replaces the
// whole kind atomically with the freshly fetched list.
type LookupRepository interface {
	SaveLookups(ctx context.Context, kind string, items []models.LookupItem) error
	LoadLookups(ctx context.Context, kind string) ([]models.LookupItem, error)
}
