package service

import (
	"context"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/store"
	"github.com/foodblog/go-food-blog/models"
)

// Cache kinds, shared between the fetch and the local lookups table.
const (
	KindCategories  = "categories"
	KindCuisines    = "cuisines"
	KindTags        = "tags"
	KindDietaryTags = "dietary-tags"
)

type lookupsService struct {
	adapter adapter.ServerAdapter
	cache   store.LookupRepository
	logger  *logger.Logger
}

func NewLookupsService(serverAdapter adapter.ServerAdapter, cache store.LookupRepository, logger *logger.Logger) LookupsService {
	return &lookupsService{
		adapter: serverAdapter,
		cache:   cache,
		logger:  logger,
	}
}

// FormLookups implements [LookupsService]. Each kind is fetched fresh and
// written through to the cache; a kind whose fetch fails falls back to the
// cached copy, so a briefly unreachable backend still renders labels. The
// fallback itself failing fails the whole load.
func (l *lookupsService) FormLookups(ctx context.Context) (FormLookups, error) {
	var (
		lookups FormLookups
		err     error
	)

	if lookups.Categories, err = l.kind(ctx, KindCategories, l.adapter.Categories); err != nil {
		return FormLookups{}, err
	}
	if lookups.Cuisines, err = l.kind(ctx, KindCuisines, l.adapter.Cuisines); err != nil {
		return FormLookups{}, err
	}
	if lookups.Tags, err = l.kind(ctx, KindTags, l.adapter.Tags); err != nil {
		return FormLookups{}, err
	}
	if lookups.DietaryTags, err = l.kind(ctx, KindDietaryTags, l.adapter.DietaryTags); err != nil {
		return FormLookups{}, err
	}

	return lookups, nil
}

func (l *lookupsService) kind(ctx context.Context, kind string, fetch func(context.Context) ([]models.LookupItem, error)) ([]models.LookupItem, error) {
	items, err := fetch(ctx)
	if err == nil {
		if cacheErr := l.cache.SaveLookups(ctx, kind, items); cacheErr != nil {
			l.logger.Err(cacheErr).Str("kind", kind).Msg("refresh lookup cache")
		}
		return items, nil
	}

	l.logger.Err(err).Str("kind", kind).Msg("lookup fetch failed, falling back to cache")

	cached, cacheErr := l.cache.LoadLookups(ctx, kind)
	if cacheErr != nil {
		return nil, err
	}
	return cached, nil
}
