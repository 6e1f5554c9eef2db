// Package service holds the client-side application services: account and
// session lifecycle, the recipe submission pipeline, read-only post loading,
// lookup caching, and the contact form. Services sit between the TUI screens
// and the transport adapter; screens never talk to the adapter directly.
package service

import (
	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/config"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/internal/store"
)

type ClientServices struct {
	AuthService    AuthService
	PostsService   PostsService
	LookupsService LookupsService
	ContactService ContactService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, sessions *session.Store, cfg config.API, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewAuthService(serverAdapter, sessions, logger),
		PostsService:   NewPostsService(serverAdapter, storages.Drafts, sessions, cfg.PageLimit, logger),
		LookupsService: NewLookupsService(serverAdapter, storages.Lookups, logger),
		ContactService: NewContactService(serverAdapter, logger),
	}
}
