package store

import (
	"database/sql"

	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
