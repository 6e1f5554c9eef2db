package config

import (
	"os"
	"path/filepath"
	"time"
)

// ClientConfig is the top-level configuration container for the food-blog
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// API holds the backend endpoint settings.
	API API `envPrefix:"API_"`

	// Storage holds the local client database settings used for draft
	// autosave and the lookup cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds credential persistence settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds network settings for the outbound REST transport.
type API struct {
	// BaseURL is the root of the food-blog REST API, including any path
	// prefix the deployment mounts the API under.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request. Zero means no
	// client-enforced timeout, which is the default for this user-driven UI.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageLimit is the number of posts requested for the home feed.
	// Env: API_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used by the client.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds credential persistence settings.
type Session struct {
	// Dir is the directory holding the durable token file. The
	// session-scoped token always lives under the OS temp directory.
	// Env: SESSION_DIR
	Dir string `env:"DIR"`
}

const (
	defaultBaseURL   = "http://localhost:5050/food_blog"
	defaultPageLimit = 6
)

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields fall back to built-in defaults: the local development API
// endpoint, no request timeout, a feed page of six posts, and files under the
// user's config directory for the database and durable token.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	if cfg.API.PageLimit <= 0 {
		cfg.API.PageLimit = defaultPageLimit
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	appDir := filepath.Join(configDir, "go-food-blog")

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(appDir, "client.db")
	}
	if cfg.Session.Dir == "" {
		cfg.Session.Dir = appDir
	}
}
