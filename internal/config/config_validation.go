package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [ClientConfig] satisfies all client
// invariants before it is used at startup. Defaults are applied beforehand,
// so empty fields here mean the user supplied something unusable.
func (cfg *ClientConfig) validate() error {
	raw := strings.TrimSpace(cfg.API.BaseURL)
	if raw == "" {
		return ErrInvalidAPIConfigs
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAPIConfigs
	}

	if cfg.API.RequestTimeout < 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.Dir == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}
