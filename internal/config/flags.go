package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-api-base API base URL including any deployment path prefix
//	-request-timeout request timeout (e.g., "30s", "1m"; 0 disables)
//	-limit number of posts requested for the home feed
//	-d local database path
//	-session-dir directory holding the durable token file
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var apiBase string
	var requestTimeout time.Duration
	var pageLimit int
	var databaseDSN string
	var sessionDir string
	var jsonConfigPath string

	flag.StringVar(&apiBase, "api-base", "", "API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&pageLimit, "limit", 0, "Home feed page limit")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&sessionDir, "session-dir", "", "Durable token directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		API: API{
			BaseURL:        apiBase,
			RequestTimeout: requestTimeout,
			PageLimit:      pageLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Session: Session{
			Dir: sessionDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
