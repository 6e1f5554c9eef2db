// Package config loads and validates the food-blog client configuration.
//
// Values are assembled from three sources merged in priority order: first
// environment variables, then command-line flags, then an optional JSON file
// whose path is itself resolved from the first two sources. Merging is
// performed with mergo (first non-zero value wins), after which built-in
// defaults fill whatever remains unset and the result is validated.
package config
