package tui

import (
	"errors"
	"strings"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/service"
)

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// humanize picks the user-facing wording for a failed call: the server's own
// message when the envelope carried one, the session wording on an auth
// rejection, the generic network wording for everything else.
func humanize(err error) string {
	var envErr *adapter.EnvelopeError
	if errors.As(err, &envErr) {
		return envErr.Error()
	}
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, service.ErrNotAuthenticated) {
		return service.MsgSessionExpired
	}
	if errors.Is(err, adapter.ErrNotFound) {
		return "Recipe not found. It may have been removed."
	}
	return service.MsgNetworkError
}
