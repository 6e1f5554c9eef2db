package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Messages surfaced to the user for failures that carry no server wording.
const (
	MsgNetworkError   = "Network error. Please check your connection."
	MsgSessionExpired = "Your session has expired. Please log in again."
)

// ValidationError reports client-side validation failures as a field-to-
// message map, keeping every message tied to the input it belongs to.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
