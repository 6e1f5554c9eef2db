package store

import "errors"

var ErrDraftNotFound = errors.New("draft not found")
