package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
)

// EnvelopeError is an application-level rejection reported inside a decoded
// reply envelope. Message carries the server's wording verbatim; screens show
// it unaltered.
type EnvelopeError struct {
	Status  int
	Message string
}

func (e *EnvelopeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request (status %d)", e.Status)
	}
	return e.Message
}
