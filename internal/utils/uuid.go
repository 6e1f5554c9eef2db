package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered identifier for tagging outbound
// requests. Version 7 ids sort chronologically in server logs; if V7
// generation fails a random V4 id is returned instead.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
