package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestID(t *testing.T) {
	first := NewRequestID()
	second := NewRequestID()

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", first, err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
