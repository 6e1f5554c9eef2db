package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=storage.go -destination=../mock/token_storage_mock.go -package=mock

// TokenStorage persists the raw credential for exactly one scope. The store
// owns two of these, durable and session-lifetime, and is the only
// component allowed to write either.
type TokenStorage interface {
	// Read returns the stored token, or an empty string if the scope holds
	// nothing. Absence is not an error.
	Read() (string, error)

	// Write replaces the scope's token.
	Write(token string) error

	// Clear removes the scope's token. Clearing an empty scope is a no-op.
	Clear() error
}

type fileTokenStorage struct {
	path string
}

// NewDurableTokenStorage returns a file-backed scope under dir that survives
// reboots. Used when the user asks to be remembered.
func NewDurableTokenStorage(dir string) TokenStorage {
	return &fileTokenStorage{path: filepath.Join(dir, "token")}
}

// NewScopedTokenStorage returns a file-backed scope under the OS temp
// directory. Temp files share the cleared-on-reboot lifecycle that a browser
// session store has, which is as close as a desktop client gets to
// session-lifetime storage.
func NewScopedTokenStorage() TokenStorage {
	return &fileTokenStorage{path: filepath.Join(os.TempDir(), "go-food-blog-session-token")}
}

func (f *fileTokenStorage) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *fileTokenStorage) Write(token string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (f *fileTokenStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear token file: %w", err)
	}
	return nil
}
