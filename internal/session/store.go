package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the derived read-only view over the current credential. Every
// component outside this package reads it and never mutates it.
type Session struct {
	Token         string
	UserID        string
	Authenticated bool
}

// Store owns the credential lifecycle: restore at startup, login and logout
// as the only mutators. It holds the two storage scopes and guarantees they
// are never populated at the same time.
type Store struct {
	durable TokenStorage
	scoped  TokenStorage
	logger  *logger.Logger

	mu   sync.RWMutex
	sess Session
}

// NewStore wires a Store to its two storage scopes.
func NewStore(durable, scoped TokenStorage, log *logger.Logger) *Store {
	return &Store{durable: durable, scoped: scoped, logger: log}
}

// Restore loads a persisted token at process start, durable scope first.
// A token that fails to decode is treated as absent: both scopes are cleared
// and the session stays logged out. No network call is made; client-side
// trust is purely structural.
func (s *Store) Restore() Session {
	token, err := s.durable.Read()
	if err != nil {
		s.logger.Err(err).Msg("read durable token scope")
	}
	if token == "" {
		token, err = s.scoped.Read()
		if err != nil {
			s.logger.Err(err).Msg("read session token scope")
		}
	}
	if token == "" {
		return s.Current()
	}

	userID, err := decodeSubject(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("stored token failed to decode, clearing both scopes")
		s.clearScopes()
		return s.Current()
	}

	s.mu.Lock()
	s.sess = Session{Token: token, UserID: userID, Authenticated: true}
	s.mu.Unlock()

	return s.Current()
}

// Login decodes the subject from token and persists the token to the durable
// scope when remember is set, else to the session scope, clearing the other
// scope either way. A token that fails to decode fails the whole operation:
// no storage is touched and the session is left as it was.
func (s *Store) Login(token string, remember bool) (Session, error) {
	userID, err := decodeSubject(token)
	if err != nil {
		return s.Current(), fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	target, other := s.scoped, s.durable
	if remember {
		target, other = s.durable, s.scoped
	}
	if err := target.Write(token); err != nil {
		return s.Current(), fmt.Errorf("persist token: %w", err)
	}
	if err := other.Clear(); err != nil {
		s.logger.Err(err).Msg("clear opposite token scope")
	}

	s.mu.Lock()
	s.sess = Session{Token: token, UserID: userID, Authenticated: true}
	s.mu.Unlock()

	return s.Current(), nil
}

// Logout clears both storage scopes and resets the session. Idempotent.
func (s *Store) Logout() {
	s.clearScopes()

	s.mu.Lock()
	s.sess = Session{}
	s.mu.Unlock()
}

// Current returns the session view as of now.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

func (s *Store) clearScopes() {
	if err := s.durable.Clear(); err != nil {
		s.logger.Err(err).Msg("clear durable token scope")
	}
	if err := s.scoped.Clear(); err != nil {
		s.logger.Err(err).Msg("clear session token scope")
	}
}

// decodeSubject extracts the user id from the token's payload without
// verifying signature or expiry. The backend re-validates on every authorized
// call; the client trusts any structurally sound token, mirroring the issuing
// server's custom "subject" claim.
func decodeSubject(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	subject, ok := claims["subject"].(string)
	if !ok || subject == "" {
		return "", errors.New("missing subject claim")
	}

	return subject, nil
}
