package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"subject": subject,
	}).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return token
}

func newTestStore(t *testing.T) (*Store, *fileTokenStorage, *fileTokenStorage) {
	t.Helper()
	dir := t.TempDir()
	durable := &fileTokenStorage{path: filepath.Join(dir, "durable", "token")}
	scoped := &fileTokenStorage{path: filepath.Join(dir, "scoped", "token")}
	return NewStore(durable, scoped, logger.Nop()), durable, scoped
}

func TestLogin_RememberPersistsDurably(t *testing.T) {
	store, durable, scoped := newTestStore(t)
	require.NoError(t, scoped.Write("stale-token"))

	token := signedToken(t, "user-42")
	sess, err := store.Login(token, true)
	require.NoError(t, err)

	assert.True(t, sess.Authenticated)
	assert.Equal(t, "user-42", sess.UserID)
	assert.Equal(t, token, sess.Token)

	stored, err := durable.Read()
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	// The opposite scope must be cleared so a stale duplicate cannot
	// shadow the fresh login.
	stale, err := scoped.Read()
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestLogin_NoRememberUsesSessionScope(t *testing.T) {
	store, durable, scoped := newTestStore(t)
	require.NoError(t, durable.Write("stale-token"))

	token := signedToken(t, "user-7")
	_, err := store.Login(token, false)
	require.NoError(t, err)

	stored, err := scoped.Read()
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	stale, err := durable.Read()
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestLogin_UndecodableTokenFailsWithoutWrites(t *testing.T) {
	store, durable, scoped := newTestStore(t)

	_, err := store.Login("not-a-jwt", true)
	require.ErrorIs(t, err, ErrTokenDecode)

	assert.False(t, store.Current().Authenticated)
	assert.NoFileExists(t, durable.path)
	assert.NoFileExists(t, scoped.path)
}

func TestLogin_MissingSubjectClaimFails(t *testing.T) {
	store, _, _ := newTestStore(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "standard-claim-only",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = store.Login(token, false)
	require.ErrorIs(t, err, ErrTokenDecode)
}

func TestRestore_PrefersDurableScope(t *testing.T) {
	store, durable, scoped := newTestStore(t)
	durableToken := signedToken(t, "durable-user")
	require.NoError(t, durable.Write(durableToken))
	require.NoError(t, scoped.Write(signedToken(t, "scoped-user")))

	sess := store.Restore()
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "durable-user", sess.UserID)
	assert.Equal(t, durableToken, sess.Token)
}

func TestRestore_FallsBackToSessionScope(t *testing.T) {
	store, _, scoped := newTestStore(t)
	require.NoError(t, scoped.Write(signedToken(t, "scoped-user")))

	sess := store.Restore()
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "scoped-user", sess.UserID)
}

func TestRestore_NothingStored(t *testing.T) {
	store, _, _ := newTestStore(t)

	sess := store.Restore()
	assert.False(t, sess.Authenticated)
	assert.Empty(t, sess.UserID)
}

func TestRestore_UndecodableTokenClearsBothScopes(t *testing.T) {
	store, durable, scoped := newTestStore(t)
	require.NoError(t, durable.Write("garbage"))
	require.NoError(t, scoped.Write("garbage"))

	sess := store.Restore()
	assert.False(t, sess.Authenticated)

	assert.NoFileExists(t, durable.path)
	assert.NoFileExists(t, scoped.path)
}

func TestLogout_Idempotent(t *testing.T) {
	store, durable, _ := newTestStore(t)
	_, err := store.Login(signedToken(t, "user-1"), true)
	require.NoError(t, err)

	store.Logout()
	assert.False(t, store.Current().Authenticated)
	assert.NoFileExists(t, durable.path)

	// Second logout must not error or resurrect anything.
	store.Logout()
	assert.False(t, store.Current().Authenticated)
}

func TestFileTokenStorage_ReadMissingIsNotAnError(t *testing.T) {
	s := &fileTokenStorage{path: filepath.Join(t.TempDir(), "token")}

	token, err := s.Read()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStorage_WriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "token")
	s := &fileTokenStorage{path: path}

	require.NoError(t, s.Write("tok"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", string(data))
}
