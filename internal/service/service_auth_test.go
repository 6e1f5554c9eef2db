package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/mock"
	"github.com/foodblog/go-food-blog/internal/service"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/models"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"subject": subject,
	}).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return token
}

// newTestSessions builds a session store over two throwaway file scopes so
// service tests exercise the real credential lifecycle.
func newTestSessions(t *testing.T) *session.Store {
	t.Helper()
	dir := t.TempDir()
	durable := session.NewDurableTokenStorage(filepath.Join(dir, "durable"))
	scoped := session.NewDurableTokenStorage(filepath.Join(dir, "scoped"))
	return session.NewStore(durable, scoped, logger.Nop())
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (service.AuthService, *mock.MockServerAdapter, *session.Store) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := newTestSessions(t)
	return service.NewAuthService(mockAdapter, sessions, logger.Nop()), mockAdapter, sessions
}

func validAccount() models.User {
	return models.User{
		UserName:  "padthaifan",
		FirstName: "Nok",
		LastName:  "Suwan",
		Email:     "nok@example.com",
		Password:  "secret-pass",
		Address:   "12 Market Lane",
		MobileNo:  "0812345678",
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{UserEmail: "nok@example.com", Password: "secret-pass"}
	token := signedToken(t, "user-42")

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(token, nil),
		mockAdapter.EXPECT().SetToken(token),
	)

	sess, err := svc.Login(ctx, creds, true)
	require.NoError(t, err)

	assert.True(t, sess.Authenticated)
	assert.Equal(t, "user-42", sess.UserID)
	assert.Equal(t, sess, sessions.Current())
}

func TestAuthService_Login_ValidationNeverReachesTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a rejected form must not produce a request.
	svc, _, sessions := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{UserEmail: "not-an-email", Password: "123"}, false)

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Enter a valid email address", verr.Fields["userEmail"])
	assert.Equal(t, "Password must be at least 6 characters", verr.Fields["password"])
	assert.False(t, sessions.Current().Authenticated)
}

func TestAuthService_Login_UndecodableTokenLeavesTransportUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{UserEmail: "nok@example.com", Password: "secret-pass"}

	// The server answers 200 but with a garbage token. SetToken must not be
	// called: the transport keeps whatever credential it had before.
	mockAdapter.EXPECT().Login(ctx, creds).Return("not-a-jwt", nil)

	_, err := svc.Login(ctx, creds, true)
	require.ErrorIs(t, err, session.ErrTokenDecode)
	assert.False(t, sessions.Current().Authenticated)
}

func TestAuthService_Login_ServerRejectionPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{UserEmail: "nok@example.com", Password: "wrong-pass"}
	rejection := &adapter.EnvelopeError{Status: 400, Message: "Invalid email or password"}

	mockAdapter.EXPECT().Login(ctx, creds).Return("", rejection)

	_, err := svc.Login(ctx, creds, false)

	var envErr *adapter.EnvelopeError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "Invalid email or password", envErr.Error())
	assert.False(t, sessions.Current().Authenticated)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := validAccount()
	mockAdapter.EXPECT().Register(ctx, user).Return(user, nil)

	require.NoError(t, svc.Register(ctx, user, user.Password))
}

func TestAuthService_Register_FieldMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Register(context.Background(), models.User{Email: "nope", MobileNo: "abc"}, "")

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Username is required", verr.Fields["userName"])
	assert.Equal(t, "First name is required", verr.Fields["firstName"])
	assert.Equal(t, "Last name is required", verr.Fields["lastName"])
	assert.Equal(t, "Enter a valid email address", verr.Fields["email"])
	assert.Equal(t, "Password must be at least 6 characters", verr.Fields["password"])
	assert.Equal(t, "Address is required", verr.Fields["address"])
	assert.Equal(t, "Mobile number must be 7 to 15 digits", verr.Fields["mobileNo"])
}

func TestAuthService_Register_EmptyPasswordRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	user := validAccount()
	user.Password = ""

	err := svc.Register(context.Background(), user, "")

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be at least 6 characters", verr.Fields["password"])
}

func TestAuthService_Register_ConfirmMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Register(context.Background(), validAccount(), "different-pass")

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Passwords do not match", verr.Fields["confirmPassword"])
	assert.Len(t, verr.Fields, 1)
}

func TestAuthService_Register_ServerRejectionPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := validAccount()
	rejection := errors.New("dial tcp: connection refused")
	mockAdapter.EXPECT().Register(ctx, user).Return(models.User{}, rejection)

	err := svc.Register(ctx, user, user.Password)
	require.ErrorIs(t, err, rejection)
}

// ── Restore / Logout / Profile ───────────────────────────────────────────────

func TestAuthService_Restore_AttachesTokenToTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := newTestSessions(t)
	token := signedToken(t, "user-9")
	_, err := sessions.Login(token, true)
	require.NoError(t, err)

	svc := service.NewAuthService(mockAdapter, sessions, logger.Nop())
	mockAdapter.EXPECT().SetToken(token)

	sess := svc.Restore()
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "user-9", sess.UserID)
}

func TestAuthService_Restore_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// SetToken must not be called for a logged-out restore.
	svc, _, _ := newTestAuthSvc(t, ctrl)

	sess := svc.Restore()
	assert.False(t, sess.Authenticated)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	_, err := sessions.Login(signedToken(t, "user-1"), false)
	require.NoError(t, err)

	mockAdapter.EXPECT().SetToken("")

	svc.Logout()
	assert.False(t, sessions.Current().Authenticated)
}

func TestAuthService_Profile_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Profile(context.Background())
	require.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := sessions.Login(signedToken(t, "user-42"), false)
	require.NoError(t, err)

	want := validAccount()
	mockAdapter.EXPECT().Profile(ctx, "user-42").Return(want, nil)

	got, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
