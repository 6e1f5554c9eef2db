package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/models"
)

type authService struct {
	adapter  adapter.ServerAdapter
	sessions *session.Store
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAuthService(serverAdapter adapter.ServerAdapter, sessions *session.Store, logger *logger.Logger) AuthService {
	return &authService{
		adapter:  serverAdapter,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// Restore implements [AuthService]. A restored token attaches to the
// transport so authorized calls work immediately after startup.
func (a *authService) Restore() session.Session {
	sess := a.sessions.Restore()
	if sess.Authenticated {
		a.adapter.SetToken(sess.Token)
	}
	return sess
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, user models.User, confirmPassword string) error {
	fields := map[string]string{}

	if err := a.validate.Struct(user); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate account: %w", err)
		}
		for _, fe := range verrs {
			fields[registerField(fe)] = registerMessage(fe)
		}
	}
	// The account shape keeps Password optional so the profile view can
	// reuse it; registration itself always needs one.
	if user.Password == "" {
		fields["password"] = "Password must be at least 6 characters"
	}
	if user.Password != confirmPassword {
		fields["confirmPassword"] = "Passwords do not match"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if _, err := a.adapter.Register(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "authService.Register").Msg("registration rejected")
		return err
	}

	return nil
}

// Login implements [AuthService]. The adapter only attaches the token after
// the session store has accepted and persisted it, so a failed login leaves
// both the transport and storage untouched.
func (a *authService) Login(ctx context.Context, creds models.Credentials, remember bool) (session.Session, error) {
	if err := a.validate.Struct(creds); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return a.sessions.Current(), fmt.Errorf("validate credentials: %w", err)
		}

		fields := map[string]string{}
		for _, fe := range verrs {
			fields[credentialsField(fe)] = credentialsMessage(fe)
		}
		return a.sessions.Current(), &ValidationError{Fields: fields}
	}

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return a.sessions.Current(), err
	}

	sess, err := a.sessions.Login(token, remember)
	if err != nil {
		return sess, err
	}

	a.adapter.SetToken(sess.Token)
	return sess, nil
}

// Logout implements [AuthService].
func (a *authService) Logout() {
	a.sessions.Logout()
	a.adapter.SetToken("")
}

// Profile implements [AuthService].
func (a *authService) Profile(ctx context.Context) (models.User, error) {
	sess := a.sessions.Current()
	if !sess.Authenticated {
		return models.User{}, ErrNotAuthenticated
	}

	return a.adapter.Profile(ctx, sess.UserID)
}

// Session implements [AuthService].
func (a *authService) Session() session.Session {
	return a.sessions.Current()
}

func registerField(fe validator.FieldError) string {
	switch fe.Field() {
	case "UserName":
		return "userName"
	case "FirstName":
		return "firstName"
	case "LastName":
		return "lastName"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Address":
		return "address"
	case "MobileNo":
		return "mobileNo"
	default:
		return fe.Field()
	}
}

func registerMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "UserName":
		return "Username is required"
	case "FirstName":
		return "First name is required"
	case "LastName":
		return "Last name is required"
	case "Email":
		if fe.Tag() == "email" {
			return "Enter a valid email address"
		}
		return "Email is required"
	case "Password":
		return "Password must be at least 6 characters"
	case "Address":
		return "Address is required"
	case "MobileNo":
		return "Mobile number must be 7 to 15 digits"
	default:
		return "Invalid value"
	}
}

func credentialsField(fe validator.FieldError) string {
	if fe.Field() == "UserEmail" {
		return "userEmail"
	}
	return "password"
}

func credentialsMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "UserEmail":
		if fe.Tag() == "email" {
			return "Enter a valid email address"
		}
		return "Email is required"
	default:
		return "Password must be at least 6 characters"
	}
}
