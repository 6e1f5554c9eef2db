// Package adapter provides transport-layer abstractions for communicating with
// the food-blog server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Every endpoint replies with the uniform [models.Envelope]; decodeEnvelope
// unwraps it exactly once at this boundary. A reply whose envelope status is
// outside the success set surfaces as [EnvelopeError] carrying the server's
// message verbatim, so callers can use [errors.As] to distinguish an
// application-level rejection from a transport failure.
package adapter

import (
	"context"

	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the food-blog
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the error values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string detaches it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Register creates a new account from the provided user record. Returns
	// the server-side account on success.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a signed session token. The token is
	// returned to the caller and NOT stored on the adapter; session
	// bookkeeping decides whether and where it persists before calling
	// SetToken.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Profile fetches the account record for userID.
	Profile(ctx context.Context, userID string) (models.User, error)

	// OwnPosts lists every post authored by userID, newest first.
	OwnPosts(ctx context.Context, userID string) ([]models.Post, error)

	// AllPosts lists up to limit published posts for the public feed.
	AllPosts(ctx context.Context, limit int) ([]models.Post, error)

	// GetPost fetches a single post by its id or slug.
	GetPost(ctx context.Context, idOrSlug string) (models.Post, error)

	// CreatePost submits a new recipe as a multipart form, attaching the
	// image file named by the payload when one is pending.
	CreatePost(ctx context.Context, payload recipeform.Payload) (models.Post, error)

	// UpdatePost overwrites the post identified by postID with the payload,
	// using the same multipart form as CreatePost.
	UpdatePost(ctx context.Context, postID string, payload recipeform.Payload) (models.Post, error)

	// DeletePost removes the post identified by postID. The backend checks
	// ownership against userID carried in the request body.
	DeletePost(ctx context.Context, postID, userID string) error

	// Categories lists the recipe categories available for authoring.
	Categories(ctx context.Context) ([]models.LookupItem, error)

	// Cuisines lists the cuisines available for authoring.
	Cuisines(ctx context.Context) ([]models.LookupItem, error)

	// Tags lists the free-form tags available for authoring.
	Tags(ctx context.Context) ([]models.LookupItem, error)

	// DietaryTags lists the dietary tags available for authoring.
	DietaryTags(ctx context.Context) ([]models.LookupItem, error)

	// Contact delivers a message from the public contact form.
	Contact(ctx context.Context, msg models.ContactMessage) error
}
