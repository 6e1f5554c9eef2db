package service

import (
	"context"
	"time"

	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_services_mock.go -package=mock

// AuthService is the client-side contract for account lifecycle and session
// bookkeeping. It is the only component that mutates the session store.
type AuthService interface {
	// Restore rehydrates the session from a persisted token at process
	// start and attaches it to the transport. No network call is made.
	Restore() session.Session

	// Register validates the account record client-side (including the
	// confirmation password) and creates the account on the server.
	// Validation failures surface as [*ValidationError] before any request
	// is issued.
	Register(ctx context.Context, user models.User, confirmPassword string) error

	// Login validates the credentials, exchanges them for a token, and
	// persists the token to the scope selected by remember. A token that
	// fails to decode fails the login; no session state changes.
	Login(ctx context.Context, creds models.Credentials, remember bool) (session.Session, error)

	// Logout clears both token scopes and detaches the token from the
	// transport. Idempotent.
	Logout()

	// Profile fetches the account record of the logged-in user.
	Profile(ctx context.Context) (models.User, error)

	// Session returns the current session view.
	Session() session.Session
}

// PostsService is the client-side contract for reading recipes and for the
// submission pipeline, including local draft autosave.
type PostsService interface {
	// Feed lists the public home feed page.
	Feed(ctx context.Context) ([]models.Post, error)

	// Mine lists the logged-in user's own posts, newest first.
	Mine(ctx context.Context) ([]models.Post, error)

	// Get fetches one post by id or slug.
	Get(ctx context.Context, idOrSlug string) (models.Post, error)

	// Delete removes one of the logged-in user's posts.
	Delete(ctx context.Context, postID string) error

	// Submit runs the whole submission pipeline for the draft: validation,
	// wire mapping, and the create (postID empty) or update request. The
	// returned outcome is the pipeline's terminal state; the draft itself is
	// never mutated and a failed submission keeps it intact for resubmit.
	Submit(ctx context.Context, draft recipeform.Draft, postID string) Outcome

	// Autosave persists the in-progress draft under the slot for postID.
	Autosave(ctx context.Context, postID string, draft recipeform.Draft) error

	// Resume loads the autosaved draft for postID and the instant it was
	// saved. Returns [store.ErrDraftNotFound] via the repository when no
	// autosave exists.
	Resume(ctx context.Context, postID string) (recipeform.Draft, time.Time, error)

	// DiscardAutosave drops the autosaved draft for postID.
	DiscardAutosave(ctx context.Context, postID string) error
}

// LookupsService loads the authoring lookup lists, refreshing the local cache
// on success and falling back to it when the backend is unreachable.
type LookupsService interface {
	FormLookups(ctx context.Context) (FormLookups, error)
}

// ContactService delivers messages from the public contact form.
type ContactService interface {
	// Send validates the message client-side and posts it. Validation
	// failures surface as [*ValidationError] before any request is issued.
	Send(ctx context.Context, msg models.ContactMessage) error
}

// FormLookups bundles the four lookup lists the recipe form renders.
type FormLookups struct {
	Categories  []models.LookupItem
	Cuisines    []models.LookupItem
	Tags        []models.LookupItem
	DietaryTags []models.LookupItem
}
