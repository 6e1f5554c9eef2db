package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/internal/store"
	"github.com/foodblog/go-food-blog/models"
)

// SubmissionState is the lifecycle of one submission attempt.
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionValidating
	SubmissionInvalid
	SubmissionSubmitting
	SubmissionSucceeded
	SubmissionFailed
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionValidating:
		return "validating"
	case SubmissionInvalid:
		return "invalid"
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSucceeded:
		return "succeeded"
	case SubmissionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of one submission attempt. FieldErrors is set
// only for Invalid, Message only for Failed, Slug only for Succeeded.
type Outcome struct {
	State       SubmissionState
	FieldErrors map[string]string
	Message     string
	Slug        string
}

type postsService struct {
	adapter  adapter.ServerAdapter
	drafts   store.DraftRepository
	sessions *session.Store
	feedSize int
	logger   *logger.Logger
}

func NewPostsService(serverAdapter adapter.ServerAdapter, drafts store.DraftRepository, sessions *session.Store, feedSize int, logger *logger.Logger) PostsService {
	return &postsService{
		adapter:  serverAdapter,
		drafts:   drafts,
		sessions: sessions,
		feedSize: feedSize,
		logger:   logger,
	}
}

// Feed implements [PostsService].
func (p *postsService) Feed(ctx context.Context) ([]models.Post, error) {
	return p.adapter.AllPosts(ctx, p.feedSize)
}

// Mine implements [PostsService].
func (p *postsService) Mine(ctx context.Context) ([]models.Post, error) {
	sess := p.sessions.Current()
	if !sess.Authenticated {
		return nil, ErrNotAuthenticated
	}

	return p.adapter.OwnPosts(ctx, sess.UserID)
}

// Get implements [PostsService].
func (p *postsService) Get(ctx context.Context, idOrSlug string) (models.Post, error) {
	return p.adapter.GetPost(ctx, idOrSlug)
}

// Delete implements [PostsService].
func (p *postsService) Delete(ctx context.Context, postID string) error {
	sess := p.sessions.Current()
	if !sess.Authenticated {
		return ErrNotAuthenticated
	}

	return p.adapter.DeletePost(ctx, postID, sess.UserID)
}

// Submit implements [PostsService]. Validation errors never reach the
// network; a validated draft is mapped to its wire form exactly once and
// dispatched without automatic retry. Success discards the autosaved draft
// for the slot.
func (p *postsService) Submit(ctx context.Context, draft recipeform.Draft, postID string) Outcome {
	if fieldErrs := draft.Validate(); len(fieldErrs) > 0 {
		return Outcome{State: SubmissionInvalid, FieldErrors: fieldErrs}
	}

	sess := p.sessions.Current()
	if !sess.Authenticated {
		return Outcome{State: SubmissionFailed, Message: MsgSessionExpired}
	}

	payload := draft.SubmissionPayload(sess.UserID)

	var (
		post models.Post
		err  error
	)
	if postID == "" {
		post, err = p.adapter.CreatePost(ctx, payload)
	} else {
		post, err = p.adapter.UpdatePost(ctx, postID, payload)
	}
	if err != nil {
		p.logger.Err(err).
			Str("func", "postsService.Submit").
			Str("post_id", postID).
			Msg("submission rejected")
		return Outcome{State: SubmissionFailed, Message: failureMessage(err)}
	}

	if err := p.drafts.DeleteDraft(ctx, DraftKey(postID)); err != nil {
		p.logger.Err(err).Str("func", "postsService.Submit").Msg("discard autosaved draft")
	}

	return Outcome{State: SubmissionSucceeded, Slug: post.Slug}
}

// Autosave implements [PostsService].
func (p *postsService) Autosave(ctx context.Context, postID string, draft recipeform.Draft) error {
	return p.drafts.SaveDraft(ctx, DraftKey(postID), draft)
}

// Resume implements [PostsService].
func (p *postsService) Resume(ctx context.Context, postID string) (recipeform.Draft, time.Time, error) {
	return p.drafts.LoadDraft(ctx, DraftKey(postID))
}

// DiscardAutosave implements [PostsService].
func (p *postsService) DiscardAutosave(ctx context.Context, postID string) error {
	return p.drafts.DeleteDraft(ctx, DraftKey(postID))
}

// DraftKey names the autosave slot: one shared slot for the create form, one
// per post being edited.
func DraftKey(postID string) string {
	if postID == "" {
		return "create"
	}
	return "edit:" + postID
}

// FilterByTitle narrows posts to those whose title contains query,
// case-insensitively. It operates purely on the already-fetched page; typing
// a search never triggers a request.
func FilterByTitle(posts []models.Post, query string) []models.Post {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return posts
	}

	var out []models.Post
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), query) {
			out = append(out, post)
		}
	}
	return out
}

// failureMessage picks the user-facing wording for a failed submission: the
// server's envelope message verbatim when one exists, the session-expired
// wording on an auth rejection, the generic network wording otherwise.
func failureMessage(err error) string {
	var envErr *adapter.EnvelopeError
	if errors.As(err, &envErr) {
		return envErr.Error()
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		return MsgSessionExpired
	}
	return MsgNetworkError
}
