package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/mock"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/service"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/models"
)

func newTestPostsSvc(t *testing.T, ctrl *gomock.Controller) (service.PostsService, *mock.MockServerAdapter, *mock.MockDraftRepository, *session.Store) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockDrafts := mock.NewMockDraftRepository(ctrl)
	sessions := newTestSessions(t)
	svc := service.NewPostsService(mockAdapter, mockDrafts, sessions, 6, logger.Nop())
	return svc, mockAdapter, mockDrafts, sessions
}

func loginAs(t *testing.T, sessions *session.Store, userID string) {
	t.Helper()
	_, err := sessions.Login(signedToken(t, userID), false)
	require.NoError(t, err)
}

func submittableDraft() recipeform.Draft {
	return recipeform.New().
		SetField(recipeform.FieldTitle, "Pad Thai").
		SetField(recipeform.FieldSlug, "pad-thai").
		SetField(recipeform.FieldExcerpt, "Street-food classic").
		SetField(recipeform.FieldCategory, "cat-1").
		SetField(recipeform.FieldPrepTime, "15").
		SetField(recipeform.FieldCookTime, "10").
		SetField(recipeform.FieldServings, "2").
		UpdateListItem(recipeform.ListIngredients, 0, "200g rice noodles").
		UpdateListItem(recipeform.ListSteps, 0, "Soak the noodles")
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestPostsService_Submit_InvalidDraftNeverReachesNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No adapter or draft expectations: a rejected draft stays local.
	svc, _, _, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")

	outcome := svc.Submit(context.Background(), recipeform.New(), "")

	assert.Equal(t, service.SubmissionInvalid, outcome.State)
	assert.NotEmpty(t, outcome.FieldErrors)
	assert.Contains(t, outcome.FieldErrors, recipeform.FieldTitle)
}

func TestPostsService_Submit_CreateDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockDrafts, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")
	ctx := context.Background()

	mockAdapter.EXPECT().CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, payload recipeform.Payload) (models.Post, error) {
			assert.Equal(t, "user-1", payload.Value(recipeform.KeyUserID))
			assert.Equal(t, "pad-thai", payload.Value(recipeform.KeySlug))
			return models.Post{ID: "p-new", Slug: "pad-thai"}, nil
		})
	mockDrafts.EXPECT().DeleteDraft(ctx, "create").Return(nil)

	outcome := svc.Submit(ctx, submittableDraft(), "")

	assert.Equal(t, service.SubmissionSucceeded, outcome.State)
	assert.Equal(t, "pad-thai", outcome.Slug)
	assert.Empty(t, outcome.Message)
}

func TestPostsService_Submit_UpdateDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockDrafts, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")
	ctx := context.Background()

	mockAdapter.EXPECT().UpdatePost(ctx, "p-77", gomock.Any()).
		Return(models.Post{ID: "p-77", Slug: "pad-thai"}, nil)
	mockDrafts.EXPECT().DeleteDraft(ctx, "edit:p-77").Return(nil)

	outcome := svc.Submit(ctx, submittableDraft(), "p-77")

	assert.Equal(t, service.SubmissionSucceeded, outcome.State)
	assert.Equal(t, "pad-thai", outcome.Slug)
}

func TestPostsService_Submit_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestPostsSvc(t, ctrl)

	outcome := svc.Submit(context.Background(), submittableDraft(), "")

	assert.Equal(t, service.SubmissionFailed, outcome.State)
	assert.Equal(t, service.MsgSessionExpired, outcome.Message)
}

func TestPostsService_Submit_EnvelopeMessageShownVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")
	ctx := context.Background()

	rejection := &adapter.EnvelopeError{Status: 400, Message: "Slug already in use"}
	mockAdapter.EXPECT().CreatePost(ctx, gomock.Any()).Return(models.Post{}, rejection)

	outcome := svc.Submit(ctx, submittableDraft(), "")

	assert.Equal(t, service.SubmissionFailed, outcome.State)
	assert.Equal(t, "Slug already in use", outcome.Message)
}

func TestPostsService_Submit_UnauthorizedGetsSessionWording(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")
	ctx := context.Background()

	mockAdapter.EXPECT().UpdatePost(ctx, "p-1", gomock.Any()).
		Return(models.Post{}, adapter.ErrUnauthorized)

	outcome := svc.Submit(ctx, submittableDraft(), "p-1")

	assert.Equal(t, service.SubmissionFailed, outcome.State)
	assert.Equal(t, service.MsgSessionExpired, outcome.Message)
}

func TestPostsService_Submit_TransportFailureGetsNetworkWording(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")
	ctx := context.Background()

	mockAdapter.EXPECT().CreatePost(ctx, gomock.Any()).
		Return(models.Post{}, errors.New("dial tcp: connection refused"))

	outcome := svc.Submit(ctx, submittableDraft(), "")

	assert.Equal(t, service.SubmissionFailed, outcome.State)
	assert.Equal(t, service.MsgNetworkError, outcome.Message)
}

func TestPostsService_Submit_DraftDiscardFailureDoesNotFailSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockDrafts, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-1")
	ctx := context.Background()

	mockAdapter.EXPECT().CreatePost(ctx, gomock.Any()).
		Return(models.Post{Slug: "pad-thai"}, nil)
	mockDrafts.EXPECT().DeleteDraft(ctx, "create").Return(errors.New("database is locked"))

	outcome := svc.Submit(ctx, submittableDraft(), "")

	assert.Equal(t, service.SubmissionSucceeded, outcome.State)
}

// ── Reads and deletes ────────────────────────────────────────────────────────

func TestPostsService_Feed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPostsSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Post{{ID: "p-1", Title: "Pad Thai"}}
	mockAdapter.EXPECT().AllPosts(ctx, 6).Return(want, nil)

	got, err := svc.Feed(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostsService_Mine_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestPostsSvc(t, ctrl)

	_, err := svc.Mine(context.Background())
	require.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestPostsService_Mine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-42")
	ctx := context.Background()

	want := []models.Post{{ID: "p-1"}, {ID: "p-2"}}
	mockAdapter.EXPECT().OwnPosts(ctx, "user-42").Return(want, nil)

	got, err := svc.Mine(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPostsSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetPost(ctx, "pad-thai").Return(models.Post{Slug: "pad-thai"}, nil)

	post, err := svc.Get(ctx, "pad-thai")
	require.NoError(t, err)
	assert.Equal(t, "pad-thai", post.Slug)
}

func TestPostsService_Delete_SendsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessions := newTestPostsSvc(t, ctrl)
	loginAs(t, sessions, "user-42")
	ctx := context.Background()

	mockAdapter.EXPECT().DeletePost(ctx, "p-1", "user-42").Return(nil)

	require.NoError(t, svc.Delete(ctx, "p-1"))
}

func TestPostsService_Delete_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestPostsSvc(t, ctrl)

	require.ErrorIs(t, svc.Delete(context.Background(), "p-1"), service.ErrNotAuthenticated)
}

// ── Autosave slots ───────────────────────────────────────────────────────────

func TestDraftKey(t *testing.T) {
	assert.Equal(t, "create", service.DraftKey(""))
	assert.Equal(t, "edit:p-9", service.DraftKey("p-9"))
}

func TestPostsService_AutosaveResumeDiscard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockDrafts, _ := newTestPostsSvc(t, ctrl)
	ctx := context.Background()

	draft := submittableDraft()
	savedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	mockDrafts.EXPECT().SaveDraft(ctx, "edit:p-9", draft).Return(nil)
	mockDrafts.EXPECT().LoadDraft(ctx, "edit:p-9").Return(draft, savedAt, nil)
	mockDrafts.EXPECT().DeleteDraft(ctx, "edit:p-9").Return(nil)

	require.NoError(t, svc.Autosave(ctx, "p-9", draft))

	got, at, err := svc.Resume(ctx, "p-9")
	require.NoError(t, err)
	assert.Equal(t, draft.Title, got.Title)
	assert.Equal(t, savedAt, at)

	require.NoError(t, svc.DiscardAutosave(ctx, "p-9"))
}

// ── Title filtering ──────────────────────────────────────────────────────────

func TestFilterByTitle(t *testing.T) {
	posts := []models.Post{
		{ID: "p-1", Title: "Pad Thai"},
		{ID: "p-2", Title: "Green Curry"},
		{ID: "p-3", Title: "Thai Iced Tea"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps everything", "", []string{"p-1", "p-2", "p-3"}},
		{"whitespace query keeps everything", "   ", []string{"p-1", "p-2", "p-3"}},
		{"case-insensitive match", "THAI", []string{"p-1", "p-3"}},
		{"substring match", "curr", []string{"p-2"}},
		{"no match", "sushi", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.FilterByTitle(posts, tt.query)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
