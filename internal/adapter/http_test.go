package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/foodblog/go-food-blog/internal/config"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.API{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, env map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:5050/food_blog", want: "http://localhost:5050/food_blog"},
		{in: "localhost:5050/food_blog", want: "http://localhost:5050/food_blog"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "   ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestLogin_ReturnsTokenWithoutStoringIt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/accounts/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "cook@example.com", creds.UserEmail)

		writeEnvelope(t, w, map[string]any{"status": 200, "token": "signed.jwt.here"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{UserEmail: "cook@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.here", token)
	assert.Empty(t, a.Token(), "session bookkeeping decides when the token attaches")
}

func TestLogin_EnvelopeRejectionKeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Transport-level 200, failure carried inside the envelope.
		writeEnvelope(t, w, map[string]any{"status": 400, "message": "Invalid email or password"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{UserEmail: "x@y.z", Password: "secret1"})

	var envErr *EnvelopeError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, 400, envErr.Status)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestDecodeEnvelope_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Profile(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetPost_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, map[string]any{"status": 404, "message": "Post not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetPost(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Post not found")
}

func TestAllPosts_DecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts/all", r.URL.Path)
		require.Equal(t, "6", r.URL.Query().Get("limit"))

		writeEnvelope(t, w, map[string]any{
			"status": 200,
			"results": []map[string]any{
				{"id": "p-1", "title": "Ramen", "slug": "ramen"},
				{"id": "p-2", "title": "Pho", "slug": "pho"},
			},
		})
	}))
	defer srv.Close()

	posts, err := newTestAdapter(t, srv.URL).AllPosts(context.Background(), 6)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Ramen", posts[0].Title)
}

func TestOwnPosts_SendsBearerTokenAndUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.Equal(t, "u-7", r.URL.Query().Get("userId"))
		writeEnvelope(t, w, map[string]any{"status": 200, "results": []any{}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-123")

	_, err := a.OwnPosts(context.Background(), "u-7")
	require.NoError(t, err)
}

func TestCreatePost_MultipartPreservesOrderAndRepeats(t *testing.T) {
	var gotOrder []string
	var gotIngredients []string
	var gotFile string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts/create", r.URL.Path)
		reader, err := r.MultipartReader()
		require.NoError(t, err)

		for {
			part, err := reader.NextPart()
			if err != nil {
				break
			}
			gotOrder = append(gotOrder, part.FormName())
			if part.FormName() == recipeform.KeyIngredients {
				value, _ := io.ReadAll(part)
				gotIngredients = append(gotIngredients, string(value))
			}
			if part.FileName() != "" {
				gotFile = part.FileName()
			}
		}

		writeEnvelope(t, w, map[string]any{"status": 201, "result": map[string]any{"id": "p-9", "slug": "pad-thai"}})
	}))
	defer srv.Close()

	img := filepath.Join(t.TempDir(), "hero.jpg")
	require.NoError(t, os.WriteFile(img, []byte("jpegbytes"), 0o600))

	draft := recipeform.New().
		SetField(recipeform.FieldTitle, "Pad Thai").
		SetField(recipeform.FieldSlug, "pad-thai").
		UpdateListItem(recipeform.ListIngredients, 0, "noodles").
		InsertListItem(recipeform.ListIngredients, "tamarind").
		SetImage(img)

	post, err := newTestAdapter(t, srv.URL).CreatePost(context.Background(), draft.SubmissionPayload("u-1"))

	require.NoError(t, err)
	assert.Equal(t, "pad-thai", post.Slug)
	assert.Equal(t, []string{"noodles", "tamarind"}, gotIngredients)
	assert.Equal(t, "hero.jpg", gotFile)

	// The file part rides directly after the publish date.
	for i, name := range gotOrder {
		if name == recipeform.KeyPublishDate {
			require.Greater(t, len(gotOrder), i+1)
			assert.Equal(t, recipeform.KeyFeaturedImage, gotOrder[i+1])
		}
	}
	assert.Equal(t, recipeform.KeyUserID, gotOrder[0])
}

func TestCreatePost_BareSuccessEnvelopeFallsBackToPayloadSlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, map[string]any{"status": 201})
	}))
	defer srv.Close()

	draft := recipeform.New().SetField(recipeform.FieldSlug, "ramen")
	post, err := newTestAdapter(t, srv.URL).CreatePost(context.Background(), draft.SubmissionPayload("u-1"))

	require.NoError(t, err)
	assert.Equal(t, "ramen", post.Slug)
}

func TestDeletePost_SendsOwnerInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/posts/p-3", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u-7", body["userId"])

		writeEnvelope(t, w, map[string]any{"status": 200})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	require.NoError(t, a.DeletePost(context.Background(), "p-3", "u-7"))
}

func TestLookups_DecodeResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dietary-tags", r.URL.Path)
		writeEnvelope(t, w, map[string]any{
			"status":  200,
			"results": []map[string]string{{"id": "dt-1", "name": "Vegan"}},
		})
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL).DietaryTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.LookupItem{{ID: "dt-1", Name: "Vegan"}}, items)
}

func TestContact_PostsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/contact", r.URL.Path)

		var msg models.ContactMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "Ada", msg.Name)

		writeEnvelope(t, w, map[string]any{"status": 200})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Contact(context.Background(), models.ContactMessage{
		Name: "Ada", Email: "ada@example.com", Message: "Great recipes",
	})
	require.NoError(t, err)
}

func TestCreatePost_RequiresCreatedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Success code, but the wrong one for a create.
		writeEnvelope(t, w, map[string]any{"status": 200})
	}))
	defer srv.Close()

	draft := recipeform.New().SetField(recipeform.FieldSlug, "ramen")
	_, err := newTestAdapter(t, srv.URL).CreatePost(context.Background(), draft.SubmissionPayload("u-1"))

	var envErr *EnvelopeError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, 200, envErr.Status)
}
