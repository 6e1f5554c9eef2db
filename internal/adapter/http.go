package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/foodblog/go-food-blog/internal/config"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/utils"
	"github.com/foodblog/go-food-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.BaseURL,
// configures the underlying client with the resolved base URL and request
// timeout, and attaches a request-id header to every outbound call.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.API, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", utils.NewRequestID())
		return nil
	})

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account record to
// POST /accounts/create and returns the server-side record from the reply
// envelope. No token is issued on registration; the caller logs in next.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/accounts/create")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	created := user
	created.Password = ""
	if len(env.Result) > 0 {
		if err = json.Unmarshal(env.Result, &created); err != nil {
			return models.User{}, fmt.Errorf("decode register result: %w", err)
		}
	}
	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /accounts/login and returns the signed token from the reply envelope.
// The token is not stored on the adapter; the session layer calls SetToken
// once it has decided where the token lives.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/accounts/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", fmt.Errorf("login reply carried no token")
	}

	return env.Token, nil
}

// Profile implements [ServerAdapter]. It GETs /accounts/profile?userId= and
// decodes the account record from the reply envelope. Requires a bearer
// token.
func (h *httpServerAdapter) Profile(ctx context.Context, userID string) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("userId", userID).
		Get("/accounts/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(env.Result, &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile result: %w", err)
	}
	return user, nil
}

// OwnPosts implements [ServerAdapter]. It GETs /posts/mine?userId= and
// decodes the post list from the reply envelope. Requires a bearer token.
func (h *httpServerAdapter) OwnPosts(ctx context.Context, userID string) ([]models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("userId", userID).
		Get("/posts/mine")
	if err != nil {
		return nil, fmt.Errorf("own posts request: %w", err)
	}

	return decodePostList(resp)
}

// AllPosts implements [ServerAdapter]. It GETs /posts/all?limit= and decodes
// the public post list from the reply envelope.
func (h *httpServerAdapter) AllPosts(ctx context.Context, limit int) ([]models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/posts/all")
	if err != nil {
		return nil, fmt.Errorf("all posts request: %w", err)
	}

	return decodePostList(resp)
}

// GetPost implements [ServerAdapter]. It GETs /posts/{idOrSlug} and decodes
// the single post from the reply envelope.
func (h *httpServerAdapter) GetPost(ctx context.Context, idOrSlug string) (models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("post", idOrSlug).
		Get("/posts/{post}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = json.Unmarshal(env.Result, &post); err != nil {
		return models.Post{}, fmt.Errorf("decode post result: %w", err)
	}
	return post, nil
}

// CreatePost implements [ServerAdapter]. It encodes the payload as a
// multipart form, preserving field order and repeated keys, attaches the
// image file when one is pending, and POSTs it to POST /posts/create.
// Requires a bearer token.
func (h *httpServerAdapter) CreatePost(ctx context.Context, payload recipeform.Payload) (models.Post, error) {
	fields, err := multipartFields(payload)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetMultipartFields(fields...).
		Post("/posts/create")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}

	return decodeSubmittedPost(resp, payload, http.StatusCreated)
}

// UpdatePost implements [ServerAdapter]. Same form encoding as CreatePost,
// PUT to PUT /posts/{id}. Requires a bearer token.
func (h *httpServerAdapter) UpdatePost(ctx context.Context, postID string, payload recipeform.Payload) (models.Post, error) {
	fields, err := multipartFields(payload)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetMultipartFields(fields...).
		SetPathParam("post", postID).
		Put("/posts/{post}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}

	return decodeSubmittedPost(resp, payload, http.StatusOK)
}

// DeletePost implements [ServerAdapter]. It sends DELETE /posts/{id} with the
// owner id in the request body. Requires a bearer token.
func (h *httpServerAdapter) DeletePost(ctx context.Context, postID, userID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"userId": userID}).
		SetPathParam("post", postID).
		Delete("/posts/{post}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// Categories implements [ServerAdapter].
func (h *httpServerAdapter) Categories(ctx context.Context) ([]models.LookupItem, error) {
	return h.lookupList(ctx, "/categories")
}

// Cuisines implements [ServerAdapter].
func (h *httpServerAdapter) Cuisines(ctx context.Context) ([]models.LookupItem, error) {
	return h.lookupList(ctx, "/cuisines")
}

// Tags implements [ServerAdapter].
func (h *httpServerAdapter) Tags(ctx context.Context) ([]models.LookupItem, error) {
	return h.lookupList(ctx, "/tags")
}

// DietaryTags implements [ServerAdapter].
func (h *httpServerAdapter) DietaryTags(ctx context.Context) ([]models.LookupItem, error) {
	return h.lookupList(ctx, "/dietary-tags")
}

// Contact implements [ServerAdapter]. It POSTs the message to POST /contact.
// No token is required.
func (h *httpServerAdapter) Contact(ctx context.Context, msg models.ContactMessage) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/contact")
	if err != nil {
		return fmt.Errorf("contact request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

func (h *httpServerAdapter) lookupList(ctx context.Context, path string) ([]models.LookupItem, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("lookup request %s: %w", path, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var items []models.LookupItem
	if err = json.Unmarshal(env.Results, &items); err != nil {
		return nil, fmt.Errorf("decode lookup results %s: %w", path, err)
	}
	return items, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeEnvelope unwraps the uniform reply envelope. The backend may answer
// HTTP 200 while the envelope status carries the real outcome, so the
// envelope status wins whenever a body decodes.
func decodeEnvelope(resp *resty.Response) (models.Envelope, error) {
	if resp.StatusCode() == http.StatusUnauthorized {
		return models.Envelope{}, ErrUnauthorized
	}

	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			body := strings.TrimSpace(string(resp.Body()))
			if body == "" {
				body = http.StatusText(resp.StatusCode())
			}
			return models.Envelope{}, fmt.Errorf("http %d: %s", resp.StatusCode(), body)
		}
		return models.Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}

	switch {
	case env.Status == http.StatusUnauthorized:
		return env, ErrUnauthorized
	case env.Status == http.StatusNotFound:
		return env, fmt.Errorf("%w: %s", ErrNotFound, env.Message)
	case !env.OK():
		return env, &EnvelopeError{Status: env.Status, Message: env.Message}
	}

	return env, nil
}

func decodePostList(resp *resty.Response) ([]models.Post, error) {
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(env.Results, &posts); err != nil {
		return nil, fmt.Errorf("decode post list: %w", err)
	}
	return posts, nil
}

// decodeSubmittedPost reads the saved post back from a create/update reply.
// Creation answers 201 and update 200; the other success code counts as a
// rejection. Some backend deployments answer with a bare success envelope;
// the slug from the submitted payload then identifies the post for
// navigation.
func decodeSubmittedPost(resp *resty.Response, payload recipeform.Payload, want int) (models.Post, error) {
	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Post{}, err
	}
	if env.Status != want {
		return models.Post{}, &EnvelopeError{Status: env.Status, Message: env.Message}
	}

	if len(env.Result) == 0 {
		return models.Post{Slug: payload.Value(recipeform.KeySlug)}, nil
	}

	var post models.Post
	if err = json.Unmarshal(env.Result, &post); err != nil {
		return models.Post{}, fmt.Errorf("decode submitted post: %w", err)
	}
	if post.Slug == "" {
		post.Slug = payload.Value(recipeform.KeySlug)
	}
	return post, nil
}

// multipartFields lays the payload out as multipart form fields in payload
// order. The image file slots in directly after the publish date, keeping
// the field sequence the backend's upload middleware expects.
func multipartFields(p recipeform.Payload) ([]*resty.MultipartField, error) {
	fields := make([]*resty.MultipartField, 0, len(p.Fields)+1)

	for _, f := range p.Fields {
		fields = append(fields, &resty.MultipartField{
			Param:  f.Key,
			Reader: strings.NewReader(f.Value),
		})

		if f.Key == recipeform.KeyPublishDate && p.ImagePath != "" {
			data, err := os.ReadFile(p.ImagePath)
			if err != nil {
				return nil, fmt.Errorf("read featured image: %w", err)
			}
			fields = append(fields, &resty.MultipartField{
				Param:       recipeform.KeyFeaturedImage,
				FileName:    p.ImageName,
				ContentType: mime.TypeByExtension(filepath.Ext(p.ImageName)),
				Reader:      bytes.NewReader(data),
			})
		}
	}

	return fields, nil
}
