package tui

import (
	"time"

	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/service"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/models"
)

// Load results carry the generation of the request that produced them; a
// response from a superseded generation is dropped without touching the
// screen.

type feedLoadedMsg struct {
	gen   uint64
	posts []models.Post
	err   error
}

type mineLoadedMsg struct {
	gen   uint64
	posts []models.Post
	err   error
}

type postLoadedMsg struct {
	gen  uint64
	post models.Post
	err  error
}

type editPostLoadedMsg struct {
	post models.Post
	err  error
}

type lookupsLoadedMsg struct {
	lookups service.FormLookups
	err     error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type loginDoneMsg struct {
	sess session.Session
	err  error
}

type registerDoneMsg struct {
	err error
}

type contactDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	outcome service.Outcome
}

type deleteDoneMsg struct {
	err error
}

// searchSettledMsg fires when the debounce window after a search keystroke
// elapses. Only the latest sequence applies the filter.
type searchSettledMsg struct {
	seq uint64
}

type autosaveTickMsg struct{}

type autosavedMsg struct {
	at  time.Time
	err error
}

type draftFoundMsg struct {
	draft   recipeform.Draft
	savedAt time.Time
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
