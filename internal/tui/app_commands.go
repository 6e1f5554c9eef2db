package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/models"
)

// Commands close over the context and service handles, never over the model,
// so a command outliving a screen change cannot touch stale state. Load
// results carry the generation issued at dispatch time.

func (m appModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	gen := m.feedGuard.Next()
	return func() tea.Msg {
		items, err := posts.Feed(ctx)
		return feedLoadedMsg{gen: gen, posts: items, err: err}
	}
}

func (m appModel) cmdLoadMine() tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	gen := m.mineGuard.Next()
	return func() tea.Msg {
		items, err := posts.Mine(ctx)
		return mineLoadedMsg{gen: gen, posts: items, err: err}
	}
}

func (m appModel) cmdLoadPost(idOrSlug string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	gen := m.postGuard.Next()
	return func() tea.Msg {
		post, err := posts.Get(ctx, idOrSlug)
		return postLoadedMsg{gen: gen, post: post, err: err}
	}
}

func (m appModel) cmdLoadForEdit(idOrSlug string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	return func() tea.Msg {
		post, err := posts.Get(ctx, idOrSlug)
		return editPostLoadedMsg{post: post, err: err}
	}
}

func (m appModel) cmdLoadLookups() tea.Cmd {
	ctx := m.ctx
	lookups := m.services.LookupsService
	return func() tea.Msg {
		got, err := lookups.FormLookups(ctx)
		return lookupsLoadedMsg{lookups: got, err: err}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Profile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogin(creds models.Credentials, remember bool) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		sess, err := auth.Login(ctx, creds, remember)
		return loginDoneMsg{sess: sess, err: err}
	}
}

func (m appModel) cmdRegister(user models.User, confirmPassword string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return registerDoneMsg{err: auth.Register(ctx, user, confirmPassword)}
	}
}

func (m appModel) cmdContact(msg models.ContactMessage) tea.Cmd {
	ctx := m.ctx
	contact := m.services.ContactService
	return func() tea.Msg {
		return contactDoneMsg{err: contact.Send(ctx, msg)}
	}
}

func (m appModel) cmdSubmit(draft recipeform.Draft, postID string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	return func() tea.Msg {
		return submitDoneMsg{outcome: posts.Submit(ctx, draft, postID)}
	}
}

func (m appModel) cmdDeletePost(postID string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	return func() tea.Msg {
		return deleteDoneMsg{err: posts.Delete(ctx, postID)}
	}
}

func (m appModel) cmdAutosave(draft recipeform.Draft) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	postID := m.form.postID
	return func() tea.Msg {
		err := posts.Autosave(ctx, postID, draft)
		return autosavedMsg{at: time.Now(), err: err}
	}
}

func (m appModel) cmdFindDraft(postID string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	return func() tea.Msg {
		draft, savedAt, err := posts.Resume(ctx, postID)
		return draftFoundMsg{draft: draft, savedAt: savedAt, err: err}
	}
}

func (m appModel) cmdDiscardDraft(postID string) tea.Cmd {
	ctx := m.ctx
	posts := m.services.PostsService
	return func() tea.Msg {
		// Discarding an absent draft is a no-op; nothing to report.
		_ = posts.DiscardAutosave(ctx, postID)
		return nil
	}
}

func cmdSearchSettle(d *fetch.Debouncer, seq uint64) tea.Cmd {
	return tea.Tick(d.Delay(), func(time.Time) tea.Msg {
		return searchSettledMsg{seq: seq}
	})
}

func cmdAutosaveTick() tea.Cmd {
	return tea.Tick(autosaveEvery, func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
