package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/internal/service"
	"github.com/foodblog/go-food-blog/internal/session"
	"github.com/foodblog/go-food-blog/models"
)

type screen int

const (
	screenHome screen = iota
	screenLogin
	screenRegister
	screenDashboard
	screenMyPosts
	screenDetail
	screenForm
	screenProfile
	screenContact
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	apiBase  string

	currentScreen screen
	// detailFrom is where esc returns to from the detail screen.
	detailFrom screen
	// afterLogin is the guarded screen a redirect came from; a successful
	// login lands there instead of home.
	afterLogin screen

	home      homeModel
	login     loginModel
	register  registerModel
	dashboard dashboardModel
	myPosts   myPostsModel
	detail    detailModel
	form      formModel
	profile   profileModel
	contact   contactModel

	feedGuard      *fetch.Guard
	mineGuard      *fetch.Guard
	postGuard      *fetch.Guard
	searchDebounce *fetch.Debouncer

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	// pendingDelete is the post id awaiting delete confirmation.
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, apiBase string) appModel {
	return appModel{
		ctx:            ctx,
		services:       services,
		apiBase:        apiBase,
		currentScreen:  screenHome,
		afterLogin:     screenHome,
		home:           newHomeModel(),
		login:          newLoginModel(),
		register:       newRegisterModel(),
		dashboard:      newDashboardModel(),
		myPosts:        newMyPostsModel(),
		detail:         newDetailModel(),
		profile:        newProfileModel(),
		contact:        newContactModel(),
		feedGuard:      &fetch.Guard{},
		mineGuard:      &fetch.Guard{},
		postGuard:      &fetch.Guard{},
		searchDebounce: fetch.NewDebouncer(fetch.DefaultDebounce),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.home.spinner.Tick, m.cmdLoadFeed())
}

func (m appModel) loggedIn() bool {
	return m.services.AuthService.Session().Authenticated
}

// guardTo navigates to a view that requires authentication. A denied session
// is redirected to the login screen; the redirect replaces the target, so esc
// from login goes home rather than back to the guarded view.
func (m appModel) guardTo(target screen) (appModel, tea.Cmd) {
	decision := session.Decide(m.services.AuthService.Session(), session.RequireAuth)
	if !decision.Allow {
		m.afterLogin = target
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		return m, nil
	}

	m.currentScreen = target
	switch target {
	case screenDashboard:
		m.dashboard.state = fetch.StateLoading
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadMine())
	case screenMyPosts:
		m.myPosts.state = fetch.StateLoading
		return m, tea.Batch(m.myPosts.spinner.Tick, m.cmdLoadMine())
	case screenProfile:
		m.profile.state = fetch.StateLoading
		return m, tea.Batch(m.profile.spinner.Tick, m.cmdLoadProfile())
	case screenForm:
		return m, m.openForm("", models.Post{})
	}
	return m, nil
}

// openForm prepares the authoring screen. For the edit flow the post must
// already be loaded; create starts blank. Both check for an autosaved draft.
func (m *appModel) openForm(postID string, post models.Post) tea.Cmd {
	m.form = newFormModel(postID)
	if postID != "" {
		m.form.setDraft(recipeform.DraftFromPost(post))
	}
	m.currentScreen = screenForm
	return tea.Batch(
		m.form.spinner.Tick,
		m.cmdLoadLookups(),
		m.cmdFindDraft(postID),
		cmdAutosaveTick(),
	)
}

// expireSession handles an auth rejection on any authorized call: the stored
// credential is gone or stale, so drop it and route to login.
func (m *appModel) expireSession() {
	m.services.AuthService.Logout()
	m.login = newLoginModel()
	m.afterLogin = screenHome
	m.currentScreen = screenLogin
	m.showErrorf(service.MsgSessionExpired)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeletePost(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

	case feedLoadedMsg:
		if m.feedGuard.Stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			m.home.state = fetch.StateErrored
			m.home.lastErr = msg.err
			return m, nil
		}
		m.home.state = fetch.StateLoaded
		m.home.lastErr = nil
		m.home.posts = msg.posts
		m.home.visible = service.FilterByTitle(msg.posts, m.home.search.Value())
		m.home.idx = clampIndex(m.home.idx, len(m.home.visible))
		return m, nil

	case mineLoadedMsg:
		if m.mineGuard.Stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) || errors.Is(msg.err, service.ErrNotAuthenticated) {
				m.expireSession()
				return m, nil
			}
			m.dashboard.state = fetch.StateErrored
			m.dashboard.lastErr = msg.err
			m.myPosts.state = fetch.StateErrored
			m.myPosts.lastErr = msg.err
			return m, nil
		}
		m.dashboard.state = fetch.StateLoaded
		m.dashboard.posts = msg.posts
		m.myPosts.state = fetch.StateLoaded
		m.myPosts.posts = msg.posts
		m.myPosts.idx = clampIndex(m.myPosts.idx, len(msg.posts))
		return m, nil

	case postLoadedMsg:
		if m.postGuard.Stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			m.detail.state = fetch.StateErrored
			m.detail.lastErr = msg.err
			return m, nil
		}
		m.detail.state = fetch.StateLoaded
		m.detail.post = msg.post
		return m, nil

	case editPostLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanize(msg.err))
			m.currentScreen = screenMyPosts
			return m, nil
		}
		return m, m.openForm(msg.post.ID, msg.post)

	case lookupsLoadedMsg:
		if msg.err != nil {
			// The form stays usable for text fields; selects show a hint.
			m.form.status = humanize(msg.err)
			return m, nil
		}
		if m.currentScreen == screenForm {
			m.form.setLookups(msg.lookups)
		}
		return m, nil

	case profileLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) || errors.Is(msg.err, service.ErrNotAuthenticated) {
				m.expireSession()
				return m, nil
			}
			m.profile.state = fetch.StateErrored
			m.profile.lastErr = msg.err
			return m, nil
		}
		m.profile.state = fetch.StateLoaded
		m.profile.user = msg.user
		return m, nil

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			var verr *service.ValidationError
			if errors.As(msg.err, &verr) {
				m.login.fieldErrs = verr.Fields
				return m, nil
			}
			m.showErrorf(humanize(msg.err))
			return m, nil
		}
		target := m.afterLogin
		m.afterLogin = screenHome
		if target == screenHome {
			m.currentScreen = screenHome
			m.home.state = fetch.StateLoading
			return m, tea.Batch(m.home.spinner.Tick, m.cmdLoadFeed())
		}
		return m.guardTo(target)

	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			var verr *service.ValidationError
			if errors.As(msg.err, &verr) {
				m.register.fieldErrs = verr.Fields
				return m, nil
			}
			m.showErrorf(humanize(msg.err))
			return m, nil
		}
		// Registration does not auto-login; the account signs in explicitly.
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		return m, nil

	case contactDoneMsg:
		m.contact.submitting = false
		if msg.err != nil {
			var verr *service.ValidationError
			if errors.As(msg.err, &verr) {
				m.contact.fieldErrs = verr.Fields
				return m, nil
			}
			m.showErrorf(humanize(msg.err))
			return m, nil
		}
		m.contact = newContactModel()
		m.contact.status = "Message sent. Thank you!"
		return m, cmdClearStatus()

	case submitDoneMsg:
		m.form.submitting = false
		switch msg.outcome.State {
		case service.SubmissionInvalid:
			m.form.errors = msg.outcome.FieldErrors
			return m, nil
		case service.SubmissionFailed:
			if msg.outcome.Message == service.MsgSessionExpired && !m.loggedIn() {
				m.expireSession()
				return m, nil
			}
			m.showErrorf(msg.outcome.Message)
			return m, nil
		default:
			m.detailFrom = screenHome
			if m.form.editing() {
				m.detailFrom = screenMyPosts
			}
			m.detail.state = fetch.StateLoading
			m.currentScreen = screenDetail
			return m, tea.Batch(m.detail.spinner.Tick, m.cmdLoadPost(msg.outcome.Slug))
		}

	case deleteDoneMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) || errors.Is(msg.err, service.ErrNotAuthenticated) {
				m.expireSession()
				return m, nil
			}
			m.showErrorf(humanize(msg.err))
			return m, nil
		}
		m.currentScreen = screenMyPosts
		m.myPosts.state = fetch.StateLoading
		return m, tea.Batch(m.myPosts.spinner.Tick, m.cmdLoadMine())

	case searchSettledMsg:
		// Only the latest keystroke's timer applies the filter; earlier
		// timers die here. No request is ever issued for typing.
		if !m.searchDebounce.Settled(msg.seq) {
			return m, nil
		}
		m.home.visible = service.FilterByTitle(m.home.posts, m.home.search.Value())
		m.home.idx = clampIndex(m.home.idx, len(m.home.visible))
		return m, nil

	case autosaveTickMsg:
		if m.currentScreen != screenForm || m.form.resumePrompt || m.form.submitting {
			return m, nil
		}
		draft := m.form.syncedDraft()
		m.form.draft = draft
		return m, tea.Batch(m.cmdAutosave(draft), cmdAutosaveTick())

	case autosavedMsg:
		if m.currentScreen == screenForm && msg.err == nil {
			m.form.status = "Draft saved " + msg.at.Local().Format("15:04:05")
		}
		return m, nil

	case draftFoundMsg:
		if msg.err != nil || m.currentScreen != screenForm {
			return m, nil
		}
		m.form.resumePrompt = true
		m.form.resumeDraft = msg.draft
		m.form.resumeAt = msg.savedAt
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("Could not copy the link to the clipboard.")
			return m, nil
		}
		m.detail.status = "Link copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.home.status = ""
		m.myPosts.status = ""
		m.contact.status = ""
		return m, nil

	case spinner.TickMsg:
		return m.updateSpinners(msg)

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenMyPosts:
		return m.updateMyPosts(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenContact:
		return m.updateContact(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.View(m.loggedIn())
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenMyPosts:
		body = m.myPosts.View()
	case screenDetail:
		body = m.detail.View(m.ownsDetail())
	case screenForm:
		body = m.form.View()
	case screenProfile:
		body = m.profile.View()
	case screenContact:
		body = m.contact.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) ownsDetail() bool {
	sess := m.services.AuthService.Session()
	return sess.Authenticated && m.detail.post.UserID != "" && m.detail.post.UserID == sess.UserID
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screenHome:
		if m.home.state == fetch.StateLoading {
			m.home.spinner, cmd = m.home.spinner.Update(msg)
		}
	case screenDashboard:
		if m.dashboard.state == fetch.StateLoading {
			m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
		}
	case screenMyPosts:
		if m.myPosts.state == fetch.StateLoading {
			m.myPosts.spinner, cmd = m.myPosts.spinner.Update(msg)
		}
	case screenDetail:
		if m.detail.state == fetch.StateLoading {
			m.detail.spinner, cmd = m.detail.spinner.Update(msg)
		}
	case screenForm:
		if m.form.submitting {
			m.form.spinner, cmd = m.form.spinner.Update(msg)
		}
	case screenProfile:
		if m.profile.state == fetch.StateLoading {
			m.profile.spinner, cmd = m.profile.spinner.Update(msg)
		}
	}
	return m, cmd
}
