package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/internal/recipeform"
	"github.com/foodblog/go-food-blog/models"
)

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.home.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.home.searching = false
			m.home.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.home.searching = false
			m.home.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.home.search, cmd = m.home.search.Update(msg)
			seq := m.searchDebounce.Touch()
			return m, tea.Batch(cmd, cmdSearchSettle(m.searchDebounce, seq))
		}
	}

	switch {
	case key.Matches(keyMsg, keys.search):
		m.home.searching = true
		m.home.search.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.visible)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		post, ok := m.home.current()
		if !ok {
			return m, nil
		}
		m.detailFrom = screenHome
		m.detail = newDetailModel()
		m.detail.state = fetch.StateLoading
		m.currentScreen = screenDetail
		return m, tea.Batch(m.detail.spinner.Tick, m.cmdLoadPost(post.Slug))
	case key.Matches(keyMsg, keys.refresh):
		m.home.state = fetch.StateLoading
		return m, tea.Batch(m.home.spinner.Tick, m.cmdLoadFeed())
	case key.Matches(keyMsg, keys.newPost):
		return m.guardTo(screenForm)
	case key.Matches(keyMsg, keys.myPosts):
		return m.guardTo(screenMyPosts)
	case key.Matches(keyMsg, keys.dashboard):
		return m.guardTo(screenDashboard)
	case key.Matches(keyMsg, keys.profile):
		return m.guardTo(screenProfile)
	case key.Matches(keyMsg, keys.contact):
		m.contact = newContactModel()
		m.currentScreen = screenContact
		return m, nil
	case key.Matches(keyMsg, keys.login):
		if m.loggedIn() {
			m.services.AuthService.Logout()
			m.home.status = "Logged out."
			return m, cmdClearStatus()
		}
		m.afterLogin = screenHome
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusNextLogin(m.login, -1)
			return m, nil
		case key.Matches(keyMsg, keys.space) && m.login.focus == loginRememberRow:
			m.login.remember = !m.login.remember
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.fieldErrs = nil
			m.login.submitting = true
			creds := models.Credentials{UserEmail: m.login.email(), Password: m.login.password()}
			return m, m.cmdLogin(creds, m.login.remember)
		}
	}

	if m.login.focus < len(m.login.inputs) {
		var cmd tea.Cmd
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenLogin
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusNextRegister(m.register, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.fieldErrs = nil
			m.register.submitting = true
			user, confirm := m.register.account()
			return m, m.cmdRegister(user, confirm)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.myPosts):
		return m.guardTo(screenMyPosts)
	case key.Matches(keyMsg, keys.newPost):
		return m.guardTo(screenForm)
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.state = fetch.StateLoading
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadMine())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateMyPosts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.myPosts.idx > 0 {
			m.myPosts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.myPosts.idx < len(m.myPosts.posts)-1 {
			m.myPosts.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		post, ok := m.myPosts.current()
		if !ok {
			return m, nil
		}
		m.detailFrom = screenMyPosts
		m.detail = newDetailModel()
		m.detail.state = fetch.StateLoading
		m.currentScreen = screenDetail
		return m, tea.Batch(m.detail.spinner.Tick, m.cmdLoadPost(post.Slug))
	case key.Matches(keyMsg, keys.edit):
		post, ok := m.myPosts.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdLoadForEdit(post.Slug)
	case key.Matches(keyMsg, keys.delete):
		post, ok := m.myPosts.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = post.Title
		m.pendingDelete = post.ID
	case key.Matches(keyMsg, keys.newPost):
		return m.guardTo(screenForm)
	case key.Matches(keyMsg, keys.refresh):
		m.myPosts.state = fetch.StateLoading
		return m, tea.Batch(m.myPosts.spinner.Tick, m.cmdLoadMine())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.detailFrom
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.state != fetch.StateLoaded {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.apiBase + "/posts/" + m.detail.post.Slug)
	case key.Matches(keyMsg, keys.edit):
		if !m.ownsDetail() {
			return m, nil
		}
		return m, m.openForm(m.detail.post.ID, m.detail.post)
	case key.Matches(keyMsg, keys.delete):
		if !m.ownsDetail() {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = m.detail.post.Title
		m.pendingDelete = m.detail.post.ID
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.form.resumePrompt {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.form.resumePrompt = false
			m.form.setDraft(m.form.resumeDraft)
			return m, nil
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.form.resumePrompt = false
			return m, m.cmdDiscardDraft(m.form.postID)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		// Leaving the form keeps the autosaved draft for later resume.
		draft := m.form.syncedDraft()
		m.currentScreen = screenHome
		if m.form.editing() {
			m.currentScreen = screenMyPosts
		}
		return m, m.cmdAutosave(draft)
	case key.Matches(keyMsg, keys.submit):
		if m.form.submitting {
			return m, nil
		}
		m.form.errors = nil
		m.form.submitting = true
		draft := m.form.syncedDraft()
		m.form.draft = draft
		return m, tea.Batch(m.form.spinner.Tick, m.cmdSubmit(draft, m.form.postID))
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.enter):
		m.form.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.addLine):
		return m.formAddLine()
	case key.Matches(keyMsg, keys.dropLine):
		return m.formDropLine()
	}

	row := &m.form.rows[m.form.focus]
	switch row.kind {
	case rowSelect:
		return m.formCycleSelect(keyMsg, row)
	case rowTagSet:
		return m.formToggleTag(keyMsg, row)
	default:
		var cmd tea.Cmd
		row.input, cmd = row.input.Update(msg)
		return m, cmd
	}
}

func (m appModel) formAddLine() (tea.Model, tea.Cmd) {
	row := m.form.rows[m.form.focus]
	if row.kind != rowListItem {
		return m, nil
	}
	draft := m.form.syncedDraft().InsertListItem(row.name, "")
	focus := m.form.focus
	m.form.setDraft(draft)
	// Land on the appended line: the last row bound to this list.
	for i := range m.form.rows {
		if m.form.rows[i].kind == rowListItem && m.form.rows[i].name == row.name {
			focus = i
		}
	}
	m.form.focusRow(focus)
	return m, nil
}

func (m appModel) formDropLine() (tea.Model, tea.Cmd) {
	row := m.form.rows[m.form.focus]
	if row.kind != rowListItem {
		return m, nil
	}
	draft := m.form.syncedDraft().RemoveListItem(row.name, row.index)
	focus := m.form.focus
	m.form.setDraft(draft)
	m.form.focusRow(focus)
	return m, nil
}

func (m appModel) formCycleSelect(keyMsg tea.KeyMsg, row *formRow) (tea.Model, tea.Cmd) {
	opts := m.form.selectOptions(row.name)
	if len(opts) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		row.optIdx--
	case key.Matches(keyMsg, keys.right):
		row.optIdx++
	default:
		return m, nil
	}
	if row.optIdx < 0 {
		row.optIdx = len(opts) - 1
	}
	if row.optIdx >= len(opts) {
		row.optIdx = 0
	}

	switch row.name {
	case recipeform.FieldDifficulty:
		m.form.draft = m.form.draft.SetField(recipeform.FieldDifficulty, opts[row.optIdx].Value)
	default:
		m.form.draft = m.form.draft.SetField(row.name, opts[row.optIdx].Value)
	}
	delete(m.form.errors, row.name)
	return m, nil
}

func (m appModel) formToggleTag(keyMsg tea.KeyMsg, row *formRow) (tea.Model, tea.Cmd) {
	opts := m.form.tagOptions(row.name)
	if len(opts) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		if row.optIdx > 0 {
			row.optIdx--
		}
	case key.Matches(keyMsg, keys.right):
		if row.optIdx < len(opts)-1 {
			row.optIdx++
		}
	case key.Matches(keyMsg, keys.space):
		m.form.draft = m.form.draft.ToggleTag(row.name, opts[row.optIdx])
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.logout):
		m.services.AuthService.Logout()
		m.currentScreen = screenHome
		m.home.status = "Logged out."
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.contact = focusNextContact(m.contact, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.contact = focusNextContact(m.contact, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.contact.submitting {
				return m, nil
			}
			m.contact.fieldErrs = nil
			m.contact.submitting = true
			return m, m.cmdContact(m.contact.message())
		}
	}

	var cmd tea.Cmd
	m.contact.inputs[m.contact.focus], cmd = m.contact.inputs[m.contact.focus].Update(msg)
	return m, cmd
}

func focusNextLogin(m loginModel, step int) loginModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + step + m.rowCount()) % m.rowCount()
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func focusNextRegister(m registerModel, step int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextContact(m contactModel, step int) contactModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
