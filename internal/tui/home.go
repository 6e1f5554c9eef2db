package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/models"
)

// homeModel renders the public recipe feed. Search narrows the already
// fetched page locally; typing never issues a request.
type homeModel struct {
	posts   []models.Post
	visible []models.Post
	idx     int

	state   fetch.State
	lastErr error

	search    textinput.Model
	searching bool

	spinner spinner.Model
	status  string
}

func newHomeModel() homeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "search by title"
	search.CharLimit = 80
	search.Width = 40

	// The feed load starts with the program.
	return homeModel{spinner: s, search: search, state: fetch.StateLoading}
}

func (m homeModel) current() (models.Post, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Post{}, false
	}
	return m.visible[m.idx], true
}

func (m homeModel) View(loggedIn bool) string {
	header := titleStyle.Render("Food Blog")
	if m.state == fetch.StateLoading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	out += "Search: [" + m.search.View() + "]\n\n"

	switch {
	case m.state == fetch.StateLoading && len(m.posts) == 0:
		out += "Loading recipes...\n"
	case m.state == fetch.StateErrored:
		out += errorStyle.Render(humanizeLoad(m.lastErr)) + "\n"
	case len(m.visible) == 0 && strings.TrimSpace(m.search.Value()) != "":
		out += "No recipes match your search.\n"
	case len(m.visible) == 0:
		out += "No recipes yet.\n"
	default:
		for i, post := range m.visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s\n", cursor, fitText(post.Title, 60))
			out += "    " + helpStyle.Render(fitText(post.Excerpt, 70)) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	authKeys := "L log in"
	if loggedIn {
		authKeys = "b dashboard  m my recipes  p profile  L log out"
	}
	out += "\n" + helpStyle.Render("/ search  enter open  n new recipe  "+authKeys+"  t contact  r refresh  q quit")
	return out
}

func humanizeLoad(err error) string {
	if err == nil {
		return ""
	}
	return humanize(err)
}
