package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/models"
)

// myPostsModel lists the signed-in author's recipes with edit and delete
// entry points.
type myPostsModel struct {
	posts   []models.Post
	idx     int
	state   fetch.State
	lastErr error
	spinner spinner.Model
	status  string
}

func newMyPostsModel() myPostsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return myPostsModel{spinner: s}
}

func (m myPostsModel) current() (models.Post, bool) {
	if len(m.posts) == 0 || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

func (m myPostsModel) View() string {
	header := titleStyle.Render("My recipes")
	if m.state == fetch.StateLoading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.state == fetch.StateLoading && len(m.posts) == 0:
		out += "Loading...\n"
	case m.state == fetch.StateErrored:
		out += errorStyle.Render(humanizeLoad(m.lastErr)) + "\n"
	case len(m.posts) == 0:
		out += "You have not published any recipes yet.\n"
	default:
		for i, post := range m.posts {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n", cursor, fitText(post.Title, 50), helpStyle.Render(post.PublishDate))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  e edit  d delete  n new recipe  r refresh  esc back")
	return out
}
