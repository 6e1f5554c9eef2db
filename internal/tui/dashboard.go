package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/models"
)

const dashboardRecent = 5

// dashboardModel summarizes the signed-in author's posts: a count and the
// most recent handful, both derived from one own-posts load.
type dashboardModel struct {
	posts   []models.Post
	state   fetch.State
	lastErr error
	spinner spinner.Model
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s}
}

func (m dashboardModel) View() string {
	header := titleStyle.Render("Dashboard")
	if m.state == fetch.StateLoading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch m.state {
	case fetch.StateLoading:
		out += "Loading...\n"
	case fetch.StateErrored:
		out += errorStyle.Render(humanizeLoad(m.lastErr)) + "\n"
	default:
		out += fmt.Sprintf("You have published %d recipe(s).\n\n", len(m.posts))
		if len(m.posts) > 0 {
			out += "Recent:\n"
			recent := m.posts
			if len(recent) > dashboardRecent {
				recent = recent[:dashboardRecent]
			}
			for _, post := range recent {
				out += "  - " + fitText(post.Title, 60) + "\n"
			}
		}
	}

	out += "\n" + helpStyle.Render("m my recipes  n new recipe  r refresh  esc home")
	return out
}
