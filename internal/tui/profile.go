package tui

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/foodblog/go-food-blog/internal/fetch"
	"github.com/foodblog/go-food-blog/models"
)

// profileModel renders the signed-in account's details.
type profileModel struct {
	user    models.User
	state   fetch.State
	lastErr error
	spinner spinner.Model
}

func newProfileModel() profileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return profileModel{spinner: s}
}

func (m profileModel) View() string {
	header := titleStyle.Render("Profile")
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
		u := m.user
		out += "Username: " + orDash(u.UserName) + "\n"
		out += "Name:     " + orDash(u.FirstName+" "+u.LastName) + "\n"
		out += "Email:    " + orDash(u.Email) + "\n"
		out += "Address:  " + orDash(u.Address) + "\n"
		out += "Mobile:   " + orDash(u.MobileNo) + "\n"
	}

	out += "\n" + helpStyle.Render("L log out  esc back")
	return out
}
