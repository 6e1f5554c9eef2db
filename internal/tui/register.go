package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/foodblog/go-food-blog/models"
)

// registerModel renders the account creation form. Field errors come back
// from the service keyed by wire field name and render under their inputs.
type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	fieldErrs  map[string]string
}

var registerFields = []struct {
	label       string
	placeholder string
	errKey      string
	masked      bool
}{
	{"Username:  ", "username", "userName", false},
	{"First name:", "first name", "firstName", false},
	{"Last name: ", "last name", "lastName", false},
	{"Email:     ", "email", "email", false},
	{"Password:  ", "min 6 characters", "password", true},
	{"Confirm:   ", "repeat password", "confirmPassword", true},
	{"Address:   ", "address", "address", false},
	{"Mobile:    ", "digits only", "mobileNo", false},
}

func newRegisterModel() registerModel {
	inputs := make([]textinput.Model, len(registerFields))
	for i, f := range registerFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = 120
		in.Width = 40
		if f.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[0].Focus()
	return registerModel{inputs: inputs}
}

func (m registerModel) account() (models.User, string) {
	user := models.User{
		UserName:  strings.TrimSpace(m.inputs[0].Value()),
		FirstName: strings.TrimSpace(m.inputs[1].Value()),
		LastName:  strings.TrimSpace(m.inputs[2].Value()),
		Email:     strings.TrimSpace(m.inputs[3].Value()),
		Password:  m.inputs[4].Value(),
		Address:   strings.TrimSpace(m.inputs[6].Value()),
		MobileNo:  strings.TrimSpace(m.inputs[7].Value()),
	}
	return user, m.inputs[5].Value()
}

func (m registerModel) View() string {
	out := titleStyle.Render("Create account") + "\n\n"

	for i, f := range registerFields {
		out += f.label + " [" + m.inputs[i].View() + "]\n"
		if msg, ok := m.fieldErrs[f.errKey]; ok && msg != "" {
			out += "            " + errorStyle.Render("! "+msg) + "\n"
		}
	}

	if m.submitting {
		out += "\nCreating account...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  esc back")
	return out
}
