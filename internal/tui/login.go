package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel renders the sign-in form: email, password, and the remember-me
// toggle that decides which storage scope keeps the token.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	fieldErrs  map[string]string
}

const loginRememberRow = 2

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

// rowCount includes the remember toggle after the two inputs.
func (m loginModel) rowCount() int {
	return len(m.inputs) + 1
}

func (m loginModel) View() string {
	out := titleStyle.Render("Log in") + "\n\n"

	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += loginFieldError(m.fieldErrs, "userEmail")
	out += "Password: [" + m.inputs[1].View() + "]\n"
	out += loginFieldError(m.fieldErrs, "password")

	box := "[ ]"
	if m.remember {
		box = "[x]"
	}
	cursor := "  "
	if m.focus == loginRememberRow {
		cursor = "> "
	}
	out += "\n" + cursor + box + " Remember me\n"

	if m.submitting {
		out += "\nSigning in...\n"
	}

	out += "\n" + helpStyle.Render("enter sign in  space toggle remember  tab next field  esc back")
	return out
}

func loginFieldError(fields map[string]string, name string) string {
	if msg, ok := fields[name]; ok && msg != "" {
		return "          " + errorStyle.Render("! "+msg) + "\n"
	}
	return ""
}

func (m loginModel) email() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m loginModel) password() string {
	return m.inputs[1].Value()
}
