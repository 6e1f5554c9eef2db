package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/foodblog/go-food-blog/models"
)

// contactModel renders the public contact form.
type contactModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	fieldErrs  map[string]string
	status     string
}

var contactFields = []struct {
	label  string
	errKey string
}{
	{"Name:   ", "name"},
	{"Email:  ", "email"},
	{"Message:", "message"},
}

func newContactModel() contactModel {
	inputs := make([]textinput.Model, len(contactFields))
	for i, f := range contactFields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(f.label), ":"))
		in.CharLimit = 500
		in.Width = 50
		inputs[i] = in
	}
	inputs[0].Focus()
	return contactModel{inputs: inputs}
}

func (m contactModel) message() models.ContactMessage {
	return models.ContactMessage{
		Name:    strings.TrimSpace(m.inputs[0].Value()),
		Email:   strings.TrimSpace(m.inputs[1].Value()),
		Message: strings.TrimSpace(m.inputs[2].Value()),
	}
}

func (m contactModel) View() string {
	out := titleStyle.Render("Contact us") + "\n\n"

	for i, f := range contactFields {
		out += f.label + " [" + m.inputs[i].View() + "]\n"
		if msg, ok := m.fieldErrs[f.errKey]; ok && msg != "" {
			out += "         " + errorStyle.Render("! "+msg) + "\n"
		}
	}

	if m.submitting {
		out += "\nSending...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter send  tab next field  esc back")
	return out
}
