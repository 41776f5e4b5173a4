package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const fieldWidth = 40

// builds the login form: email + password
func NewLoginForm() *FormModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = fieldWidth
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = fieldWidth

	return &FormModel{
		title:  "Sign in",
		labels: []string{"Email", "Password"},
		fields: []textinput.Model{email, password},
	}
}

// builds the registration form: name + email + password
func NewRegisterForm() *FormModel {
	name := textinput.New()
	name.Placeholder = "Display name"
	name.CharLimit = 100
	name.Width = fieldWidth
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = fieldWidth

	password := textinput.New()
	password.Placeholder = "at least 6 characters"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = fieldWidth

	return &FormModel{
		title:  "Create account",
		labels: []string{"Name", "Email", "Password"},
		fields: []textinput.Model{name, email, password},
	}
}

// routes key input to the focused field; tab and shift+tab move focus
func (f *FormModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % len(f.fields))
			return nil
		case "shift+tab", "up":
			f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
			return nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)

	return cmd
}

// returns the trimmed value of each field in declaration order
func (f *FormModel) Values() []string {
	values := make([]string, len(f.fields))
	for i, field := range f.fields {
		values[i] = strings.TrimSpace(field.Value())
	}

	return values
}

// clears every field and refocuses the first one
func (f *FormModel) Reset() {
	for i := range f.fields {
		f.fields[i].SetValue("")
	}

	f.setFocus(0)
}

func (f *FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n")

	for i, field := range f.fields {
		label := labelStyle
		if i == f.focus {
			label = labelFocusedStyle
		}

		b.WriteString(label.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(field.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (f *FormModel) setFocus(index int) {
	for i := range f.fields {
		if i == index {
			f.fields[i].Focus()
		} else {
			f.fields[i].Blur()
		}
	}

	f.focus = index
}
