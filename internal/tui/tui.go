package tui

import (
	"codeberg.org/metawork/server/internal/apiclient"
	"codeberg.org/metawork/server/internal/authstate"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(api *apiclient.Client, store *authstate.Store) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	token := textinput.New()
	token.Placeholder = "paste token from the browser"
	token.CharLimit = 2048
	token.Width = 60

	return &Model{
		state:   StateCheckingAuth,
		api:     api,
		store:   store,
		spinner: s,
		login:   NewLoginForm(),
		reg:     NewRegisterForm(),
		token:   token,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, resolveAuthCmd(m.store))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == StateCheckingAuth || m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

		return m, nil

	case authResolvedMsg:
		return m.applySnapshot(msg.snapshot)

	case authSuccessMsg:
		m.busy = false
		m.errMsg = ""
		m.user = msg.snapshot.User
		m.state = StateDashboard
		return m, nil

	case authFailedMsg:
		m.busy = false
		m.errMsg = msg.err.Error()
		return m, nil

	case loggedOutMsg:
		m.busy = false
		m.errMsg = ""
		m.user = nil
		m.login.Reset()
		m.reg.Reset()
		m.state = StateLogin
		return m, nil
	}

	switch m.state {
	case StateLogin:
		return m.updateLogin(msg)

	case StateRegister:
		return m.updateRegister(msg)

	case StatePasteToken:
		return m.updatePasteToken(msg)

	case StateDashboard:
		return m.updateDashboard(msg)

	default:
		return m, nil
	}
}

// moves to the screen matching a resolved auth snapshot. A rejected
// pasted token gets an error line; a stale start-up session drops to
// the login screen silently, like the web client does.
func (m *Model) applySnapshot(snapshot authstate.Snapshot) (tea.Model, tea.Cmd) {
	m.busy = false

	if snapshot.IsAuthenticated() {
		m.user = snapshot.User
		m.errMsg = ""
		m.state = StateDashboard
		return m, nil
	}

	if m.state == StatePasteToken {
		m.errMsg = "token was rejected, please try again"
	} else {
		m.errMsg = ""
	}

	m.user = nil
	m.state = StateLogin
	return m, nil
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch key.String() {
		case "enter":
			values := m.login.Values()
			email, password := values[0], values[1]

			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.busy = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, loginCmd(m.api, m.store, email, password))

		case "ctrl+r":
			m.errMsg = ""
			m.state = StateRegister
			return m, nil

		case "ctrl+t":
			m.errMsg = ""
			m.token.SetValue("")
			m.token.Focus()
			m.state = StatePasteToken
			return m, nil
		}
	}

	if m.busy {
		return m, nil
	}

	return m, m.login.Update(msg)
}

func (m *Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch key.String() {
		case "enter":
			values := m.reg.Values()
			name, email, password := values[0], values[1], values[2]

			if name == "" || email == "" || password == "" {
				m.errMsg = "all fields are required"
				return m, nil
			}

			if len(password) < 6 {
				m.errMsg = "password must be at least 6 characters"
				return m, nil
			}

			m.busy = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, registerCmd(m.api, m.store, name, email, password))

		case "esc":
			m.errMsg = ""
			m.state = StateLogin
			return m, nil
		}
	}

	if m.busy {
		return m, nil
	}

	return m, m.reg.Update(msg)
}

func (m *Model) updatePasteToken(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch key.String() {
		case "enter":
			token := m.token.Value()
			if token == "" {
				m.errMsg = "paste the token first"
				return m, nil
			}

			m.busy = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, acceptTokenCmd(m.store, token))

		case "esc":
			m.errMsg = ""
			m.state = StateLogin
			return m, nil
		}
	}

	if m.busy {
		return m, nil
	}

	var cmd tea.Cmd
	m.token, cmd = m.token.Update(msg)

	return m, cmd
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q":
			return m, tea.Quit

		case "ctrl+l":
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, logoutCmd(m.api, m.store))
		}
	}

	return m, nil
}
