package tui

import (
	"fmt"
	"strings"
)

func (m *Model) View() string {
	switch m.state {
	case StateCheckingAuth:
		return screenStyle.Render(fmt.Sprintf("\n %s checking authentication...\n", m.spinner.View()))

	case StateLogin:
		return m.loginView()

	case StateRegister:
		return m.registerView()

	case StatePasteToken:
		return m.pasteTokenView()

	case StateDashboard:
		return m.dashboardView()

	default:
		return "unknown state"
	}
}

func (m *Model) loginView() string {
	var b strings.Builder

	b.WriteString(m.login.View())
	b.WriteString(m.statusLine())
	b.WriteString(hintStyle.Render("enter sign in • tab next field • ctrl+r create account • ctrl+t paste OAuth token • ctrl+c quit"))

	return screenStyle.Render(b.String())
}

func (m *Model) registerView() string {
	var b strings.Builder

	b.WriteString(m.reg.View())
	b.WriteString(m.statusLine())
	b.WriteString(hintStyle.Render("enter create account • tab next field • esc back to sign in • ctrl+c quit"))

	return screenStyle.Render(b.String())
}

func (m *Model) pasteTokenView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sign in with Google"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Open /api/auth/google in your browser, then paste the token\nfrom the success page URL below."))
	b.WriteString("\n")
	b.WriteString(m.token.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString(hintStyle.Render("enter submit • esc back to sign in • ctrl+c quit"))

	return screenStyle.Render(b.String())
}

func (m *Model) dashboardView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n")

	if m.user != nil {
		verified := "not verified"
		if m.user.IsVerified {
			verified = verifiedStyle.Render("verified")
		}

		card := fmt.Sprintf("Welcome back, %s\n\nEmail    %s\nStatus   %s", m.user.Name, m.user.Email, verified)

		if m.user.AvatarURL != "" {
			card += fmt.Sprintf("\nAvatar   %s", m.user.AvatarURL)
		}

		b.WriteString(cardStyle.Render(card))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString(fmt.Sprintf("\n%s signing out...\n", m.spinner.View()))
	}

	b.WriteString(hintStyle.Render("ctrl+l sign out • q quit"))

	return screenStyle.Render(b.String())
}

func (m *Model) statusLine() string {
	if m.busy {
		return fmt.Sprintf("\n%s working...\n\n", m.spinner.View())
	}

	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg) + "\n\n"
	}

	return "\n"
}
