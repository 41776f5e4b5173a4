package tui

import (
	"codeberg.org/metawork/server/internal/apiclient"
	"codeberg.org/metawork/server/internal/authstate"
	"codeberg.org/metawork/server/metawork/users"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// represents the current screen of the dashboard app
type AppState int

const (
	// resolving persisted credentials against the server
	StateCheckingAuth AppState = iota
	StateLogin
	StateRegister
	StatePasteToken
	StateDashboard
)

// main dashboard application model
type Model struct {
	state   AppState
	width   int
	height  int
	api     *apiclient.Client
	store   *authstate.Store
	spinner spinner.Model
	login   *FormModel
	reg     *FormModel
	token   textinput.Model
	user    *users.User
	errMsg  string
	busy    bool
}

// a labelled stack of text inputs with one focused field
type FormModel struct {
	title  string
	labels []string
	fields []textinput.Model
	focus  int
}

// sent when the start-up auth resolution completes
type authResolvedMsg struct {
	snapshot authstate.Snapshot
}

// sent when a login or register call succeeds
type authSuccessMsg struct {
	snapshot authstate.Snapshot
}

// sent when a login or register call fails
type authFailedMsg struct {
	err error
}

// sent after logout completes
type loggedOutMsg struct{}
