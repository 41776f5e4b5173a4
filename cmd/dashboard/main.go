package main

import (
	"fmt"
	"os"

	"codeberg.org/metawork/server/internal/apiclient"
	"codeberg.org/metawork/server/internal/authstate"
	"codeberg.org/metawork/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	creds, err := authstate.DefaultFileCredentialStore()
	if err != nil {
		fmt.Printf("error locating credential store: %v\n", err)
		os.Exit(1)
	}

	api := apiclient.New()
	store := authstate.NewStore(api, creds)

	app := tui.NewApp(api, store)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running metawork dashboard: %v\n", err)
		os.Exit(1)
	}
}
