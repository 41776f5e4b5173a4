package tui

import (
	"context"
	"time"

	"codeberg.org/metawork/server/internal/apiclient"
	"codeberg.org/metawork/server/internal/authstate"
	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 15 * time.Second

// resolves persisted credentials on start-up. If the program quits
// before the result arrives bubbletea simply drops the message.
func resolveAuthCmd(store *authstate.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return authResolvedMsg{snapshot: store.Resolve(ctx)}
	}
}

// exchanges credentials for a token and records it in the state store
func loginCmd(api *apiclient.Client, store *authstate.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := api.Login(ctx, email, password)
		if err != nil {
			return authFailedMsg{err: err}
		}

		return authSuccessMsg{snapshot: store.Login(result.User, result.Token)}
	}
}

// creates an account and records the issued token in the state store
func registerCmd(api *apiclient.Client, store *authstate.Store, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := api.Register(ctx, name, email, password)
		if err != nil {
			return authFailedMsg{err: err}
		}

		return authSuccessMsg{snapshot: store.Login(result.User, result.Token)}
	}
}

// feeds a token obtained from the browser OAuth flow into the store
func acceptTokenCmd(store *authstate.Store, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return authResolvedMsg{snapshot: store.AcceptToken(ctx, token)}
	}
}

// clears local credentials and pings the server's logout endpoint
func logoutCmd(api *apiclient.Client, store *authstate.Store) tea.Cmd {
	return func() tea.Msg {
		store.Logout()

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		// best effort: the token is already gone locally
		_ = api.Logout(ctx) //nolint:errcheck

		return loggedOutMsg{}
	}
}
