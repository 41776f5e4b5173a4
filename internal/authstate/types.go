package authstate

import (
	"context"
	"sync"

	"codeberg.org/metawork/server/metawork/users"
)

// State is the client-side authentication state
type State int

const (
	StateAnonymous State = iota
	StateLoading
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// API is the slice of the server the state machine needs: resolving a
// token to the user it identifies.
type API interface {
	CurrentUser(ctx context.Context, token string) (*users.User, error)
}

// CredentialStore persists the token and a user snapshot across
// process restarts, the way a browser keeps them in local storage.
type CredentialStore interface {
	Load() (token string, user *users.User, err error)
	Save(token string, user *users.User) error
	Clear() error
}

// Snapshot is an immutable view of the current auth state
type Snapshot struct {
	State State
	User  *users.User
	Token string
}

func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

// Store is the single source of truth for client auth state. All
// transitions go through its methods; observers receive a snapshot
// after every transition.
type Store struct {
	mu        sync.Mutex
	api       API
	creds     CredentialStore
	state     State
	user      *users.User
	token     string
	observers []func(Snapshot)
}
