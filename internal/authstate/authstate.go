package authstate

import (
	"context"

	"codeberg.org/metawork/server/internal/logger"
	"codeberg.org/metawork/server/metawork/users"
)

// creates a new auth state store in the Anonymous state
func NewStore(api API, creds CredentialStore) *Store {
	return &Store{
		api:   api,
		creds: creds,
		state: StateAnonymous,
	}
}

// returns the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// registers an observer called after every transition
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// Resolve runs the start-up path: restore a persisted token if there is
// one and ask the server who it belongs to. With no token the store
// settles on Anonymous; with a token that the server rejects the
// persisted credentials are cleared (the automatic logout on 401).
func (s *Store) Resolve(ctx context.Context) Snapshot {
	token, cachedUser, err := s.creds.Load()
	if err != nil {
		logger.ErrorErr(err, "failed to load persisted credentials")
		token = ""
	}

	if token == "" {
		return s.transition(StateAnonymous, nil, "")
	}

	// show the cached snapshot while the server round-trip is in flight
	s.transition(StateLoading, cachedUser, token)

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		if clearErr := s.creds.Clear(); clearErr != nil {
			logger.ErrorErr(clearErr, "failed to clear credentials after rejected token")
		}

		return s.transition(StateAnonymous, nil, "")
	}

	if saveErr := s.creds.Save(token, user); saveErr != nil {
		logger.ErrorErr(saveErr, "failed to refresh persisted user snapshot")
	}

	return s.transition(StateAuthenticated, user, token)
}

// Login records a successful register or login response
func (s *Store) Login(user *users.User, token string) Snapshot {
	if err := s.creds.Save(token, user); err != nil {
		logger.ErrorErr(err, "failed to persist credentials")
	}

	return s.transition(StateAuthenticated, user, token)
}

// AcceptToken takes a token obtained out of band (the OAuth redirect)
// and re-runs the resolution path with it.
func (s *Store) AcceptToken(ctx context.Context, token string) Snapshot {
	if err := s.creds.Save(token, nil); err != nil {
		logger.ErrorErr(err, "failed to persist oauth token")
	}

	return s.Resolve(ctx)
}

// Logout drops to Anonymous from any state and clears persisted
// credentials. Never fails from the caller's point of view.
func (s *Store) Logout() Snapshot {
	if err := s.creds.Clear(); err != nil {
		logger.ErrorErr(err, "failed to clear persisted credentials")
	}

	return s.transition(StateAnonymous, nil, "")
}

func (s *Store) transition(state State, user *users.User, token string) Snapshot {
	s.mu.Lock()

	s.state = state
	s.user = user
	s.token = token

	snapshot := s.snapshotLocked()
	observers := make([]func(Snapshot), len(s.observers))
	copy(observers, s.observers)

	s.mu.Unlock()

	// notify outside the lock so observers may call back into the store
	for _, fn := range observers {
		fn(snapshot)
	}

	return snapshot
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		State: s.state,
		User:  s.user,
		Token: s.token,
	}
}
