package authstate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/metawork/server/metawork/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	users map[string]*users.User // token -> user
	calls int
}

func (f *fakeAPI) CurrentUser(_ context.Context, token string) (*users.User, error) {
	f.calls++

	user, ok := f.users[token]
	if !ok {
		return nil, errors.New("unauthorized")
	}

	return user, nil
}

func newTestStore(t *testing.T, api *fakeAPI) (*Store, *FileCredentialStore) {
	t.Helper()

	creds := NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))

	return NewStore(api, creds), creds
}

func TestResolve_NoPersistedToken(t *testing.T) {
	api := &fakeAPI{users: map[string]*users.User{}}
	store, _ := newTestStore(t, api)

	snapshot := store.Resolve(context.Background())

	assert.Equal(t, StateAnonymous, snapshot.State)
	assert.Nil(t, snapshot.User)
	assert.Equal(t, 0, api.calls, "no token means no server round-trip")
}

func TestResolve_ValidPersistedToken(t *testing.T) {
	alice := &users.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	api := &fakeAPI{users: map[string]*users.User{"good-token": alice}}
	store, creds := newTestStore(t, api)

	require.NoError(t, creds.Save("good-token", nil))

	snapshot := store.Resolve(context.Background())

	assert.Equal(t, StateAuthenticated, snapshot.State)
	assert.Equal(t, "user-1", snapshot.User.ID)
	assert.Equal(t, "good-token", snapshot.Token)

	// the refreshed user snapshot should be persisted alongside the token
	token, user, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "good-token", token)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestResolve_RejectedTokenClearsCredentials(t *testing.T) {
	api := &fakeAPI{users: map[string]*users.User{}}
	store, creds := newTestStore(t, api)

	require.NoError(t, creds.Save("stale-token", &users.User{ID: "user-1"}))

	snapshot := store.Resolve(context.Background())

	assert.Equal(t, StateAnonymous, snapshot.State)
	assert.Nil(t, snapshot.User)

	token, user, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "rejected token must be cleared")
	assert.Nil(t, user)
}

func TestLogin_PersistsAndAuthenticates(t *testing.T) {
	api := &fakeAPI{users: map[string]*users.User{}}
	store, creds := newTestStore(t, api)

	bob := &users.User{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	snapshot := store.Login(bob, "issued-token")

	assert.Equal(t, StateAuthenticated, snapshot.State)
	assert.Equal(t, bob, snapshot.User)

	token, user, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, "user-2", user.ID)
}

func TestAcceptToken_OAuthRedirectPath(t *testing.T) {
	carol := &users.User{ID: "user-3", Name: "Carol", Email: "carol@example.com"}
	api := &fakeAPI{users: map[string]*users.User{"oauth-token": carol}}
	store, _ := newTestStore(t, api)

	snapshot := store.AcceptToken(context.Background(), "oauth-token")

	assert.Equal(t, StateAuthenticated, snapshot.State)
	assert.Equal(t, "user-3", snapshot.User.ID)
}

func TestAcceptToken_BadToken(t *testing.T) {
	api := &fakeAPI{users: map[string]*users.User{}}
	store, creds := newTestStore(t, api)

	snapshot := store.AcceptToken(context.Background(), "forged-token")

	assert.Equal(t, StateAnonymous, snapshot.State)

	token, _, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogout_FromAnyState(t *testing.T) {
	alice := &users.User{ID: "user-1"}
	api := &fakeAPI{users: map[string]*users.User{"good-token": alice}}
	store, creds := newTestStore(t, api)

	store.Login(alice, "good-token")
	require.Equal(t, StateAuthenticated, store.Snapshot().State)

	snapshot := store.Logout()

	assert.Equal(t, StateAnonymous, snapshot.State)
	assert.Nil(t, snapshot.User)
	assert.Empty(t, snapshot.Token)

	token, user, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)

	// logout when already anonymous stays anonymous
	assert.Equal(t, StateAnonymous, store.Logout().State)
}

func TestSubscribe_ObserversSeeTransitions(t *testing.T) {
	api := &fakeAPI{users: map[string]*users.User{}}
	store, _ := newTestStore(t, api)

	var seen []State
	store.Subscribe(func(s Snapshot) {
		seen = append(seen, s.State)
	})

	store.Login(&users.User{ID: "user-1"}, "tok")
	store.Logout()

	assert.Equal(t, []State{StateAuthenticated, StateAnonymous}, seen)
}

func TestFileCredentialStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	creds := NewFileCredentialStore(path)

	token, user, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestFileCredentialStore_ClearMissingFile(t *testing.T) {
	creds := NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))

	assert.NoError(t, creds.Clear())
}
