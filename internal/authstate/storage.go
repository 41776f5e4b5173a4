package authstate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/metawork/server/metawork/users"
)

// on-disk shape, keyed the same way the web client keys local storage
type persistedCredentials struct {
	Token string      `json:"token"`
	User  *users.User `json:"user,omitempty"`
}

// FileCredentialStore keeps the token and user snapshot in a JSON file
// under the user's config directory, surviving restarts the way
// browser local storage survives page reloads.
type FileCredentialStore struct {
	path string
}

// creates a credential store at an explicit path
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

// creates a credential store at the default per-user location
func DefaultFileCredentialStore() (*FileCredentialStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config dir: %w", err)
	}

	return NewFileCredentialStore(filepath.Join(configDir, "metawork", "credentials.json")), nil
}

func (f *FileCredentialStore) Load() (string, *users.User, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}

		return "", nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds persistedCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		// a corrupt file is treated as no credentials
		return "", nil, nil
	}

	return creds.Token, creds.User, nil
}

func (f *FileCredentialStore) Save(token string, user *users.User) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	raw, err := json.MarshalIndent(persistedCredentials{Token: token, User: user}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// the file holds a bearer token, keep it owner-only
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	return nil
}

func (f *FileCredentialStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}

	return nil
}
