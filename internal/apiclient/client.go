package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"codeberg.org/metawork/server/metawork/users"
)

const requestTimeout = 15 * time.Second

// manages HTTP requests to the metawork REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new API client. The endpoint defaults to the local dev
// server and can be overridden with METAWORK_API_ENDPOINT.
func New() *Client {
	endpoint := os.Getenv("METAWORK_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// creates a local account and returns the issued token
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var result AuthResult

	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, "", &result)

	if err != nil {
		return nil, err
	}

	return &result, nil
}

// exchanges credentials for a token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult

	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, "", &result)

	if err != nil {
		return nil, err
	}

	return &result, nil
}

// resolves a bearer token to the user it identifies
func (c *Client) CurrentUser(ctx context.Context, token string) (*users.User, error) {
	var result userResponse

	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, token, &result); err != nil {
		return nil, err
	}

	return result.User, nil
}

// tells the server to drop its OAuth session cookie. Token invalidation
// is purely client-side, so failures here are not fatal.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, "", nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, token string, out any) error {
	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
			return &APIError{Status: resp.StatusCode, Code: errResp.Error, Message: errResp.Message}
		}

		return &APIError{Status: resp.StatusCode, Code: "server_error", Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
