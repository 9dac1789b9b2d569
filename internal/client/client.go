// Package client is the Go client for the credvault API: a thin typed
// transport plus a local store that mirrors the server-side record list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/credvault/credvault-backend/internal/projects/domain"
)

// ErrNetwork marks failures where the HTTP exchange itself did not
// complete. API-level failures are reported as *APIError instead.
var ErrNetwork = errors.New("network error")

// APIError is a failure the server reported with a status code and a
// human-readable message. Success and failure are discriminated by status
// code alone, never by sniffing the payload shape.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Client talks to the credvault HTTP API with a fixed bearer credential.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// List fetches all projects owned by the caller, newest first.
func (c *Client) List(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create persists a new project and returns the stored record.
func (c *Client) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodPost, "/projects", body(in), http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites all editable fields of the record and returns it.
func (c *Client) Update(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+id, body(in), http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete permanently removes the record.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, http.StatusOK, nil)
}

type wireInput struct {
	ProjectName       string `json:"projectName"`
	CloneLink         string `json:"cloneLink"`
	AuthorizationPass string `json:"authorizationPass"`
	FrontendEnv       string `json:"frontendEnv"`
	BackendEnv        string `json:"backendEnv"`
}

func body(in domain.ProjectInput) any {
	return wireInput{
		ProjectName:       in.ProjectName,
		CloneLink:         in.CloneLink,
		AuthorizationPass: in.AuthorizationPass,
		FrontendEnv:       in.FrontendEnv,
		BackendEnv:        in.BackendEnv,
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload any, wantStatus int, out any) error {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
		}
	}
	return nil
}
