// Package client provides a typed HTTP client for the taskwell API, used
// by the command line interface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/api"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// defaultTimeout bounds every request issued by the client.
const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the server, carrying the status code
// and the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client talks to a taskwell API server. A zero token makes unauthenticated
// requests; WithToken returns a copy that sends the token as a Bearer
// credential.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a Client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// WithToken returns a copy of the client that authenticates with the given
// session token.
func (c *Client) WithToken(token string) *Client {
	copied := *c
	copied.token = token
	return &copied
}

// Register creates a new account and returns the session token alongside
// the created user.
func (c *Client) Register(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", api.RegisterRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", api.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the account the session token belongs to.
func (c *Client) Me(ctx context.Context) (*api.UserResponse, error) {
	var resp api.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListTasks fetches one page of the caller's tasks. Zero-valued fields of
// params are left to the server's defaults.
func (c *Client) ListTasks(ctx context.Context, params store.ListParams) (*api.TaskListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	path := "/api/tasks"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.TaskListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id.String(), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task. An empty status lets the server default it.
func (c *Client) CreateTask(ctx context.Context, title, description, status string) (*domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", api.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task. Nil fields are left
// unchanged on the server.
func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, update api.UpdateTaskRequest) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id.String(), update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id.String(), nil, nil)
}

// do sends one JSON request and decodes the response into out when out is
// non-nil. Non-2xx responses become an *APIError with the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError turns an error response into an *APIError, falling back
// to the HTTP status text when the body carries no message.
func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(res.StatusCode)
	}
	return apiErr
}
