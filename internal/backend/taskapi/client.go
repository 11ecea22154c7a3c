// Package taskapi implements the service interfaces against the task
// tracker's REST API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ttask/internal/service"
)

// APITimeout bounds each request.
const APITimeout = 10 * time.Second

// Client implements service.Service and service.Authenticator over HTTP.
// Every task request carries the session's bearer token; the auth
// exchanges carry none.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a client for the given backend. token may be empty for a
// client that only performs the login/register exchange.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{},
	}
}

// Login exchanges email and password for a session.
func (c *Client) Login(ctx context.Context, email, password string) (service.Session, error) {
	return c.exchange(ctx, "/api/auth/login", credentials{Email: email, Password: password}, "login failed")
}

// Register creates an account; the server establishes a session in the
// same exchange.
func (c *Client) Register(ctx context.Context, email, password, name string) (service.Session, error) {
	return c.exchange(ctx, "/api/auth/register", credentials{Email: email, Password: password, Name: name}, "registration failed")
}

func (c *Client) exchange(ctx context.Context, path string, creds credentials, fallback string) (service.Session, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, creds, &resp, fallback, false); err != nil {
		return service.Session{}, err
	}
	if resp.Token == "" {
		return service.Session{}, fmt.Errorf("%s: response carried no token", fallback)
	}
	return service.Session{Token: resp.Token, User: resp.User.normalize()}, nil
}

// ListTasks returns the session user's tasks in server order (newest
// first). completed filters by completion state; nil means no filter.
func (c *Client) ListTasks(ctx context.Context, completed *bool) ([]service.Task, error) {
	path := "/api/tasks"
	if completed != nil {
		path += "?completed=" + url.QueryEscape(strconv.FormatBool(*completed))
	}
	var resp struct {
		Tasks []wireTask `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, "failed to fetch tasks", true); err != nil {
		return nil, err
	}
	tasks := make([]service.Task, len(resp.Tasks))
	for i, w := range resp.Tasks {
		tasks[i] = w.normalize()
	}
	return tasks, nil
}

// GetTask returns a single task by id.
func (c *Client) GetTask(ctx context.Context, id string) (service.Task, error) {
	var w wireTask
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil, &w, "failed to fetch task", true); err != nil {
		return service.Task{}, err
	}
	return w.normalize(), nil
}

// CreateTask posts a new task. An empty description is sent as explicit
// JSON null, never omitted.
func (c *Client) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	body := taskPayload{Title: title, Description: nullable(description)}
	var w wireTask
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &w, "failed to create task", true); err != nil {
		return service.Task{}, err
	}
	return w.normalize(), nil
}

// UpdateTask puts full replacement fields, including the completed flag.
func (c *Client) UpdateTask(ctx context.Context, id, title, description string, completed bool) (service.Task, error) {
	body := taskPayload{Title: title, Description: nullable(description), Completed: &completed}
	var w wireTask
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), body, &w, "failed to update task", true); err != nil {
		return service.Task{}, err
	}
	return w.normalize(), nil
}

// ToggleComplete flips the task's completion flag server-side.
func (c *Client) ToggleComplete(ctx context.Context, id string) (service.Task, error) {
	var w wireTask
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+url.PathEscape(id)+"/complete", nil, &w, "failed to update task", true); err != nil {
		return service.Task{}, err
	}
	return w.normalize(), nil
}

// DeleteTask removes a task. The backend answers 204 with no body.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil, "failed to delete task", true)
}

// do issues one request and decodes the response into out when out is
// non-nil. Non-2xx statuses become an *APIError carrying the message
// extracted from the backend's error envelope, defaulting to fallback.
// fallback also prefixes transport errors.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string, authed bool) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", fallback, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", fallback, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res.StatusCode, data, fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", fallback, err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
