// Package service defines the backend-agnostic interfaces for session and
// task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All HTTP calls go through this interface. Commands never build
// requests directly.
type Service interface {
	// ListTasks returns the session user's tasks, newest first.
	// completed filters by completion state; nil means no filter.
	ListTasks(ctx context.Context, completed *bool) ([]Task, error)

	// GetTask returns a single task by id.
	GetTask(ctx context.Context, id string) (Task, error)

	// CreateTask creates a new task. An empty description is stored
	// as absent, not as an empty string.
	CreateTask(ctx context.Context, title, description string) (Task, error)

	// UpdateTask replaces a task's title, description, and completed
	// flag in full. Callers editing an existing task must pass through
	// its current completed value so the edit never resets it.
	UpdateTask(ctx context.Context, id, title, description string, completed bool) (Task, error)

	// ToggleComplete flips the task's completion flag server-side.
	// The caller does not need to know the current value.
	ToggleComplete(ctx context.Context, id string) (Task, error)

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id string) error
}

// Authenticator performs the credential exchange that establishes a session.
// A failed exchange leaves any existing session untouched; persisting the
// returned session is the caller's job.
type Authenticator interface {
	// Login exchanges email and password for a session.
	Login(ctx context.Context, email, password string) (Session, error)

	// Register creates an account and establishes a session in the
	// same exchange (auto-login).
	Register(ctx context.Context, email, password, name string) (Session, error)
}

// StatusError is implemented by backend errors that carry an HTTP status.
// Commands use it to tell auth rejections apart from other failures
// without importing the backend package.
type StatusError interface {
	error
	HTTPStatus() int
}
