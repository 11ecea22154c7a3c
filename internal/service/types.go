package service

import "time"

// User is the profile of an account on the task tracker.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session pairs a bearer token with the profile it authenticates.
// The two always travel together; a token without a profile (or the
// reverse) is never a session.
type Session struct {
	Token string
	User  User
}

// Task represents a single task item owned by a user.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	DueDate     *time.Time // not stored by the backend; nil in practice
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      string
}
