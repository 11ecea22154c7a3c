package taskapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ttask/internal/service"
)

// credentials is the request body for both auth exchanges.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// authResponse is the success shape of login and register.
type authResponse struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

// wireUser is a backend user record. Ids arrive as numbers from the auth
// endpoints but as strings on task records, so both are accepted.
type wireUser struct {
	ID    stringID `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
}

func (w wireUser) normalize() service.User {
	return service.User{ID: string(w.ID), Email: w.Email, Name: w.Name}
}

// wireTask is a backend task record: snake_case fields, numeric id,
// nullable description, zone-less UTC timestamps.
type wireTask struct {
	ID          stringID `json:"id"`
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Completed   bool     `json:"completed"`
	DueDate     *apiTime `json:"due_date"`
	CreatedAt   apiTime  `json:"created_at"`
	UpdatedAt   apiTime  `json:"updated_at"`
}

func (w wireTask) normalize() service.Task {
	t := service.Task{
		ID:        string(w.ID),
		Title:     w.Title,
		Completed: w.Completed,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
		UserID:    w.UserID,
	}
	if w.Description != nil {
		t.Description = *w.Description
	}
	if w.DueDate != nil && !w.DueDate.Time.IsZero() {
		due := w.DueDate.Time
		t.DueDate = &due
	}
	return t
}

// taskPayload is the request body for create and update. Description is a
// pointer so an empty value marshals as explicit null rather than being
// omitted; Completed is only sent on full updates.
type taskPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed,omitempty"`
}

// stringID decodes a JSON string or number id into its string form.
type stringID string

func (s *stringID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = stringID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unrecognized id: %s", data)
	}
	*s = stringID(n.String())
	return nil
}

// apiTime accepts both RFC 3339 timestamps and the backend's zone-less
// ISO form (naive UTC), which encoding/json's time.Time rejects.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp: %q", s)
}
