// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ttask/internal/service"
)

// StatusErr is an error carrying an HTTP status, for fault injection.
// It implements service.StatusError.
type StatusErr struct {
	Code int
	Msg  string
}

func (e *StatusErr) Error() string   { return e.Msg }
func (e *StatusErr) HTTPStatus() int { return e.Code }

// NotFoundErr mimics the backend's task lookup failure.
func NotFoundErr() *StatusErr {
	return &StatusErr{Code: http.StatusNotFound, Msg: "Task not found"}
}

// FakeService is an in-memory implementation of service.Service for
// testing. Tasks list newest first, like the backend.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int
	now    time.Time

	// CreateCalls counts CreateTask invocations, so tests can assert
	// that validation failures never reach the backend.
	CreateCalls int

	// Error injection for testing
	ListTasksErr      error
	GetTaskErr        error
	CreateTaskErr     error
	UpdateTaskErr     error
	ToggleCompleteErr error
	DeleteTaskErr     error
}

// NewFakeService creates an empty FakeService with a fixed clock.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID: 1,
		now:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// AddTask seeds a task and returns its id.
func (f *FakeService) AddTask(title, description string, completed bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := strconv.Itoa(f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   f.now,
		UpdatedAt:   f.now,
		UserID:      "1",
	})
	return id
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, completed *bool) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	// Newest first
	var result []service.Task
	for i := len(f.tasks) - 1; i >= 0; i-- {
		t := f.tasks[i]
		if completed != nil && t.Completed != *completed {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id string) (service.Task, error) {
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, NotFoundErr()
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	id := strconv.Itoa(f.nextID)
	f.nextID++
	task := service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   f.now,
		UpdatedAt:   f.now,
		UserID:      "1",
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id, title, description string, completed bool) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = title
			f.tasks[i].Description = description
			f.tasks[i].Completed = completed
			f.tasks[i].UpdatedAt = f.now
			return f.tasks[i], nil
		}
	}
	return service.Task{}, NotFoundErr()
}

// ToggleComplete implements service.Service.
func (f *FakeService) ToggleComplete(ctx context.Context, id string) (service.Task, error) {
	if f.ToggleCompleteErr != nil {
		return service.Task{}, f.ToggleCompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = !t.Completed
			f.tasks[i].UpdatedAt = f.now
			return f.tasks[i], nil
		}
	}
	return service.Task{}, NotFoundErr()
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return NotFoundErr()
}
