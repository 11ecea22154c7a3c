package testutil

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"ttask/internal/service"
)

// FakeAuthenticator is an in-memory credential store for testing the
// login and register commands.
type FakeAuthenticator struct {
	mu     sync.Mutex
	users  map[string]fakeAccount // email -> account
	nextID int

	// Error injection for testing
	LoginErr    error
	RegisterErr error
}

type fakeAccount struct {
	password string
	user     service.User
}

// NewFakeAuthenticator creates an empty FakeAuthenticator.
func NewFakeAuthenticator() *FakeAuthenticator {
	return &FakeAuthenticator{
		users:  make(map[string]fakeAccount),
		nextID: 1,
	}
}

// AddUser seeds an account.
func (f *FakeAuthenticator) AddUser(email, password, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := strconv.Itoa(f.nextID)
	f.nextID++
	f.users[email] = fakeAccount{
		password: password,
		user:     service.User{ID: id, Email: email, Name: name},
	}
}

// Login implements service.Authenticator.
func (f *FakeAuthenticator) Login(ctx context.Context, email, password string) (service.Session, error) {
	if f.LoginErr != nil {
		return service.Session{}, f.LoginErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.users[email]
	if !ok || account.password != password {
		return service.Session{}, &StatusErr{Code: http.StatusUnauthorized, Msg: "Invalid email or password"}
	}
	return service.Session{Token: "token-" + account.user.ID, User: account.user}, nil
}

// Register implements service.Authenticator.
func (f *FakeAuthenticator) Register(ctx context.Context, email, password, name string) (service.Session, error) {
	if f.RegisterErr != nil {
		return service.Session{}, f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[email]; exists {
		return service.Session{}, &StatusErr{Code: http.StatusBadRequest, Msg: "User with this email already exists"}
	}
	id := strconv.Itoa(f.nextID)
	f.nextID++
	account := fakeAccount{
		password: password,
		user:     service.User{ID: id, Email: email, Name: name},
	}
	f.users[email] = account
	return service.Session{Token: "token-" + id, User: account.user}, nil
}
