// Package session owns the logged-in state of the storefront user.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"qkart/internal/domain"
	"qkart/internal/eventbus"
)

// MinCredentialLength is the shortest accepted username or password
const MinCredentialLength = 6

// Authenticator is the backend side of login and registration
type Authenticator interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (domain.Session, error)
}

// Manager holds the current session and performs the auth transitions.
// It is handed to the view layer instead of living in global storage.
type Manager struct {
	auth   Authenticator
	bus    eventbus.EventBus
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.Session
}

// NewManager creates a logged-out manager. bus and logger may be nil.
func NewManager(auth Authenticator, bus eventbus.EventBus, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		auth:   auth,
		bus:    bus,
		logger: logger.With("component", "session"),
	}
}

// Current returns a snapshot of the session
func (m *Manager) Current() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// LoggedIn reports whether a user is logged in
func (m *Manager) LoggedIn() bool {
	return m.Current().LoggedIn()
}

// Login validates the credentials, authenticates and switches to the new session
func (m *Manager) Login(ctx context.Context, username, password string) (domain.Session, error) {
	username = strings.TrimSpace(username)
	if err := ValidateLogin(username, password); err != nil {
		return domain.Session{}, err
	}

	s, err := m.auth.Login(ctx, username, password)
	if err != nil {
		m.logger.Warn("login failed", "username", username, "error", err)
		return domain.Session{}, fmt.Errorf("login failed: %w", err)
	}
	if s.Username == "" {
		s.Username = username
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.logger.Info("logged in", "username", s.Username)
	m.publish(eventbus.LoggedInEvent{Session: s})
	return s, nil
}

// Register validates the form and creates the account. It does not log in.
func (m *Manager) Register(ctx context.Context, username, password, confirm string) error {
	username = strings.TrimSpace(username)
	if err := ValidateRegistration(username, password, confirm); err != nil {
		return err
	}

	if err := m.auth.Register(ctx, username, password); err != nil {
		m.logger.Warn("registration failed", "username", username, "error", err)
		return fmt.Errorf("registration failed: %w", err)
	}

	m.logger.Info("registered", "username", username)
	m.publish(eventbus.RegisteredEvent{Username: username})
	return nil
}

// Logout ends the session. It is a no-op when nobody is logged in.
func (m *Manager) Logout() {
	m.mu.Lock()
	previous := m.current
	m.current = domain.Session{}
	m.mu.Unlock()

	if !previous.LoggedIn() {
		return
	}
	m.logger.Info("logged out", "username", previous.Username)
	m.publish(eventbus.LoggedOutEvent{Username: previous.Username})
}

func (m *Manager) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// ValidateLogin checks the login form before anything is sent
func ValidateLogin(username, password string) error {
	var result *multierror.Error
	if username == "" {
		result = multierror.Append(result, errors.New("username is a required field"))
	}
	if password == "" {
		result = multierror.Append(result, errors.New("password is a required field"))
	}
	return result.ErrorOrNil()
}

// ValidateRegistration checks the registration form, reporting every problem at once
func ValidateRegistration(username, password, confirm string) error {
	var result *multierror.Error
	switch {
	case username == "":
		result = multierror.Append(result, errors.New("username is a required field"))
	case len(username) < MinCredentialLength:
		result = multierror.Append(result, fmt.Errorf("username must be at least %d characters", MinCredentialLength))
	}
	switch {
	case password == "":
		result = multierror.Append(result, errors.New("password is a required field"))
	case len(password) < MinCredentialLength:
		result = multierror.Append(result, fmt.Errorf("password must be at least %d characters", MinCredentialLength))
	}
	if password != confirm {
		result = multierror.Append(result, errors.New("passwords do not match"))
	}
	return result.ErrorOrNil()
}

// Problems flattens a validation error into one message per problem
func Problems(err error) []string {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		out := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
