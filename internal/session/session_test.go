package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qkart/internal/api"
	"qkart/internal/eventbus"
	"qkart/internal/logging"
	"qkart/internal/mockapi"
)

func newManager(t *testing.T) (*Manager, eventbus.EventBus, *mockapi.Server) {
	t.Helper()
	backend := mockapi.New(nil, logging.Discard())
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL+mockapi.Prefix, api.WithLogger(logging.Discard()))
	require.NoError(t, err)

	bus := eventbus.New(logging.Discard())
	t.Cleanup(bus.Close)

	return NewManager(client, bus, logging.Discard()), bus, backend
}

func expectEvent(t *testing.T, ch <-chan eventbus.DomainEvent) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("no event published")
		return nil
	}
}

func TestLoginAndLogout(t *testing.T) {
	m, bus, backend := newManager(t)
	backend.AddUser("crio-user", "learnbydoing")

	events := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventLoggedIn, func(e eventbus.DomainEvent) { events <- e })
	bus.Subscribe(eventbus.EventLoggedOut, func(e eventbus.DomainEvent) { events <- e })

	assert.False(t, m.LoggedIn())

	s, err := m.Login(context.Background(), " crio-user ", "learnbydoing")
	require.NoError(t, err)
	assert.Equal(t, "crio-user", s.Username)
	assert.Equal(t, mockapi.StartingBalance, s.Balance)
	assert.True(t, m.LoggedIn())
	assert.Equal(t, s, m.Current())

	in := expectEvent(t, events).(eventbus.LoggedInEvent)
	assert.Equal(t, "crio-user", in.Session.Username)

	m.Logout()
	assert.False(t, m.LoggedIn())
	out := expectEvent(t, events).(eventbus.LoggedOutEvent)
	assert.Equal(t, "crio-user", out.Username)
}

func TestLogoutWhenLoggedOutPublishesNothing(t *testing.T) {
	m, bus, _ := newManager(t)

	events := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventLoggedOut, func(e eventbus.DomainEvent) { events <- e })

	m.Logout()
	select {
	case <-events:
		t.Fatal("unexpected LoggedOut event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLoginFailureKeepsLoggedOut(t *testing.T) {
	m, _, backend := newManager(t)
	backend.AddUser("crio-user", "learnbydoing")

	_, err := m.Login(context.Background(), "crio-user", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
	assert.Equal(t, "Password is incorrect", api.Message(err, ""))
	assert.False(t, m.LoggedIn())
}

func TestLoginValidatesBeforeCallingBackend(t *testing.T) {
	m, _, backend := newManager(t)

	_, err := m.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, []string{"username is a required field", "password is a required field"}, Problems(err))
	assert.Equal(t, 0, backend.Hits("login"))
}

func TestRegister(t *testing.T) {
	m, bus, backend := newManager(t)

	events := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventRegistered, func(e eventbus.DomainEvent) { events <- e })

	require.NoError(t, m.Register(context.Background(), "newbie1", "secret1", "secret1"))
	ev := expectEvent(t, events).(eventbus.RegisteredEvent)
	assert.Equal(t, "newbie1", ev.Username)
	assert.False(t, m.LoggedIn(), "registering does not log in")

	err := m.Register(context.Background(), "newbie1", "secret1", "secret1")
	require.Error(t, err)
	assert.Equal(t, "Username is already taken", api.Message(err, ""))
	assert.Equal(t, 2, backend.Hits("register"))
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		want     []string
	}{
		{"valid", "crio-user", "learnbydoing", "learnbydoing", nil},
		{"empty", "", "", "", []string{"username is a required field", "password is a required field"}},
		{"short", "abc", "abc", "abc", []string{"username must be at least 6 characters", "password must be at least 6 characters"}},
		{"mismatch", "crio-user", "learnbydoing", "learnbyreading", []string{"passwords do not match"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Problems(ValidateRegistration(tt.username, tt.password, tt.confirm)))
		})
	}
}
