package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qkart/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventLoggedIn, func(e DomainEvent) { got <- e })

	b.Publish(LoggedInEvent{Session: domain.Session{Username: "crio-user", Token: "t"}})

	select {
	case e := <-got:
		ev, ok := e.(LoggedInEvent)
		require.True(t, ok)
		assert.Equal(t, "crio-user", ev.Session.Username)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var loggedOut atomic.Int32
	var loggedIn atomic.Int32
	b.Subscribe(EventLoggedOut, func(DomainEvent) { loggedOut.Add(1) })
	b.Subscribe(EventLoggedIn, func(DomainEvent) { loggedIn.Add(1) })

	b.Publish(LoggedOutEvent{Username: "someone"})

	require.Eventually(t, func() bool { return loggedOut.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), loggedIn.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventRegistered, func(DomainEvent) { calls.Add(1) })
	unsubscribe()

	b.Publish(RegisteredEvent{Username: "newbie"})
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var after atomic.Int32
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { after.Add(1) })

	b.Publish(ErrorEvent{Message: "x"})

	require.Eventually(t, func() bool { return after.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)

	var calls atomic.Int32
	b.Subscribe(EventLoggedOut, func(DomainEvent) { calls.Add(1) })
	b.Close()

	b.Publish(LoggedOutEvent{})
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(0), calls.Load())
}
