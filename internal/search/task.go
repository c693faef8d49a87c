package search

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type taskState int

const (
	taskPending taskState = iota
	taskRunning
	taskCancelled
)

// Task is a deferred call owned by whoever scheduled it.
// Once Cancel returns true the call is guaranteed never to run.
type Task struct {
	mu    sync.Mutex
	state taskState
	timer *clock.Timer
}

// Schedule runs fn on its own goroutine after d, unless the task is cancelled first
func Schedule(c clock.Clock, d time.Duration, fn func()) *Task {
	t := &Task{}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = c.AfterFunc(d, func() {
		t.mu.Lock()
		if t.state != taskPending {
			t.mu.Unlock()
			return
		}
		t.state = taskRunning
		t.mu.Unlock()
		fn()
	})
	return t
}

// Cancel stops the task. It returns false when the call already started or the
// task was cancelled before; calling it again is a no-op.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != taskPending {
		return false
	}
	t.state = taskCancelled
	t.timer.Stop()
	return true
}

// Fired reports whether the call has started
func (t *Task) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == taskRunning
}
