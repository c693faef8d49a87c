//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the catalog")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.Quit())

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "q should exit cleanly")
	case <-time.After(3 * time.Second):
		tf.DumpTailOnFail(t, "exit", 4096)
		t.Fatal("Application did not exit after q")
	}
}

func TestApplicationExitWhileSearching(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	// q is text while the search box has focus; ctrl+c still quits
	require.NoError(t, tf.Search("q"))
	require.NoError(t, tf.SendCtrlC())

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		tf.DumpTailOnFail(t, "exit-search", 4096)
		t.Fatal("Application did not exit after ctrl+c")
	}
}
