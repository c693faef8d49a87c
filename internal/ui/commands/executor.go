package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/eventbus"
	"qkart/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. timeout bounds each auth request.
func NewExecutor(state *state.AppState, bus eventbus.EventBus, sessions Sessions, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:    state,
			Bus:      bus,
			Sessions: sessions,
			Timeout:  timeout,
		},
	}
}

// ExecuteLogin creates and executes a login command
func (e *Executor) ExecuteLogin(username, password string) tea.Cmd {
	cmd := NewLoginCommand(e.ctx, username, password)
	return cmd.Execute()
}

// ExecuteRegister creates and executes a register command
func (e *Executor) ExecuteRegister(username, password, confirm string) tea.Cmd {
	cmd := NewRegisterCommand(e.ctx, username, password, confirm)
	return cmd.Execute()
}

// ExecuteLogout creates and executes a logout command
func (e *Executor) ExecuteLogout() tea.Cmd {
	cmd := NewLogoutCommand(e.ctx)
	return cmd.Execute()
}
