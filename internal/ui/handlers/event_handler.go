package handlers

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/eventbus"
	"qkart/internal/ui/state"
)

// Status line texts for session changes
const (
	LoggedInMessage  = "Logged in successfully"
	LoggedOutMessage = "Logged out"
)

// RegisteredMessage is the status line after username registered
func RegisteredMessage(username string) string {
	return fmt.Sprintf("Registered successfully as %s. Please log in.", username)
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	logger *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		state:  appState,
		logger: logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoggedInEvent:
		h.state.SetStatus(LoggedInMessage, false)

	case eventbus.RegisteredEvent:
		h.state.SetStatus(RegisteredMessage(e.Username), false)

	case eventbus.LoggedOutEvent:
		h.state.SetStatus(LoggedOutMessage, false)

	case eventbus.ErrorEvent:
		h.state.SetStatus(e.Message, true)

	case eventbus.ConfigLoadedEvent:
		h.logger.Debug("config loaded", "path", e.Path, "base_url", e.BaseURL)

	case eventbus.ConfigSavedEvent:
		h.logger.Debug("config saved", "path", e.Path)
	}

	return nil
}
