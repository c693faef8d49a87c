package ui

import (
	"qkart/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// SearchUpdatedMsg tells the model the search pipeline published a new result.
// It carries nothing; the model reads the pipeline's current result.
type SearchUpdatedMsg struct{}

// detailsPagerMsg reports that the details pager closed
type detailsPagerMsg struct {
	productID string
	err       error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
