package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoggedIn     EventType = "LoggedIn"
	EventLoggedOut    EventType = "LoggedOut"
	EventRegistered   EventType = "Registered"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoggedInEvent is emitted after a successful login
type LoggedInEvent struct {
	Session Session
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted when the user logs out
type LoggedOutEvent struct {
	Username string
}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// RegisteredEvent is emitted when a new account was created
type RegisteredEvent struct {
	Username string
}

func (e RegisteredEvent) Type() EventType { return EventRegistered }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
