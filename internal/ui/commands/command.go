package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"

	"qkart/internal/api"
	"qkart/internal/domain"
	"qkart/internal/eventbus"
	"qkart/internal/session"
	"qkart/internal/ui/state"
)

// GenericFailure is shown when the backend gave no message of its own
const GenericFailure = "Something went wrong. Check that the backend is running, reachable and returns valid JSON."

// Sessions is the session manager as seen by the commands
type Sessions interface {
	Current() domain.Session
	LoggedIn() bool
	Login(ctx context.Context, username, password string) (domain.Session, error)
	Register(ctx context.Context, username, password, confirm string) error
	Logout()
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State    *state.AppState
	Bus      eventbus.EventBus
	Sessions Sessions
	Timeout  time.Duration
}

func (c *CommandContext) requestContext() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

func (c *CommandContext) publishError(err error) {
	if c.Bus != nil {
		c.Bus.Publish(eventbus.ErrorEvent{Message: ErrorMessage(err), Err: err})
	}
}

// AuthKind says which form an AuthResultMsg answers
type AuthKind int

const (
	AuthLogin AuthKind = iota
	AuthRegister
)

// AuthResultMsg reports the outcome of a login or registration
type AuthResultMsg struct {
	Kind     AuthKind
	Username string
	Err      error
}

// LoginCommand logs a user in
type LoginCommand struct {
	ctx      *CommandContext
	username string
	password string
}

// NewLoginCommand creates a new login command
func NewLoginCommand(ctx *CommandContext, username, password string) *LoginCommand {
	return &LoginCommand{
		ctx:      ctx,
		username: username,
		password: password,
	}
}

// Execute marks the form as submitting and logs in off the UI goroutine
func (c *LoginCommand) Execute() tea.Cmd {
	c.ctx.State.Submitting = true
	return func() tea.Msg {
		ctx, cancel := c.ctx.requestContext()
		defer cancel()

		s, err := c.ctx.Sessions.Login(ctx, c.username, c.password)
		if err != nil {
			c.ctx.publishError(err)
			return AuthResultMsg{Kind: AuthLogin, Username: c.username, Err: err}
		}
		return AuthResultMsg{Kind: AuthLogin, Username: s.Username}
	}
}

// RegisterCommand creates an account
type RegisterCommand struct {
	ctx      *CommandContext
	username string
	password string
	confirm  string
}

// NewRegisterCommand creates a new register command
func NewRegisterCommand(ctx *CommandContext, username, password, confirm string) *RegisterCommand {
	return &RegisterCommand{
		ctx:      ctx,
		username: username,
		password: password,
		confirm:  confirm,
	}
}

// Execute marks the form as submitting and registers off the UI goroutine
func (c *RegisterCommand) Execute() tea.Cmd {
	c.ctx.State.Submitting = true
	return func() tea.Msg {
		ctx, cancel := c.ctx.requestContext()
		defer cancel()

		username := strings.TrimSpace(c.username)
		if err := c.ctx.Sessions.Register(ctx, username, c.password, c.confirm); err != nil {
			c.ctx.publishError(err)
			return AuthResultMsg{Kind: AuthRegister, Username: username, Err: err}
		}
		return AuthResultMsg{Kind: AuthRegister, Username: username}
	}
}

// LogoutCommand ends the session
type LogoutCommand struct {
	ctx *CommandContext
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(ctx *CommandContext) *LogoutCommand {
	return &LogoutCommand{ctx: ctx}
}

// Execute logs out synchronously; the session publishes LoggedOut
func (c *LogoutCommand) Execute() tea.Cmd {
	c.ctx.Sessions.Logout()
	return nil
}

// ErrorMessage renders an auth error for the status line
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return strings.Join(session.Problems(merr), "; ")
	}
	if api.IsBackend(err) && api.StatusCode(err) < 500 {
		return api.Message(err, GenericFailure)
	}
	return GenericFailure
}
