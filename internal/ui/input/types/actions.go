package types

import tea "github.com/charmbracelet/bubbletea"

// Page names used by OpenPageAction
const (
	PageProducts = "products"
	PageLogin    = "login"
	PageRegister = "register"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Page actions
type OpenPageAction struct {
	Page string
}

func (a OpenPageAction) Type() string { return "open_page" }

type OpenDetailsAction struct {
	ProductID string
}

func (a OpenDetailsAction) Type() string { return "open_details" }

// Session actions
type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

// Form actions
type FormFocusAction struct {
	Delta int
}

func (a FormFocusAction) Type() string { return "form_focus" }

type FormSubmitAction struct{}

func (a FormSubmitAction) Type() string { return "form_submit" }

// FormKeyAction carries a key the focused form field should receive
type FormKeyAction struct {
	Key tea.KeyMsg
}

func (a FormKeyAction) Type() string { return "form_key" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
