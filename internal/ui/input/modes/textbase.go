package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/ui/input/types"
)

// TextInputMode is a base for modes that type into a shared text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Mode returns the input mode this base serves
func (m TextInputMode) Mode() types.Mode {
	return m.mode
}

// Prompt returns the label shown in front of the input
func (m TextInputMode) Prompt() string {
	return m.prompt
}

// Enter focuses the input without clearing it, so an earlier query can be refined
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter":
		// Leave the field; the query stays as typed
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	default:
		// Not consumed: the handler feeds the key to the text input
		return nil, false
	}
}
