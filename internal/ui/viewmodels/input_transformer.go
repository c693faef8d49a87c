package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"qkart/internal/ui/input/types"
)

// InputTransformer turns the input handler's mode into view flags
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// SearchView returns the rendered search field. It keeps its text when unfocused.
func (it *InputTransformer) SearchView() string {
	return it.textInput.View()
}

// SearchFocused reports whether keys go to the search field
func (it *InputTransformer) SearchFocused() bool {
	return it.mode == types.ModeSearch
}

// ConfirmingLogout reports whether the logout question is open
func (it *InputTransformer) ConfirmingLogout() bool {
	return it.mode == types.ModeConfirmLogout
}
