package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/ui/input/types"
)

// FormMode drives the login and register forms
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Back to explore
		return []types.Action{types.OpenPageAction{Page: types.PageProducts}}, true

	case tea.KeyTab, tea.KeyDown:
		return []types.Action{types.FormFocusAction{Delta: 1}}, true

	case tea.KeyShiftTab, tea.KeyUp:
		return []types.Action{types.FormFocusAction{Delta: -1}}, true

	case tea.KeyEnter:
		if ctx.FormOnLastField() {
			return []types.Action{types.FormSubmitAction{}}, true
		}
		return []types.Action{types.FormFocusAction{Delta: 1}}, true
	}

	return []types.Action{types.FormKeyAction{Key: msg}}, true
}
