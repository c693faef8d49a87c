package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/ui/input/modes"
	"qkart/internal/ui/input/types"
)

// Handler routes key presses to the active mode and turns them into actions
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // the search field
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search for items/categories"
	ti.CharLimit = 128
	ti.Width = 40

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeConfirmLogout] = modes.NewConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if c := h.switchMode(changeMode.Mode, ctx, &allActions); c != nil {
			cmd = c
		}
		// The model needs to see mode changes too, e.g. to leave a page
		allActions = append(allActions, action)
	}

	// Keys the text mode did not claim are typed into the field
	if !consumed && h.isTextMode(h.currentMode) {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context, out *[]types.Action) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	if old := h.modes[h.currentMode]; old != nil {
		*out = append(*out, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		*out = append(*out, next.Enter(ctx)...)
	}
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

// SetMode switches mode outside of a key press, e.g. when a page opens
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	h.switchMode(mode, ctx, &out)
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// SearchInput returns the search field, focused or not
func (h *Handler) SearchInput() *textinput.Model {
	return h.textInput
}

// Searching reports whether keys currently go to the search field
func (h *Handler) Searching() bool {
	return h.isTextMode(h.currentMode)
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for the search field, like cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
