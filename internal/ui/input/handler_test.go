package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qkart/internal/domain"
	"qkart/internal/search"
	"qkart/internal/ui/form"
	"qkart/internal/ui/input/types"
	"qkart/internal/ui/state"
)

type fakeSession bool

func (f fakeSession) LoggedIn() bool { return bool(f) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func productsContext(loggedIn bool, products ...domain.Product) *ModelContext {
	s := state.NewAppState()
	s.ApplyResult(search.Settled("", products, nil))
	return &ModelContext{State: s, Session: fakeSession(loggedIn)}
}

func updates(actions []types.Action) []string {
	var out []string
	for _, a := range actions {
		if u, ok := a.(types.UpdateTextAction); ok {
			out = append(out, u.Text)
		}
	}
	return out
}

func TestTypingInSearchEmitsEveryKeystroke(t *testing.T) {
	h := New()
	ctx := productsContext(false)

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, actions)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.Searching())

	var typed []string
	for _, r := range "pho" {
		actions, _ = h.HandleKey(runes(string(r)), ctx)
		typed = append(typed, updates(actions)...)
	}
	assert.Equal(t, []string{"p", "ph", "pho"}, typed)

	actions, _ = h.HandleKey(key(tea.KeyBackspace), ctx)
	assert.Equal(t, []string{"ph"}, updates(actions))
}

func TestEscLeavesSearchKeepingText(t *testing.T) {
	h := New()
	ctx := productsContext(false)

	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("b"), ctx)
	h.HandleKey(runes("a"), ctx)

	actions, _ := h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Empty(t, updates(actions))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "ba", h.SearchInput().Value())
	assert.False(t, h.SearchInput().Focused())

	// Re-entering continues the same query
	h.HandleKey(runes("/"), ctx)
	actions, _ = h.HandleKey(runes("l"), ctx)
	assert.Equal(t, []string{"bal"}, updates(actions))
}

func TestCursorKeysInSearchEmitNoUpdate(t *testing.T) {
	h := New()
	ctx := productsContext(false)
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)

	actions, _ := h.HandleKey(key(tea.KeyLeft), ctx)
	assert.Empty(t, updates(actions))
}

func TestNormalModeKeys(t *testing.T) {
	products := []domain.Product{{ID: "p1", Name: "Basketball"}, {ID: "p2", Name: "Bat"}}

	tests := []struct {
		name     string
		loggedIn bool
		msg      tea.KeyMsg
		want     []types.Action
	}{
		{"down arrow", false, key(tea.KeyDown), []types.Action{types.NavigateAction{Direction: "down"}}},
		{"l moves right", false, runes("l"), []types.Action{types.NavigateAction{Direction: "right"}}},
		{"G goes to end", false, runes("G"), []types.Action{types.NavigateAction{Direction: "end"}}},
		{"enter opens details", false, key(tea.KeyEnter), []types.Action{types.OpenDetailsAction{ProductID: "p1"}}},
		{"login page", false, runes("L"), []types.Action{types.OpenPageAction{Page: types.PageLogin}}},
		{"register page", false, runes("R"), []types.Action{types.OpenPageAction{Page: types.PageRegister}}},
		{"login hidden when logged in", true, runes("L"), nil},
		{"logout asks first", true, runes("O"), []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmLogout}}},
		{"logout ignored when logged out", false, runes("O"), nil},
		{"help", false, runes("?"), []types.Action{types.ToggleHelpAction{}}},
		{"quit", false, runes("q"), []types.Action{types.QuitAction{}}},
		{"ctrl+c", false, key(tea.KeyCtrlC), []types.Action{types.QuitAction{Force: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, productsContext(tt.loggedIn, products...))
			assert.Equal(t, tt.want, actions)
		})
	}
}

func TestEnterWithoutProductsDoesNothing(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(key(tea.KeyEnter), productsContext(false))
	assert.Empty(t, actions)
}

func TestDoubleGGoesHome(t *testing.T) {
	h := New()
	ctx := productsContext(false)

	actions, _ := h.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestConfirmLogout(t *testing.T) {
	h := New()
	ctx := productsContext(true)

	h.HandleKey(runes("O"), ctx)
	require.Equal(t, types.ModeConfirmLogout, h.CurrentMode())

	// Unrelated keys are swallowed
	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{
		types.LogoutAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	h.HandleKey(runes("O"), ctx)
	actions, _ = h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)
}

func TestFormMode(t *testing.T) {
	h := New()
	f := form.NewLoginForm()
	ctx := &ModelContext{State: state.NewAppState(), Form: f, Session: fakeSession(false)}
	ctx.State.Page = state.PageLogin
	h.SetMode(types.ModeForm, ctx)

	actions, _ := h.HandleKey(key(tea.KeyTab), ctx)
	assert.Equal(t, []types.Action{types.FormFocusAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyShiftTab), ctx)
	assert.Equal(t, []types.Action{types.FormFocusAction{Delta: -1}}, actions)

	// Enter moves on until the last field, then submits
	actions, _ = h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.FormFocusAction{Delta: 1}}, actions)
	f.Move(1)
	actions, _ = h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.FormSubmitAction{}}, actions)

	actions, _ = h.HandleKey(runes("L"), ctx)
	assert.Equal(t, []types.Action{types.FormKeyAction{Key: runes("L")}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{types.OpenPageAction{Page: types.PageProducts}}, actions)
}
