package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/ui/input/types"
)

// SearchMode types into the search field. Leaving it keeps the query.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search for items/categories", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyDown, tea.KeyTab:
		// Jump from the search field into the product grid
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
