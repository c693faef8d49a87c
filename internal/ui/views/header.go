package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header labels
const (
	LabelLogin         = "Login"
	LabelRegister      = "Register"
	LabelLogout        = "Logout"
	LabelBackToExplore = "Back to explore"
)

// HeaderRenderer renders the top bar: logo, search field and auth buttons
type HeaderRenderer struct {
	styles *Styles
}

// NewHeaderRenderer creates a new header renderer
func NewHeaderRenderer(styles *Styles) *HeaderRenderer {
	return &HeaderRenderer{
		styles: styles,
	}
}

// AuthButtons returns the header buttons for the page and session
func AuthButtons(page string, loggedIn bool, username string) []string {
	switch {
	case page != PageProducts:
		return []string{"← " + LabelBackToExplore}
	case loggedIn:
		return []string{username, LabelLogout}
	default:
		return []string{LabelLogin, LabelRegister}
	}
}

// RenderHeader renders the header across width
func (h *HeaderRenderer) RenderHeader(state ViewState, width int) string {
	logo := h.styles.Logo.Render("QKart")

	middle := ""
	if state.Page == PageProducts {
		box := h.styles.SearchBox
		if state.SearchFocused {
			box = h.styles.SearchFocused
		}
		middle = box.Render(state.SearchView)
	}

	buttons := AuthButtons(state.Page, state.LoggedIn, state.Username)
	rendered := make([]string, 0, len(buttons))
	for i, b := range buttons {
		switch {
		case state.Page == PageProducts && state.LoggedIn && i == 0:
			rendered = append(rendered, h.styles.Username.Render(b))
		case i == len(buttons)-1 && len(buttons) > 1 && !state.LoggedIn:
			rendered = append(rendered, h.styles.ButtonPrimary.Render(b))
		default:
			rendered = append(rendered, h.styles.Button.Render(b))
		}
	}
	right := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	leftGap := gap / 2
	spacerL := strings.Repeat(" ", leftGap)
	spacerR := strings.Repeat(" ", gap-leftGap)

	line := lipgloss.JoinHorizontal(lipgloss.Center, logo, spacerL, middle, spacerR, right)
	return h.styles.Header.Render(line)
}
