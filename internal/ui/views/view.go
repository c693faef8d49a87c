package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qkart/internal/domain"
	"qkart/internal/search"
	"qkart/internal/ui/logic"
)

// Page names as rendered by the view layer
const (
	PageProducts = "products"
	PageLogin    = "login"
	PageRegister = "register"
)

// Fixed texts of the products page
const (
	HeroText    = "FASTEST DELIVERY to your door step"
	LoadingText = "Loading Products..."
	EmptyText   = "No Products Found"
	FooterText  = "QKart is your one stop solution to buy the latest trending items with India's Fastest Delivery to your doorstep"
	HelpHint    = "Press ? for help"
)

// Lines the products page spends outside the card grid
const (
	chromeLines = 2 + 4 + 1 + 3 // padding, header, gap, footer and status
	heroLines   = 4
)

// GridArea returns the width and height left for the card grid
func GridArea(width, height int, showHero bool) (int, int) {
	w := width - 4
	h := height - chromeLines
	if showHero {
		h -= heroLines
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Page   string

	LoggedIn bool
	Username string
	Balance  int

	SearchView    string
	SearchFocused bool
	Query         string
	ShowHero      bool

	Status        search.Status
	FailureReason string
	Products      []domain.Product
	SelectedIndex int
	ViewportRow   int
	Columns       int
	VisibleRows   int
	Spinner       string

	Form FormView

	StatusMessage string
	StatusIsError bool
	ConfirmLogout bool
	ShowHelp      bool
	ShortHelp     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	cardRender   *CardRenderer
	headerRender *HeaderRenderer
	formRender   *FormRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		cardRender:   NewCardRenderer(styles),
		headerRender: NewHeaderRenderer(styles),
		formRender:   NewFormRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	innerWidth := width - 4

	content := &strings.Builder{}
	content.WriteString(r.headerRender.RenderHeader(state, innerWidth))
	content.WriteString("\n")

	switch state.Page {
	case PageLogin, PageRegister:
		content.WriteString("\n")
		content.WriteString(r.formRender.RenderForm(state.Form, state.Spinner, innerWidth))
	default:
		if state.ShowHero {
			content.WriteString(r.renderHero(innerWidth))
			content.WriteString("\n")
		}
		content.WriteString(r.renderProducts(state, innerWidth))
	}

	// Bottom block: footer, status line and key hints
	var bottom []string
	bottom = append(bottom, r.styles.Footer.Render(truncate(FooterText, innerWidth)))
	bottom = append(bottom, r.renderStatusLine(state))
	if !state.ShowHelp {
		hint := r.styles.Help.Render(HelpHint)
		if state.ShortHelp != "" {
			hint = state.ShortHelp + r.styles.Help.Render(" • "+HelpHint)
		}
		bottom = append(bottom, hint)
	}

	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - len(bottom); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(strings.Join(bottom, "\n"))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, RenderHelpContent(), state.Height, state.Width, r.styles.InfoBox)
	}
	return finalContent
}

func (r *Renderer) renderHero(width int) string {
	text := r.styles.HeroAccent.Render("India's ") +
		r.styles.Hero.UnsetPadding().UnsetMargins().Foreground(lipgloss.Color("86")).Render("FASTEST DELIVERY") +
		r.styles.HeroAccent.Render(" to your door step")
	return r.styles.Hero.Width(width).Align(lipgloss.Center).Render(text)
}

// renderProducts renders the body of the products page for the current result
func (r *Renderer) renderProducts(state ViewState, width int) string {
	switch state.Status {
	case search.StatusLoading:
		return r.centered(fmt.Sprintf("%s %s", state.Spinner, LoadingText), width)
	case search.StatusEmpty:
		return r.centered(EmptyText, width)
	case search.StatusFailed:
		reason := state.FailureReason
		if reason == "" {
			reason = search.FailureReason
		}
		return r.centered(EmptyText, width) + "\n" +
			lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.StatusError.Render(reason))
	default:
		return r.renderGrid(state)
	}
}

func (r *Renderer) centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.Empty.Render(s))
}

// renderGrid renders the visible rows of product cards
func (r *Renderer) renderGrid(state ViewState) string {
	grid := logic.Grid{Columns: state.Columns, VisibleRows: state.VisibleRows}
	total := len(state.Products)
	start, end := grid.Window(state.ViewportRow, total)

	var lines []string
	if state.ViewportRow > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	cols := state.Columns
	if cols < 1 {
		cols = 1
	}
	for rowStart := start; rowStart < end; rowStart += cols {
		rowEnd := rowStart + cols
		if rowEnd > end {
			rowEnd = end
		}
		cards := make([]string, 0, cols)
		for i := rowStart; i < rowEnd; i++ {
			cards = append(cards, r.cardRender.RenderCard(state.Products[i], i == state.SelectedIndex, state.Query))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}
	return strings.Join(lines, "\n")
}

// renderStatusLine renders the snackbar line, or the logout question
func (r *Renderer) renderStatusLine(state ViewState) string {
	switch {
	case state.ConfirmLogout:
		return r.styles.Confirm.Render(fmt.Sprintf("Log out %s? (y/n): ", state.Username))
	case state.StatusMessage == "":
		if state.LoggedIn {
			return r.styles.Dim.Render(fmt.Sprintf("Wallet balance: %d", state.Balance))
		}
		return ""
	case state.StatusIsError:
		return r.styles.StatusError.Render(state.StatusMessage)
	default:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	}
}
