package views

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"qkart/internal/domain"
	"qkart/internal/search"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func productsState(status search.Status, products ...domain.Product) ViewState {
	return ViewState{
		Width:       100,
		Height:      50,
		Page:        PageProducts,
		ShowHero:    true,
		Status:      status,
		Products:    products,
		Columns:     3,
		VisibleRows: 2,
		Spinner:     "*",
	}
}

func TestRenderStates(t *testing.T) {
	r := NewRenderer()

	loading := plain(r.Render(productsState(search.StatusLoading)))
	assert.Contains(t, loading, "* "+LoadingText)
	assert.Contains(t, loading, HeroText)

	empty := plain(r.Render(productsState(search.StatusEmpty)))
	assert.Contains(t, empty, EmptyText)
	assert.NotContains(t, empty, search.FailureReason)

	failed := productsState(search.StatusFailed)
	failed.FailureReason = search.FailureReason
	out := plain(r.Render(failed))
	assert.Contains(t, out, EmptyText)
	assert.Contains(t, out, search.FailureReason)
}

func TestRenderHidesHero(t *testing.T) {
	s := productsState(search.StatusEmpty)
	s.ShowHero = false
	assert.NotContains(t, plain(NewRenderer().Render(s)), HeroText)
}

func TestRenderCards(t *testing.T) {
	r := NewRenderer()
	s := productsState(search.StatusItems,
		domain.Product{ID: "1", Name: "Basketball", Category: "Sports", Cost: 100, Rating: 5},
		domain.Product{ID: "2", Name: "iPhone XR", Category: "Phones", Cost: 99.5, Rating: 3},
	)
	out := plain(r.Render(s))
	assert.Contains(t, out, "Basketball")
	assert.Contains(t, out, "$ 100")
	assert.Contains(t, out, "$ 99.50")
	assert.Contains(t, out, "★★★☆☆")
	assert.Contains(t, out, "Phones")
	assert.Equal(t, 2, strings.Count(out, "Add to cart"))
}

func TestRenderGridScrollIndicators(t *testing.T) {
	var products []domain.Product
	for i := 0; i < 10; i++ {
		products = append(products, domain.Product{ID: string(rune('a' + i)), Name: "Item", Cost: 1})
	}
	s := productsState(search.StatusItems, products...)
	s.Columns = 2
	s.VisibleRows = 2
	s.ViewportRow = 1

	out := plain(NewRenderer().Render(s))
	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "↓ 4 more below ↓")
	assert.Equal(t, 4, strings.Count(out, "Add to cart"))
}

func TestAuthButtons(t *testing.T) {
	assert.Equal(t, []string{LabelLogin, LabelRegister}, AuthButtons(PageProducts, false, ""))
	assert.Equal(t, []string{"crio-user", LabelLogout}, AuthButtons(PageProducts, true, "crio-user"))
	assert.Equal(t, []string{"← " + LabelBackToExplore}, AuthButtons(PageLogin, false, ""))
	assert.Equal(t, []string{"← " + LabelBackToExplore}, AuthButtons(PageRegister, true, "crio-user"))
}

func TestRenderForm(t *testing.T) {
	s := ViewState{
		Width:  100,
		Height: 40,
		Page:   PageLogin,
		Form: FormView{
			Title:       "Login",
			SubmitLabel: "LOGIN TO QKART",
			Fields: []FieldView{
				{Label: "Username", Input: "crio-user", Focused: true},
				{Label: "Password", Input: "••••••"},
			},
		},
		StatusMessage: "Password is incorrect",
		StatusIsError: true,
	}
	out := plain(NewRenderer().Render(s))
	assert.Contains(t, out, "LOGIN TO QKART")
	assert.Contains(t, out, "> crio-user")
	assert.Contains(t, out, "Password is incorrect")
	assert.Contains(t, out, LabelBackToExplore)
	assert.NotContains(t, out, HeroText)
}

func TestStatusLine(t *testing.T) {
	r := NewRenderer()
	s := productsState(search.StatusEmpty)
	s.LoggedIn = true
	s.Username = "crio-user"
	s.Balance = 5000
	assert.Contains(t, plain(r.Render(s)), "Wallet balance: 5000")

	s.ConfirmLogout = true
	assert.Contains(t, plain(r.Render(s)), "Log out crio-user? (y/n)")
}

func TestHelpOverlay(t *testing.T) {
	s := productsState(search.StatusEmpty)
	s.ShowHelp = true
	out := plain(NewRenderer().Render(s))
	assert.Contains(t, out, "QKart Help")
	assert.NotContains(t, out, HelpHint)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$ 120", FormatCost(120))
	assert.Equal(t, "$ 12.50", FormatCost(12.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Atomberg…", truncate("Atomberg 1200mm", 9))
}

func TestMatchSpan(t *testing.T) {
	tests := []struct {
		name, text, query string
		want              string
		ok                bool
	}{
		{"ascii", "Basketball", "ball", "ball", true},
		{"case insensitive", "iPhone XR", "PHONE", "Phone", true},
		{"no match", "Basketball", "zzz", "", false},
		{"empty query", "Basketball", "", "", false},
		{"kelvin sign query", "Desk", "\u212A", "k", true},
		{"kelvin sign in name", "\u212Aettle", "ke", "\u212Ae", true},
		{"capital sharp s", "Straße", "\u1E9E", "ß", true},
		{"query longer than name", "Desk", "desks", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := matchSpan(tt.text, tt.query)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, tt.text[start:end])
			}
		})
	}
}

func TestRenderCardNonASCIIQuery(t *testing.T) {
	r := NewCardRenderer(NewStyles())
	for _, q := range []string{"\u212A", "\u1E9E", "\u212A\u212A", "é", "İ"} {
		assert.NotPanics(t, func() {
			out := plain(r.RenderCard(domain.Product{Name: "Desk", Cost: 10}, false, q))
			assert.Contains(t, out, "Desk")
		}, "query %q", q)
	}
}
