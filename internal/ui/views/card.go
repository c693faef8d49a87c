package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"qkart/internal/domain"
)

const (
	// CardWidth is the outer width of a product card including border
	CardWidth = 30
	// CardHeight is the outer height of a product card including border
	CardHeight = 7
)

// CardRenderer renders product cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderCard renders one product: name, cost, rating, category and cart button
func (c *CardRenderer) RenderCard(p domain.Product, isSelected bool, query string) string {
	inner := CardWidth - 4

	name := truncate(p.Name, inner)
	if query != "" {
		name = highlightMatch(name, query, c.styles.Highlight, c.styles.CardName)
	} else {
		name = c.styles.CardName.Render(name)
	}

	lines := []string{
		name,
		c.styles.CardCost.Render(FormatCost(p.Cost)),
		c.RenderStars(p.Stars()),
		c.styles.Category.Render(truncate(p.Category, inner)),
		c.styles.CartButton.Render(center("Add to cart", inner)),
	}

	style := c.styles.Card
	if isSelected {
		style = c.styles.CardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderStars renders a rating out of domain.MaxRating as filled and empty stars
func (c *CardRenderer) RenderStars(rating int) string {
	return c.styles.StarOn.Render(strings.Repeat("★", rating)) +
		c.styles.StarOff.Render(strings.Repeat("☆", domain.MaxRating-rating))
}

// FormatCost renders a price the way the storefront shows it
func FormatCost(cost float64) string {
	if cost == float64(int64(cost)) {
		return fmt.Sprintf("$ %d", int64(cost))
	}
	return fmt.Sprintf("$ %.2f", cost)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func center(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// highlightMatch highlights the first case-insensitive match of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	start, end, ok := matchSpan(text, query)
	if !ok {
		return normalStyle.Render(text)
	}

	before := text[:start]
	match := text[start:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// matchSpan returns the byte range of the first case-insensitive match of
// query in text. Matching is rune by rune, so case pairs of different byte
// lengths (the Kelvin sign and k) still map back onto text.
func matchSpan(text, query string) (int, int, bool) {
	if query == "" {
		return 0, 0, false
	}
	n := utf8.RuneCountInString(query)
	for start := range text {
		end := start
		for i := 0; i < n && end < len(text); i++ {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}
		if strings.EqualFold(text[start:end], query) {
			return start, end, true
		}
		if end == len(text) {
			break
		}
	}
	return 0, 0, false
}
