package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centered over a greyed-out mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	modal := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	y := (height - len(modal)) / 2
	if y < 0 {
		y = 0
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}

	for i, line := range modal {
		row := y + i
		if row >= len(base) {
			break
		}
		// Background cells left of the popup stay, the rest of the row is replaced
		left := padPlain(ansiRE.ReplaceAllString(base[row], ""), x)
		base[row] = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(left) + line
	}
	return strings.Join(base[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// padPlain cuts or pads plain text to exactly width cells
func padPlain(s string, width int) string {
	r := []rune(s)
	for lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	out := string(r)
	if w := lipgloss.Width(out); w < width {
		out += strings.Repeat(" ", width-w)
	}
	return out
}
