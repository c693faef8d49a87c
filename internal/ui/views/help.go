package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move between card rows"},
		{"←/→, h/l", "Move between cards in a row"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to first/last product"},
		{"Enter", "Open product details"},
	}},
	{"Search", []helpEntry{
		{"/", "Search for items/categories"},
		{"Esc/Enter", "Leave the search field, keeping the query"},
		{"↓/Tab", "Jump from search to the products"},
	}},
	{"Account", []helpEntry{
		{"L", "Login"},
		{"R", "Register"},
		{"O", "Logout"},
		{"Tab/Shift+Tab", "Next/previous form field"},
		{"Enter", "Submit the form"},
		{"Esc", "Back to explore"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent renders the key reference shown in the help popup
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("36")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(15)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("QKart Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
