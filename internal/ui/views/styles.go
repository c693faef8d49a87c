package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Logo          lipgloss.Style
	Header        lipgloss.Style
	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
	Username      lipgloss.Style
	SearchBox     lipgloss.Style
	SearchFocused lipgloss.Style
	Hero          lipgloss.Style
	HeroAccent    lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardName      lipgloss.Style
	CardCost      lipgloss.Style
	StarOn        lipgloss.Style
	StarOff       lipgloss.Style
	Category      lipgloss.Style
	CartButton    lipgloss.Style
	Highlight     lipgloss.Style
	Dim           lipgloss.Style
	Empty         lipgloss.Style
	Footer        lipgloss.Style
	FormBox       lipgloss.Style
	FormTitle     lipgloss.Style
	FormLabel     lipgloss.Style
	FormFocused   lipgloss.Style
	Confirm       lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36")),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("241")),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Padding(0, 1),
		ButtonPrimary: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("36")).Padding(0, 1),
		Username:      lipgloss.NewStyle().Bold(true).Padding(0, 1),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(0, 1),
		Hero: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("23")).
			Padding(1, 2).
			MarginTop(1),
		HeroAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Background(lipgloss.Color("23")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(CardWidth - 2),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(0, 1).
			Width(CardWidth - 2),
		CardName:      lipgloss.NewStyle().Bold(true),
		CardCost:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		StarOn:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StarOff:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Category:      lipgloss.NewStyle().Faint(true).Italic(true),
		CartButton:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("36")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(1, 3),
		FormTitle:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		FormLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FormFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true),
		Confirm:     lipgloss.NewStyle().Bold(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
