package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings shown in the short help line
type KeyMap struct {
	Search   key.Binding
	Navigate key.Binding
	Details  key.Binding
	Login    key.Binding
	Register key.Binding
	Logout   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the storefront bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"),
			key.WithHelp("←↑↓→", "move"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "login"),
		),
		Register: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "register"),
		),
		Logout: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "logout"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetLoggedIn shows either the login/register or the logout bindings
func (k *KeyMap) SetLoggedIn(loggedIn bool) {
	k.Login.SetEnabled(!loggedIn)
	k.Register.SetEnabled(!loggedIn)
	k.Logout.SetEnabled(loggedIn)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Navigate, k.Details, k.Login, k.Register, k.Logout, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Navigate, k.Details},
		{k.Login, k.Register, k.Logout, k.Quit},
	}
}
