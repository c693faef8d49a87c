package state

import (
	"qkart/internal/search"
)

// Page is one screen of the storefront
type Page int

const (
	PageProducts Page = iota
	PageLogin
	PageRegister
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageRegister:
		return "register"
	default:
		return "products"
	}
}

// AppState contains all the application state
type AppState struct {
	Page Page

	// Last result read from the search pipeline
	Result search.Result

	// Grid selection
	SelectedIndex int // index into Result.Products()
	ViewportRow   int // first card row on screen
	Columns       int // cards per row, recomputed on resize
	VisibleRows   int // card rows that fit on screen

	// UI state
	ShowHelp      bool
	StatusMessage string // snackbar-like status line
	StatusIsError bool
	Submitting    bool // an auth request is in flight
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Page:        PageProducts,
		Result:      search.Result{Status: search.StatusLoading, Initial: true},
		Columns:     1,
		VisibleRows: 1,
	}
}

// SetStatus shows msg in the status line
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus empties the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ApplyResult replaces the displayed result and keeps the selection in range
func (s *AppState) ApplyResult(r search.Result) {
	queryChanged := r.Query != s.Result.Query || r.Initial != s.Result.Initial
	s.Result = r
	total := len(r.Products())
	if queryChanged || s.SelectedIndex >= total {
		s.SelectedIndex = 0
		s.ViewportRow = 0
	}
}

// ProductCount returns how many cards are displayed
func (s *AppState) ProductCount() int {
	return len(s.Result.Products())
}
