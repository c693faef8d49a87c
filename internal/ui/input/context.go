package input

import (
	"qkart/internal/ui/form"
	"qkart/internal/ui/state"
)

// SessionView is the part of the session the input layer needs
type SessionView interface {
	LoggedIn() bool
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Form    *form.Form // active form, nil on the products page
	Session SessionView
}

// CurrentIndex returns the selected card
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of cards on screen
func (c *ModelContext) TotalItems() int {
	return c.State.ProductCount()
}

func (c *ModelContext) LoggedIn() bool {
	return c.Session != nil && c.Session.LoggedIn()
}

func (c *ModelContext) OnProductsPage() bool {
	return c.State.Page == state.PageProducts
}

// CurrentProductID returns the id of the selected card, or "" when there is none
func (c *ModelContext) CurrentProductID() string {
	products := c.State.Result.Products()
	i := c.State.SelectedIndex
	if !c.OnProductsPage() || i < 0 || i >= len(products) {
		return ""
	}
	return products[i].ID
}

func (c *ModelContext) FormOnLastField() bool {
	return c.Form != nil && c.Form.OnLastField()
}
