package domain

// Product is a catalog entry as served by the storefront backend
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"` // aggregate rating out of five
	Image    string  `json:"image"`
}

// MaxRating is the top of the rating scale
const MaxRating = 5

// Stars returns the rating clamped to the 0..MaxRating scale
func (p Product) Stars() int {
	switch {
	case p.Rating < 0:
		return 0
	case p.Rating > MaxRating:
		return MaxRating
	default:
		return p.Rating
	}
}

// Session is the state of a logged-in user
type Session struct {
	Username string
	Token    string
	Balance  int
}

// LoggedIn reports whether the session belongs to an authenticated user
func (s Session) LoggedIn() bool {
	return s.Username != "" && s.Token != ""
}
