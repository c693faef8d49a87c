package search

import "qkart/internal/domain"

// Status tags which variant of Result is active
type Status int

const (
	StatusLoading Status = iota
	StatusEmpty
	StatusItems
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusEmpty:
		return "empty"
	case StatusItems:
		return "items"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureReason is the user-facing reason of every Failed result
const FailureReason = "something went wrong"

// Result is what the view renders: Loading, Empty, Items or Failed.
// Query is the query the result answers; the initial catalog load has Initial set.
type Result struct {
	Status  Status
	Query   string
	Initial bool
	Items   []domain.Product // only for StatusItems
	Reason  string           // only for StatusFailed
	Err     error            // only for StatusFailed
}

// Loading builds a Loading result
func Loading(query string) Result {
	return Result{Status: StatusLoading, Query: query}
}

// Settled maps the outcome of a backend call onto a result
func Settled(query string, products []domain.Product, err error) Result {
	switch {
	case err != nil:
		return Result{Status: StatusFailed, Query: query, Reason: FailureReason, Err: err}
	case len(products) == 0:
		return Result{Status: StatusEmpty, Query: query}
	default:
		items := make([]domain.Product, len(products))
		copy(items, products)
		return Result{Status: StatusItems, Query: query, Items: items}
	}
}

// Products returns the items to display; Empty, Failed and Loading all show none
func (r Result) Products() []domain.Product {
	if r.Status != StatusItems {
		return nil
	}
	return r.Items
}

// Settled reports whether the result is terminal for its query
func (r Result) Settled() bool {
	return r.Status != StatusLoading
}
