// Package search turns raw search-field keystrokes into at most one backend
// query per pause in typing and publishes the outcome as a Result.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"qkart/internal/domain"
)

const (
	// DefaultWindow is the quiescence window before a query is dispatched
	DefaultWindow = 500 * time.Millisecond

	// DefaultTimeout bounds a single backend call so a result never stays Loading
	DefaultTimeout = 10 * time.Second
)

// Fetcher is the backend the pipeline queries
type Fetcher interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// Stats counts what the pipeline did with its inputs
type Stats struct {
	Scheduled  int // dispatches scheduled by OnInput
	Superseded int // scheduled dispatches cancelled by newer input
	Dispatched int // dispatches that reached the backend
	Discarded  int // responses dropped because newer input arrived
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithClock replaces the wall clock, mainly for tests
func WithClock(c clock.Clock) Option {
	return func(p *Pipeline) {
		p.clock = c
	}
}

// WithWindow sets the quiescence window
func WithWindow(d time.Duration) Option {
	return func(p *Pipeline) {
		p.window = d
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithNotify registers fn to be called after every published result change.
// fn runs on a pipeline goroutine and should only signal the view, which then
// reads Result.
func WithNotify(fn func()) Option {
	return func(p *Pipeline) {
		p.notify = fn
	}
}

// Pipeline is the debounced, cancellable search-query pipeline owned by one view
type Pipeline struct {
	fetcher Fetcher
	clock   clock.Clock
	window  time.Duration
	timeout time.Duration
	logger  *slog.Logger
	notify  func()

	ctx    context.Context
	cancel context.CancelFunc

	loadOnce sync.Once

	mu         sync.Mutex
	text       string
	generation uint64 // bumped by every OnInput; tags dispatches and responses
	pending    *Task
	result     Result
	stats      Stats
	closed     bool
}

// New creates a pipeline over fetcher. Its result starts as Loading until LoadAll settles.
func New(fetcher Fetcher, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher: fetcher,
		clock:   clock.New(),
		window:  DefaultWindow,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		result:  Result{Status: StatusLoading, Initial: true},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "search")
	p.ctx, p.cancel = context.WithCancel(context.Background())
	return p
}

// OnInput records text as the displayed query and (re)starts the quiescence
// window. Any dispatch scheduled by earlier input is cancelled and will never run.
// It does no I/O.
func (p *Pipeline) OnInput(text string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	p.text = text
	p.generation++
	generation := p.generation

	if p.pending != nil && p.pending.Cancel() {
		p.stats.Superseded++
	}
	p.pending = Schedule(p.clock, p.window, func() {
		p.dispatch(generation, text)
	})
	p.stats.Scheduled++
	p.mu.Unlock()

	p.logger.Debug("search scheduled", "query", text, "generation", generation, "window", p.window)
}

// LoadAll fetches the full catalog. Only the first call does anything; the
// load is not debounced and input never cancels it, but its response is
// dropped if the user has typed since.
func (p *Pipeline) LoadAll() {
	p.loadOnce.Do(func() {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		generation := p.generation
		p.mu.Unlock()

		p.logger.Debug("loading catalog", "generation", generation)
		go func() {
			ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
			defer cancel()

			products, err := p.fetcher.ListProducts(ctx)
			result := Settled("", products, err)
			result.Initial = true
			p.settle(generation, result)
		}()
	})
}

// dispatch runs when a scheduled task fires
func (p *Pipeline) dispatch(generation uint64, query string) {
	p.mu.Lock()
	// The task guarantees cancelled dispatches never run; this also drops a
	// dispatch that raced with newer input.
	if p.closed || generation != p.generation {
		p.mu.Unlock()
		return
	}
	p.pending = nil
	p.stats.Dispatched++
	p.result = Loading(query)
	p.mu.Unlock()

	p.logger.Debug("search dispatched", "query", query, "generation", generation)
	p.changed()

	go func() {
		ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
		defer cancel()

		products, err := p.fetcher.SearchProducts(ctx, query)
		p.settle(generation, Settled(query, products, err))
	}()
}

// settle publishes result unless newer input has superseded it
func (p *Pipeline) settle(generation uint64, result Result) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if generation != p.generation {
		p.stats.Discarded++
		current := p.generation
		p.mu.Unlock()
		p.logger.Debug("stale response discarded", "query", result.Query, "generation", generation, "current", current)
		return
	}
	p.result = result
	p.mu.Unlock()

	if result.Status == StatusFailed {
		p.logger.Warn("search failed", "query", result.Query, "error", result.Err)
	} else {
		p.logger.Info("search settled", "query", result.Query, "status", result.Status, "items", len(result.Items))
	}
	p.changed()
}

func (p *Pipeline) changed() {
	if p.notify != nil {
		p.notify()
	}
}

// Text returns the query text as last typed
func (p *Pipeline) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// Result returns the currently published result
func (p *Pipeline) Result() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Pending reports whether a dispatch is waiting for the quiescence window
func (p *Pipeline) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

// Stats returns a snapshot of the pipeline counters
func (p *Pipeline) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Close cancels the pending dispatch and any in-flight call. Later input is ignored.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.pending != nil {
		p.pending.Cancel()
		p.pending = nil
	}
	p.mu.Unlock()
	p.cancel()
}
