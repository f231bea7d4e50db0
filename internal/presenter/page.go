// Package presenter holds the per-visitor page state and runs searches
// against the analyzer.
package presenter

import (
	"context"
	"errors"
	"strings"
	"sync"

	"bibliomate/internal/agent"
	"bibliomate/internal/logger"
	"bibliomate/internal/model"
)

var (
	// ErrBusy is returned when a search is triggered while one is in flight
	ErrBusy = errors.New("search already in progress")
	// ErrStale is returned when a search completed after the page was reset
	ErrStale = errors.New("search result discarded")
)

// Analyzer produces a BookRecord for a title
type Analyzer interface {
	Analyze(ctx context.Context, title string) (*model.BookRecord, error)
}

// State is a copy of the page state for rendering
type State struct {
	Input  string
	Result *model.BookRecord
	Busy   bool
	Error  string
}

// HasResult reports whether a result should be rendered
func (s State) HasResult() bool {
	return s.Result != nil
}

// Page is the state of one visitor's search page.
// A failed search clears the previous result.
type Page struct {
	analyzer Analyzer

	mu         sync.Mutex
	input      string
	result     *model.BookRecord
	busy       bool
	errMsg     string
	generation uint64
	cancel     context.CancelFunc
}

// NewPage creates an empty page backed by analyzer
func NewPage(analyzer Analyzer) *Page {
	return &Page{analyzer: analyzer}
}

// Submit stores text as the input and searches for it in one step. A blank
// text is a no-op and leaves the page untouched. While a search is in flight
// it returns ErrBusy without reaching the analyzer and the input is kept. If
// the page is reset before the analyzer returns, the outcome is dropped and
// ErrStale is returned.
func (p *Page) Submit(ctx context.Context, text string) error {
	p.mu.Lock()
	title := strings.TrimSpace(text)
	if title == "" {
		p.mu.Unlock()
		return nil
	}
	if p.busy {
		p.mu.Unlock()
		return ErrBusy
	}
	p.input = text
	p.errMsg = ""
	p.busy = true
	p.generation++
	gen := p.generation

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.cancel = cancel
	p.mu.Unlock()

	record, err := p.analyzer.Analyze(ctx, title)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		logger.For(ctx).WithField("title", title).Info("[SEARCH] Discarding result of abandoned search")
		return ErrStale
	}

	p.busy = false
	p.cancel = nil
	if err != nil {
		p.result = nil
		p.errMsg = agent.SafeMessage(err)
		return err
	}
	p.result = record
	return nil
}

// Reset returns the page to its initial state. A search in flight is
// canceled and its outcome is discarded.
func (p *Page) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.input = ""
	p.result = nil
	p.busy = false
	p.errMsg = ""
}

// Busy reports whether a search is in flight
func (p *Page) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Snapshot returns a copy of the current state
func (p *Page) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		Input:  p.input,
		Result: p.result,
		Busy:   p.busy,
		Error:  p.errMsg,
	}
}
