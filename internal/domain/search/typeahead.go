// internal/domain/search/typeahead.go
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Suggestion is an ephemeral typeahead entry. Brand suggestions carry no ID;
// product suggestions reference the catalog record.
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"` // brand or product
	ID   string `json:"id,omitempty"`
}

// SuggestFunc fetches suggestions for a query
type SuggestFunc func(ctx context.Context, query string) ([]Suggestion, error)

// Typeahead drives a suggestion dropdown from keystroke events. A fetch is
// scheduled after the debounce interval of input inactivity; re-typing
// cancels the pending timer (trailing-edge debounce). Each scheduled fetch
// captures a monotonically increasing token, and only a result whose token
// is still current commits — stale in-flight responses are ignored, never
// aborted.
type Typeahead struct {
	fetch    SuggestFunc
	debounce time.Duration
	minLen   int
	logger   *logrus.Logger

	mu          sync.Mutex
	timer       *time.Timer
	token       uint64
	query       string
	suggestions []Suggestion
	open        bool
}

// NewTypeahead creates a typeahead controller. minLen queries below the
// threshold clear the dropdown and never trigger a fetch.
func NewTypeahead(fetch SuggestFunc, debounce time.Duration, minLen int, logger *logrus.Logger) *Typeahead {
	return &Typeahead{
		fetch:    fetch,
		debounce: debounce,
		minLen:   minLen,
		logger:   logger,
	}
}

// SetQuery records a keystroke. Pending scheduled fetches are cancelled;
// queries shorter than the minimum clear suggestions and visibility
// immediately.
func (t *Typeahead) SetQuery(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.query = query
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	// Supersede any in-flight fetch regardless of what happens next
	t.token++

	if len(query) < t.minLen {
		t.suggestions = nil
		t.open = false
		return
	}

	token := t.token
	t.timer = time.AfterFunc(t.debounce, func() {
		t.dispatch(token, query)
	})
}

// dispatch runs the fetch outside the lock and commits the result only if
// no newer query has been scheduled since.
func (t *Typeahead) dispatch(token uint64, query string) {
	result, err := t.fetch(context.Background(), query)
	if err != nil {
		// Leave prior suggestions intact
		t.logger.WithError(err).WithField("query", query).Warn("suggestion fetch failed")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if token != t.token {
		return // superseded while in flight
	}
	t.suggestions = result
	t.open = len(result) > 0
}

// Suggestions returns the current dropdown contents and visibility
func (t *Typeahead) Suggestions() ([]Suggestion, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Suggestion, len(t.suggestions))
	copy(out, t.suggestions)
	return out, t.open
}

// Dismiss closes the dropdown, as on an outside click
func (t *Typeahead) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = false
}

// Submit closes the dropdown and returns the query to navigate with; a
// blank query returns false.
func (t *Typeahead) Submit() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = false
	if strings.TrimSpace(t.query) == "" {
		return "", false
	}
	return t.query, true
}

// Select takes a suggestion: the display text becomes the query and the
// dropdown closes. Navigation uses the text, not the ID.
func (t *Typeahead) Select(s Suggestion) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.query = s.Text
	t.open = false
	return s.Text
}
