package search

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// recordingFetcher counts fetches and serves canned results per query
type recordingFetcher struct {
	mu      sync.Mutex
	queries []string
	results map[string][]Suggestion
}

func (f *recordingFetcher) fetch(ctx context.Context, query string) ([]Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.results[query], nil
}

func (f *recordingFetcher) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

func TestTypeahead_DebounceCoalescesKeystrokes(t *testing.T) {
	fetcher := &recordingFetcher{results: map[string][]Suggestion{
		"shi": {{Text: "Shirt", Type: "product", ID: "p1"}},
	}}
	ta := NewTypeahead(fetcher.fetch, 50*time.Millisecond, 2, discardLogger())

	// Second keystroke arrives inside the debounce window
	ta.SetQuery("sh")
	time.Sleep(10 * time.Millisecond)
	ta.SetQuery("shi")

	time.Sleep(150 * time.Millisecond)

	require.Equal(t, []string{"shi"}, fetcher.fetched(), "only the last query should fetch")

	suggestions, open := ta.Suggestions()
	require.True(t, open)
	require.Equal(t, "Shirt", suggestions[0].Text)
}

func TestTypeahead_ShortQueryClearsImmediately(t *testing.T) {
	fetcher := &recordingFetcher{results: map[string][]Suggestion{
		"shoes": {{Text: "Shoes", Type: "product"}},
	}}
	ta := NewTypeahead(fetcher.fetch, 10*time.Millisecond, 2, discardLogger())

	ta.SetQuery("shoes")
	time.Sleep(50 * time.Millisecond)
	_, open := ta.Suggestions()
	require.True(t, open)

	// Dropping below the threshold clears list and visibility at once
	ta.SetQuery("s")
	suggestions, open := ta.Suggestions()
	require.Empty(t, suggestions)
	require.False(t, open)

	// And never fetches
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, []string{"shoes"}, fetcher.fetched())
}

func TestTypeahead_StaleResponseDoesNotOverwrite(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	fetch := func(ctx context.Context, query string) ([]Suggestion, error) {
		if query == "shoe" {
			close(firstStarted)
			<-releaseFirst // network holds the first response
			return []Suggestion{{Text: "Shoe", Type: "product"}}, nil
		}
		return []Suggestion{{Text: "Shirt", Type: "product"}}, nil
	}

	ta := NewTypeahead(fetch, 5*time.Millisecond, 2, discardLogger())

	ta.SetQuery("shoe")
	<-firstStarted // first fetch is now in flight

	ta.SetQuery("shirt")
	time.Sleep(50 * time.Millisecond) // second fetch commits

	// First response resolves after the second: must be ignored
	close(releaseFirst)
	time.Sleep(50 * time.Millisecond)

	suggestions, open := ta.Suggestions()
	require.True(t, open)
	require.Len(t, suggestions, 1)
	require.Equal(t, "Shirt", suggestions[0].Text)
}

func TestTypeahead_FetchFailureKeepsPriorState(t *testing.T) {
	var failing atomic.Bool
	fetch := func(ctx context.Context, query string) ([]Suggestion, error) {
		if failing.Load() {
			return nil, context.DeadlineExceeded
		}
		return []Suggestion{{Text: "Shirt", Type: "product"}}, nil
	}

	ta := NewTypeahead(fetch, 5*time.Millisecond, 2, discardLogger())

	ta.SetQuery("shirt")
	time.Sleep(50 * time.Millisecond)

	failing.Store(true)
	ta.SetQuery("shirts")
	time.Sleep(50 * time.Millisecond)

	suggestions, _ := ta.Suggestions()
	require.Len(t, suggestions, 1, "prior suggestions survive a failed fetch")
}

func TestTypeahead_DismissAndSubmit(t *testing.T) {
	fetch := func(ctx context.Context, query string) ([]Suggestion, error) {
		return []Suggestion{{Text: "Shirt", Type: "product"}}, nil
	}
	ta := NewTypeahead(fetch, 5*time.Millisecond, 2, discardLogger())

	ta.SetQuery("shirt")
	time.Sleep(50 * time.Millisecond)

	ta.Dismiss()
	_, open := ta.Suggestions()
	require.False(t, open, "outside click closes the dropdown")

	query, ok := ta.Submit()
	require.True(t, ok)
	require.Equal(t, "shirt", query)

	// Blank query does not navigate
	ta.SetQuery("   ")
	_, ok = ta.Submit()
	require.False(t, ok)
}

func TestTypeahead_SelectUsesDisplayText(t *testing.T) {
	fetch := func(ctx context.Context, query string) ([]Suggestion, error) {
		return []Suggestion{{Text: "Nike", Type: "brand"}}, nil
	}
	ta := NewTypeahead(fetch, 5*time.Millisecond, 2, discardLogger())

	ta.SetQuery("ni")
	time.Sleep(50 * time.Millisecond)

	got := ta.Select(Suggestion{Text: "Nike", Type: "brand", ID: "b7"})
	require.Equal(t, "Nike", got, "selection navigates by text, not id")

	_, open := ta.Suggestions()
	require.False(t, open)
}
