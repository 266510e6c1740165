package mentorsearch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/model"
)

// Mode is the paging intent of a Search call.
type Mode string

const (
	// ModeRefresh discards accumulated results and restarts from page one,
	// possibly under new filters.
	ModeRefresh Mode = "REFRESH"
	// ModeLoadMore appends the next page under unchanged filters.
	ModeLoadMore Mode = "LOAD_MORE"
)

// State is the derived lifecycle state of a search session.
//
// Valid state graph:
//
//	IDLE ──► LOADING (first page) ──► READY
//	READY ──► REFRESHING ──► READY      (new filter commit)
//	READY ──► LOADING_MORE ──► READY    (pagination, guarded by hasMore)
//	any ──► ERROR ──► READY             (cleared by the next successful call)
type State string

const (
	StateIdle        State = "IDLE"
	StateLoading     State = "LOADING"
	StateRefreshing  State = "REFRESHING"
	StateLoadingMore State = "LOADING_MORE"
	StateReady       State = "READY"
	StateError       State = "ERROR"
)

// userErrMsg is the single human-readable message surfaced to the UI for any
// failed request. Network failures and server errors are distinguished only
// in logged diagnostics, never in public session state.
const userErrMsg = "couldn't load mentors, please try again"

// PageFetcher issues one upstream request per call. *Client satisfies it.
type PageFetcher interface {
	FetchPage(ctx context.Context, filters Filters, cursor string) (*Page, error)
}

// Controller owns one search session: filter state, the pagination cursor,
// and the in-memory accumulation of result pages. It guarantees at most one
// in-flight request at a time: an overlapping call is dropped rather than
// raced, so responses always apply in the order requests were issued and
// there is no cancellation primitive to manage.
//
// The session is owned exclusively by the controller. External code reads
// the selector methods; nothing else writes.
type Controller struct {
	fetcher PageFetcher

	mu            sync.Mutex
	results       []model.MentorProfile
	cursor        string
	hasMore       bool
	activeFilters Filters
	isLoading     bool
	isRefreshing  bool
	errMsg        string
	loadedOnce    bool
}

// NewController returns a Controller with an empty session. Load-more is a
// no-op until the first refresh completes.
func NewController(fetcher PageFetcher) *Controller {
	return &Controller{fetcher: fetcher}
}

// Search translates a filter set and a paging intent into at most one
// upstream request and merges the response into the session.
//
// Calls made while a request is in flight return immediately without issuing
// a second request. ModeLoadMore with an exhausted result set is likewise a
// no-op. Failures never escape as panics: they are recorded in the session
// (results from earlier pages are preserved) and returned for logging.
func (c *Controller) Search(ctx context.Context, filters Filters, mode Mode) error {
	if mode != ModeRefresh && mode != ModeLoadMore {
		return fmt.Errorf("unknown search mode %q", mode)
	}

	c.mu.Lock()

	if c.isLoading || c.isRefreshing {
		c.mu.Unlock()
		return nil
	}
	if mode == ModeLoadMore && !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	if err := filters.Validate(); err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}

	var cursor string
	switch mode {
	case ModeRefresh:
		c.results = nil
		c.cursor = ""
		c.hasMore = true
		c.isRefreshing = true
		c.errMsg = ""
	case ModeLoadMore:
		c.isLoading = true
		cursor = c.cursor
	}

	c.mu.Unlock()

	page, err := c.fetcher.FetchPage(ctx, filters, cursor)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.isLoading = false
	c.isRefreshing = false

	if err != nil {
		slog.Warn("mentor search request failed", "mode", string(mode), "err", err)
		c.errMsg = userErrMsg
		return err
	}

	switch mode {
	case ModeRefresh:
		c.results = page.Mentors
	case ModeLoadMore:
		c.results = append(c.results, page.Mentors...)
	}
	c.cursor = page.Cursor
	c.hasMore = page.HasMore
	c.activeFilters = filters
	c.errMsg = ""
	c.loadedOnce = true

	return nil
}

// SetFilters merges partial onto the active filter set without fetching.
// Committing the edit is a separate, explicit Search(…, ModeRefresh); the
// UI batches several edits before firing one request.
func (c *Controller) SetFilters(partial Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeFilters = c.activeFilters.Merge(partial)
}

// ClearFilters resets the active filter set to the unfiltered default.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeFilters = Filters{}
}

// Reset discards the whole session, as on view unmount. Persisted filter
// preferences survive only if the caller encoded them beforehand.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = nil
	c.cursor = ""
	c.hasMore = false
	c.activeFilters = Filters{}
	c.isLoading = false
	c.isRefreshing = false
	c.errMsg = ""
	c.loadedOnce = false
}

// ─── Selectors ───────────────────────────────────────────────────────────────

// Results returns the accumulated mentors in arrival order. The returned
// slice is a copy; callers cannot write into the session through it.
func (c *Controller) Results() []model.MentorProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.MentorProfile, len(c.results))
	copy(out, c.results)
	return out
}

// IsLoading reports whether a pagination (or initial) request is pending.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isLoading
}

// IsRefreshing reports whether a refresh request is pending. The UI uses
// this to distinguish pull-to-refresh from pagination spinners.
func (c *Controller) IsRefreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isRefreshing
}

// HasMore reports whether another page can be requested.
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Err returns the current user-facing error message, or "" when the session
// is healthy. The error is not terminal: the next successful call clears it.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// ActiveFilters returns the filter set the current results were loaded with.
func (c *Controller) ActiveFilters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeFilters
}

// State derives the session's lifecycle state for the UI.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.errMsg != "":
		return StateError
	case c.isRefreshing && !c.loadedOnce:
		return StateLoading
	case c.isRefreshing:
		return StateRefreshing
	case c.isLoading:
		return StateLoadingMore
	case c.loadedOnce:
		return StateReady
	default:
		return StateIdle
	}
}
