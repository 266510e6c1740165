package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/model"
)

// matchEventChannel is the Redis pub/sub channel new-match events go to; the
// notification service forwards them to users.
const matchEventChannel = "EVENT_MENTOR_MATCHES"

// Runner executes one alert cycle for every active saved search: it re-runs
// the search against the upstream endpoint, diffs the results against the
// per-search seen-set in Redis, and publishes an event when new mentors
// appear.
type Runner struct {
	store    *Store
	rdb      *redis.Client
	fetcher  mentorsearch.PageFetcher
	maxPages int
}

// NewRunner constructs a Runner. maxPages caps how deep each saved search
// paginates per cycle.
func NewRunner(store *Store, rdb *redis.Client, fetcher mentorsearch.PageFetcher, maxPages int) *Runner {
	return &Runner{store: store, rdb: rdb, fetcher: fetcher, maxPages: maxPages}
}

// Run executes one cycle over all active saved searches. Per-search failures
// are logged and skipped so one broken search cannot starve the rest.
func (r *Runner) Run(ctx context.Context) error {
	searches, err := r.store.LoadActive(ctx)
	if err != nil {
		return fmt.Errorf("load active saved searches: %w", err)
	}
	if len(searches) == 0 {
		log.Println("[alerts] no active saved searches, nothing to run")
		return nil
	}

	log.Printf("[alerts] running %d saved search(es)", len(searches))
	for _, ss := range searches {
		newCount, err := r.runOne(ctx, ss)
		if err != nil {
			log.Printf("[alerts] saved search %s (user %s) failed: %v, continuing", ss.ID, ss.UserID, err)
			continue
		}
		log.Printf("[alerts] saved search %s done, %d new match(es)", ss.ID, newCount)
	}
	return nil
}

func (r *Runner) runOne(ctx context.Context, ss model.SavedSearch) (int, error) {
	filters, err := mentorsearch.DecodeFilters(ss.Filters)
	if err != nil {
		return 0, fmt.Errorf("stored filters: %w", err)
	}

	mentors, err := CollectMatches(ctx, r.fetcher, filters, r.maxPages)
	if err != nil {
		return 0, fmt.Errorf("collect: %w", err)
	}

	// Diff against the seen-set: SADD reports 1 only for IDs this search has
	// never produced before.
	seenKey := "alerts:seen:" + ss.ID
	var newIDs []string
	for _, m := range mentors {
		added, err := r.rdb.SAdd(ctx, seenKey, m.ID).Result()
		if err != nil {
			return 0, fmt.Errorf("seen-set add: %w", err)
		}
		if added == 1 {
			newIDs = append(newIDs, m.ID)
		}
	}

	if len(newIDs) > 0 {
		event, _ := json.Marshal(map[string]any{
			"type":      matchEventChannel,
			"searchId":  ss.ID,
			"userId":    ss.UserID,
			"name":      ss.Name,
			"mentorIds": newIDs,
			"count":     len(newIDs),
		})
		if err := r.rdb.Publish(ctx, matchEventChannel, event).Err(); err != nil {
			slog.Warn("publish EVENT_MENTOR_MATCHES failed", "searchId", ss.ID, "err", err)
		}
	}

	if err := r.store.TouchLastRun(ctx, ss.ID); err != nil {
		slog.Warn("touch last_run_at failed", "searchId", ss.ID, "err", err)
	}

	return len(newIDs), nil
}

// CollectMatches drives a fresh search session through a refresh and up to
// maxPages-1 load-more rounds and returns everything it accumulated. The
// session's own guards stop the loop early once the upstream is exhausted.
func CollectMatches(ctx context.Context, fetcher mentorsearch.PageFetcher, filters mentorsearch.Filters, maxPages int) ([]model.MentorProfile, error) {
	ctrl := mentorsearch.NewController(fetcher)

	if err := ctrl.Search(ctx, filters, mentorsearch.ModeRefresh); err != nil {
		return nil, err
	}
	for page := 1; page < maxPages && ctrl.HasMore(); page++ {
		if err := ctrl.Search(ctx, filters, mentorsearch.ModeLoadMore); err != nil {
			// Keep what earlier pages produced; the next cycle retries.
			return ctrl.Results(), err
		}
	}
	return ctrl.Results(), nil
}
