// ngurra alert runner
//
// Background worker that periodically re-executes every active saved mentor
// search, diffs the results against what each search has produced before,
// and publishes EVENT_MENTOR_MATCHES to Redis for the notification pipeline.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/joho/godotenv"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/alerts"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/config"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/db"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[alertrunner] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("[alertrunner] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[alertrunner] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[alertrunner] PostgreSQL connected ✓")

	log.Println("[alertrunner] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[alertrunner] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[alertrunner] Redis connected ✓")

	// Background cycles tolerate transport-level retries; nobody is waiting
	// on a spinner here.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	retryClient.Logger = nil

	fetcher := mentorsearch.NewClient(cfg.MentorAPIBaseURL, retryClient.StandardClient())
	store := alerts.NewStore(pool)
	runner := alerts.NewRunner(store, rdb, fetcher, cfg.AlertMaxPages)

	sched := alerts.NewScheduler(runner, cfg.AlertIntervalHrs)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[alertrunner] Scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[alertrunner] Shutting down…")
	sched.Stop()
	log.Println("[alertrunner] Stopped.")
}
