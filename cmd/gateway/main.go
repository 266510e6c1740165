// ngurra mentor-search gateway
//
// Thin API layer between the clients and the upstream mentor-search
// endpoint. Exposes:
//   - GET /mentors            — one page of results, Redis-cached
//   - filter preference CRUD  — per-user, persisted in Redis
//   - saved-search CRUD       — persisted in PostgreSQL
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/alerts"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/config"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/db"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/gateway"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[gateway] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[gateway] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[gateway] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[gateway] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[gateway] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[gateway] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[gateway] Redis connected ✓")

	// ── Wiring ───────────────────────────────────────────────────────────────
	// The interactive path uses a plain client: a failed page surfaces to the
	// user with a retry affordance rather than retrying behind their back.
	search := mentorsearch.NewClient(cfg.MentorAPIBaseURL, &http.Client{Timeout: 15 * time.Second})
	cache := gateway.NewPageCache(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	filters := gateway.NewFilterStore(rdb)
	store := alerts.NewStore(pool)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	h := gateway.NewHandler(search, cache, filters, store)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[gateway] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[gateway] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[gateway] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[gateway] Shutdown error: %v", err)
	}
	log.Println("[gateway] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "mentor-gateway",
		"version": version,
	})
}
