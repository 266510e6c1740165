package alerts

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron and manages the alert loop.
type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
	spec   string // cron spec, e.g. "@every 6h"
}

// NewScheduler creates a Scheduler that fires every intervalHours hours.
func NewScheduler(runner *Runner, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		runner: runner,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so fresh saved searches are not left waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[alerts] cron started, spec: %s", s.spec)

	go s.runCycle(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[alerts] cron stopped")
}

func (s *Scheduler) runCycle(ctx context.Context) {
	log.Println("[alerts] cycle started")
	if err := s.runner.Run(ctx); err != nil {
		log.Printf("[alerts] cycle error: %v", err)
		return
	}
	log.Println("[alerts] cycle complete")
}
