// Package catalog wires up the cron job that keeps the cached product
// catalog warm so requests rarely pay for a cold database read.
package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Loader is the part of the recommendation service the refresher needs.
type Loader interface {
	RefreshCatalog(ctx context.Context) (int, error)
}

// Refresher wraps robfig/cron and manages the periodic catalog reload.
type Refresher struct {
	cron   *cron.Cron
	loader Loader
	spec   string // cron spec, e.g. "@every 15m"
}

// NewRefresher creates a Refresher that fires on every interval.
func NewRefresher(loader Loader, intervalMinutes int) *Refresher {
	if intervalMinutes < 1 {
		intervalMinutes = 15
	}
	return &Refresher{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		loader: loader,
		spec:   fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so the cache is warm without waiting for the first tick.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		r.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	r.cron.Start()
	log.Printf("[CATALOG] refresher started, spec: %s", r.spec)

	// Run immediately on startup (non-blocking)
	go r.refresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (r *Refresher) Stop() {
	r.cron.Stop()
	log.Println("[CATALOG] refresher stopped")
}

func (r *Refresher) refresh(ctx context.Context) {
	count, err := r.loader.RefreshCatalog(ctx)
	if err != nil {
		log.Printf("[CATALOG] refresh failed: %v", err)
		return
	}
	log.Printf("[CATALOG] refreshed %d product(s)", count)
}
