package rates

import (
	"context"
	"log/slog"
	"time"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/spf13/viper"
)

// refresher triggers a reload of the rate snapshot.
type refresher interface {
	RefreshNow(ctx context.Context) (currency.Rates, time.Time, error)
}

// Worker periodically refreshes the exchange rate snapshot.
type Worker struct {
	currencySvc  refresher
	pollInterval time.Duration
	stopCh       chan struct{}
}

// NewWorker creates a new rate refresh worker.
func NewWorker(currencySvc refresher) *Worker {
	pollIntervalSeconds := viper.GetInt("currency.refresh_interval_seconds")
	if pollIntervalSeconds == 0 {
		pollIntervalSeconds = 600
	}

	return &Worker{
		currencySvc:  currencySvc,
		pollInterval: time.Duration(pollIntervalSeconds) * time.Second,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the refresh loop.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("Rate refresh worker started", "poll_interval", w.pollInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Rate refresh worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Rate refresh worker stopped")

			return
		case <-ticker.C:
			if _, _, err := w.currencySvc.RefreshNow(ctx); err != nil {
				slog.Error("Failed to refresh currency rates", "error", err)
			}
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}
