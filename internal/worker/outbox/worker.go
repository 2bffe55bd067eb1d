package outbox

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/corray333/cargo-manager/internal/dal/interfaces/ioutboxrepo"
	"github.com/corray333/cargo-manager/internal/dal/rabbitmq"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// Worker drains the outbox table and publishes order events to RabbitMQ.
type Worker struct {
	outboxRepo   ioutboxrepo.IOutboxRepository
	rabbitClient *rabbitmq.Client
	pollInterval time.Duration
	batchSize    int
	publishLimit int
	stopCh       chan struct{}
}

// NewWorker creates a new outbox worker.
func NewWorker(
	outboxRepo ioutboxrepo.IOutboxRepository,
	rabbitClient *rabbitmq.Client,
) *Worker {
	pollIntervalSeconds := viper.GetInt("rabbitmq.outbox.poll_interval_seconds")
	if pollIntervalSeconds == 0 {
		pollIntervalSeconds = 10
	}

	batchSize := viper.GetInt("rabbitmq.outbox.batch_size")
	if batchSize == 0 {
		batchSize = 100
	}

	publishLimit := viper.GetInt("rabbitmq.outbox.publish_concurrency")
	if publishLimit == 0 {
		publishLimit = 3
	}

	return &Worker{
		outboxRepo:   outboxRepo,
		rabbitClient: rabbitClient,
		pollInterval: time.Duration(pollIntervalSeconds) * time.Second,
		batchSize:    batchSize,
		publishLimit: publishLimit,
		stopCh:       make(chan struct{}),
	}
}

// Start begins publishing events from the outbox.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", "poll_interval", w.pollInterval, "batch_size", w.batchSize)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Outbox worker stopped")

			return
		case <-ticker.C:
			w.publishBatch(ctx)
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}

// publishBatch retrieves pending events and publishes them with bounded
// concurrency. Failed publishes are rescheduled with exponential backoff.
func (w *Worker) publishBatch(ctx context.Context) {
	messages, err := w.outboxRepo.GetPendingMessages(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending messages from outbox", "error", err)

		return
	}

	if len(messages) == 0 {
		return
	}

	slog.Info("Publishing outbox events", "count", len(messages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.publishLimit)

	for _, msg := range messages {
		msg := msg
		g.Go(func() error {
			err := w.rabbitClient.Publish(
				msg.ExchangeName,
				msg.RoutingKey,
				msg.ContentType,
				msg.Payload,
			)
			if err != nil {
				w.scheduleRetry(ctx, msg.ID, msg.RetryCount, err)

				return nil
			}

			if err := w.outboxRepo.Delete(ctx, msg.ID); err != nil {
				slog.Error("Failed to delete published outbox message",
					"outbox_id", msg.ID,
					"error", err,
				)
			}

			return nil
		})
	}

	_ = g.Wait()
}

func (w *Worker) scheduleRetry(ctx context.Context, id int64, retryCount int, cause error) {
	newRetryCount := retryCount + 1
	backoffSeconds := math.Pow(2, float64(newRetryCount)) * 30 // 30s, 60s, 120s, ...
	nextRetryAt := time.Now().Add(time.Duration(backoffSeconds) * time.Second)

	slog.Warn("Failed to publish outbox message, will retry",
		"outbox_id", id,
		"retry_count", newRetryCount,
		"next_retry", nextRetryAt,
		"error", cause,
	)

	if err := w.outboxRepo.UpdateRetry(ctx, id, newRetryCount, cause.Error(), nextRetryAt); err != nil {
		slog.Error("Failed to update retry information", "outbox_id", id, "error", err)
	}
}
