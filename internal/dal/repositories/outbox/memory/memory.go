package memoryrepo

import (
	"context"
	"sync"
	"time"

	"github.com/corray333/cargo-manager/internal/dal/interfaces/ioutboxrepo"
	"github.com/corray333/cargo-manager/internal/service/models/outbox"
)

// OutboxRepository is a mutex-guarded in-memory implementation of the outbox
// repository, used by service tests.
type OutboxRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]outbox.Message
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{
		nextID: 1,
		items:  make(map[int64]outbox.Message),
	}
}

func (r *OutboxRepository) Insert(_ context.Context, msg outbox.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = r.nextID
	r.nextID++
	r.items[msg.ID] = msg

	return nil
}

func (r *OutboxRepository) GetPendingMessages(_ context.Context, limit int) ([]outbox.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	var messages []outbox.Message
	for _, msg := range r.items {
		if msg.NextRetryAt.After(now) || msg.RetryCount >= msg.MaxRetries {
			continue
		}
		messages = append(messages, msg)
		if limit > 0 && len(messages) >= limit {
			break
		}
	}

	return messages, nil
}

func (r *OutboxRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)

	return nil
}

func (r *OutboxRepository) UpdateRetry(
	_ context.Context,
	id int64,
	retryCount int,
	lastError string,
	nextRetryAt time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.items[id]
	if !ok {
		return nil
	}
	msg.RetryCount = retryCount
	msg.LastError = lastError
	msg.NextRetryAt = nextRetryAt
	msg.UpdatedAt = time.Now()
	r.items[id] = msg

	return nil
}

// Len reports how many messages are currently queued.
func (r *OutboxRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

var _ ioutboxrepo.IOutboxRepository = (*OutboxRepository)(nil)
