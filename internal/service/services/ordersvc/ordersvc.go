package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/corray333/cargo-manager/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/cargo-manager/internal/dal/interfaces/ioutboxrepo"
	"github.com/corray333/cargo-manager/internal/dal/postgres"
	"github.com/corray333/cargo-manager/internal/dal/uow"
	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/corray333/cargo-manager/internal/service/models/orderevent"
	"github.com/corray333/cargo-manager/internal/service/models/outbox"
)

const (
	eventQueueName  = "cargo.order.events"
	eventMaxRetries = 5
)

// OrderService is a service for managing orders.
type OrderService struct {
	pgClient *postgres.Client
	rates    rateProvider
	newUOWFn func() unitOfWork
}

func (s *OrderService) newUOW() unitOfWork {
	if s.newUOWFn != nil {
		return s.newUOWFn()
	}

	return uow.NewUnitOfWork(s.pgClient)
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

// rateProvider hands out the rate snapshot an operation derives totals from.
// One snapshot is taken per operation; a concurrent refresh does not
// retroactively change totals already derived.
type rateProvider interface {
	Rates() (currency.Rates, time.Time)
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithRateProvider sets the rate snapshot source for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRateProvider(rates rateProvider) option {
	return func(s *OrderService) {
		s.rates = rates
	}
}

// WithUnitOfWorkFactory overrides how units of work are created. Used by
// tests to run the service against in-memory repositories.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOWFn = factory
	}
}

// Create validates the payload, normalizes the currency triple against the
// current rate snapshot and persists the order together with its audit
// event. Returns the assigned id.
func (s *OrderService) Create(
	ctx context.Context,
	o order.Order,
	totals order.TotalsPatch,
) (int64, error) {
	if err := validateRequired(o); err != nil {
		return 0, err
	}

	rates, _ := s.rates.Rates()
	o.Totals = totals.Merge(order.Totals{}, totals.ResolveCreate(), rates)

	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = work.Rollback(ctx) }()

	id, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return 0, err
	}
	o.ID = id

	if err := recordEvent(ctx, work.OutboxRepository(), orderevent.ActionCreated, o); err != nil {
		return 0, err
	}

	if err := work.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

// Update loads the stored order, re-derives the non-authoritative totals
// from whichever currency field changed and persists the merged record.
// Returns the number of updated rows: 1 on success, 0 on an empty payload.
func (s *OrderService) Update(
	ctx context.Context,
	id int64,
	model order.UpdateOrderModel,
) (int64, error) {
	if model.Empty() {
		return 0, nil
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = work.Rollback(ctx) }()

	current, err := work.OrderRepository().GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	rates, _ := s.rates.Rates()

	updated := *current
	if model.ClientID != nil {
		updated.ClientID = *model.ClientID
	}
	if model.SupplierID != nil {
		updated.SupplierID = *model.SupplierID
	}
	if model.Name != nil {
		updated.Name = *model.Name
	}
	if model.Status != nil {
		updated.Status = *model.Status
	}
	updated.Totals = model.Totals.Merge(
		current.Totals,
		model.Totals.ResolveUpdate(current.Totals),
		rates,
	)
	updated.UpdatedAt = time.Now()

	affected, err := work.OrderRepository().Update(ctx, updated)
	if err != nil {
		return 0, err
	}

	if err := recordEvent(ctx, work.OutboxRepository(), orderevent.ActionUpdated, updated); err != nil {
		return 0, err
	}

	if err := work.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}

// Get retrieves one order or order.ErrOrderNotFound.
func (s *OrderService) Get(ctx context.Context, id int64) (*order.Order, error) {
	work := s.newUOW()

	return work.OrderRepository().GetByID(ctx, id)
}

// List retrieves all orders in store-native order.
func (s *OrderService) List(ctx context.Context) ([]order.Order, error) {
	work := s.newUOW()

	return work.OrderRepository().Query(ctx)
}

// Delete removes an order. Returns the number of deleted rows (0 or 1).
func (s *OrderService) Delete(ctx context.Context, id int64) (int64, error) {
	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = work.Rollback(ctx) }()

	current, err := work.OrderRepository().GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	deleted, err := work.OrderRepository().Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		if err := recordEvent(ctx, work.OutboxRepository(), orderevent.ActionDeleted, *current); err != nil {
			return 0, err
		}
	}

	if err := work.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}

func validateRequired(o order.Order) error {
	switch {
	case o.ClientID == 0:
		return fmt.Errorf("%w: client_id", order.ErrMissingRequiredField)
	case o.SupplierID == 0:
		return fmt.Errorf("%w: supplier_id", order.ErrMissingRequiredField)
	case o.Name == "":
		return fmt.Errorf("%w: name", order.ErrMissingRequiredField)
	case o.Status == "":
		return fmt.Errorf("%w: status", order.ErrMissingRequiredField)
	}

	return nil
}

// recordEvent writes the audit event into the outbox within the same
// transaction as the order change.
func recordEvent(
	ctx context.Context,
	repo ioutboxrepo.IOutboxRepository,
	action orderevent.Action,
	o order.Order,
) error {
	now := time.Now()

	payload, err := json.Marshal(orderevent.OrderEvent{
		Action:     action,
		OrderID:    o.ID,
		Order:      o,
		OccurredAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return repo.Insert(ctx, outbox.Message{
		QueueName:   eventQueueName,
		RoutingKey:  eventQueueName,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  eventMaxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
}
