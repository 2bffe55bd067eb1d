package iorderrepo

import (
	"context"

	"github.com/corray333/cargo-manager/internal/service/models/order"
)

// IOrderRepository is an interface for order persistence.
type IOrderRepository interface {
	// Query returns all orders in store-native order.
	Query(ctx context.Context) ([]order.Order, error)

	// GetByID returns the order or order.ErrOrderNotFound.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// Insert stores a new order and returns the assigned id.
	Insert(ctx context.Context, o order.Order) (int64, error)

	// Update overwrites the editable fields of an existing order and returns
	// the number of affected rows (0 or 1).
	Update(ctx context.Context, o order.Order) (int64, error)

	// Delete removes the order and returns the number of affected rows.
	Delete(ctx context.Context, id int64) (int64, error)
}
