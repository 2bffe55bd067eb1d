package order

import (
	"errors"
	"time"
)

var (
	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrMissingRequiredField is returned when a create payload misses one of
	// client_id, supplier_id, name or status.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Order represents a brokerage order with its total denominated in all three
// supported currencies. The triple is always derived from a single
// authoritative amount through the rate snapshot taken at the last write.
type Order struct {
	ID         int64     `json:"id"`
	ClientID   int64     `json:"client_id"`
	SupplierID int64     `json:"supplier_id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Totals     Totals    `json:"totals"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateOrderModel carries the editable fields of an update request. Nil
// means the field was not provided and keeps its stored value.
type UpdateOrderModel struct {
	ClientID   *int64
	SupplierID *int64
	Name       *string
	Status     *string
	Totals     TotalsPatch
}

// Empty reports whether the update carries no fields at all.
func (m UpdateOrderModel) Empty() bool {
	return m.ClientID == nil &&
		m.SupplierID == nil &&
		m.Name == nil &&
		m.Status == nil &&
		m.Totals.Empty()
}
