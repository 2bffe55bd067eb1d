package orderevent

import (
	"time"

	"github.com/corray333/cargo-manager/internal/service/models/order"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// OrderEvent is the audit payload published for every successful order write.
type OrderEvent struct {
	Action     Action      `json:"action"`
	OrderID    int64       `json:"order_id"`
	Order      order.Order `json:"order"`
	OccurredAt time.Time   `json:"occurred_at"`
}
