package converters

import (
	"github.com/corray333/cargo-manager/internal/service/models/order"
)

// OrderResponse is the wire representation of an order: the three totals are
// flattened next to the other attributes.
type OrderResponse struct {
	ID         int64   `json:"id"`
	ClientID   int64   `json:"client_id"`
	SupplierID int64   `json:"supplier_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	TotalCNY   float64 `json:"total_cny"`
	TotalRUB   float64 `json:"total_rub"`
	TotalUSD   float64 `json:"total_usd"`
}

// OrderToResponse converts a service layer order to its wire representation.
func OrderToResponse(o order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		ClientID:   o.ClientID,
		SupplierID: o.SupplierID,
		Name:       o.Name,
		Status:     o.Status,
		TotalCNY:   o.Totals.CNY,
		TotalRUB:   o.Totals.RUB,
		TotalUSD:   o.Totals.USD,
	}
}

// OrdersToResponse converts a slice of orders.
func OrdersToResponse(orders []order.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderToResponse(o)
	}

	return result
}
