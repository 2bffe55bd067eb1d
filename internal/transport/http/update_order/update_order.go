package updateorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/corray333/cargo-manager/internal/transport/http/converters"
	"github.com/go-chi/chi/v5"
)

type service interface {
	Update(ctx context.Context, id int64, model order.UpdateOrderModel) (int64, error)
	Get(ctx context.Context, id int64) (*order.Order, error)
}

// updateOrderRequest represents an update order request. Every field is
// optional; absent fields keep their stored values.
type updateOrderRequest struct {
	ClientID   *int64   `json:"client_id"`
	SupplierID *int64   `json:"supplier_id"`
	Name       *string  `json:"name"`
	Status     *string  `json:"status"`
	TotalCNY   *float64 `json:"total_cny"`
	TotalRUB   *float64 `json:"total_rub"`
	TotalUSD   *float64 `json:"total_usd"`
}

// toModel converts updateOrderRequest to the service layer model.
func (r *updateOrderRequest) toModel() order.UpdateOrderModel {
	return order.UpdateOrderModel{
		ClientID:   r.ClientID,
		SupplierID: r.SupplierID,
		Name:       r.Name,
		Status:     r.Status,
		Totals: order.TotalsPatch{
			CNY: r.TotalCNY,
			RUB: r.TotalRUB,
			USD: r.TotalUSD,
		},
	}
}

// UpdateOrder handles the update order request and responds with the updated
// order.
func UpdateOrder(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)

		return
	}

	req := updateOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update order", "error", err)

		return
	}

	if _, err := service.Update(r.Context(), id, req.toModel()); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating order", "order_id", id, "error", err)

		return
	}

	updated, err := service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error reloading updated order", "order_id", id, "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.OrderToResponse(*updated)); err != nil {
		slog.Error("Error sending response for update order", "error", err)
	}
}
