package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, o order.Order, totals order.TotalsPatch) (int64, error)
}

// createOrderRequest represents a create order request. Amounts are
// optional; at most one drives the derived triple.
type createOrderRequest struct {
	ClientID   int64    `json:"client_id"   validate:"required,gt=0"`
	SupplierID int64    `json:"supplier_id" validate:"required,gt=0"`
	Name       string   `json:"name"        validate:"required"`
	Status     string   `json:"status"      validate:"required"`
	TotalCNY   *float64 `json:"total_cny"`
	TotalRUB   *float64 `json:"total_rub"`
	TotalUSD   *float64 `json:"total_usd"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to the service layer models.
func (r *createOrderRequest) toModel() (order.Order, order.TotalsPatch) {
	return order.Order{
			ClientID:   r.ClientID,
			SupplierID: r.SupplierID,
			Name:       r.Name,
			Status:     r.Status,
		}, order.TotalsPatch{
			CNY: r.TotalCNY,
			RUB: r.TotalRUB,
			USD: r.TotalUSD,
		}
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	o, totals := req.toModel()

	id, err := service.Create(r.Context(), o, totals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating order", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]int64{"id": id}); err != nil {
		slog.Error("Error sending response for create order", "error", err)
	}
}
