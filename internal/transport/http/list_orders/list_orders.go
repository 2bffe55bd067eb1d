package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/corray333/cargo-manager/internal/transport/http/converters"
)

type service interface {
	List(ctx context.Context) ([]order.Order, error)
}

type listOrdersResponse struct {
	Orders []converters.OrderResponse `json:"orders"`
}

func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	orders, err := service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting orders", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listOrdersResponse{
		Orders: converters.OrdersToResponse(orders),
	}); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}
