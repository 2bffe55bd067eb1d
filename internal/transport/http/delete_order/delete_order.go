package deleteorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/go-chi/chi/v5"
)

type service interface {
	Delete(ctx context.Context, id int64) (int64, error)
}

func DeleteOrder(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)

		return
	}

	deleted, err := service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting order", "order_id", id, "error", err)

		return
	}

	if deleted == 0 {
		http.Error(w, order.ErrOrderNotFound.Error(), http.StatusNotFound)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "order deleted"}); err != nil {
		slog.Error("Error sending response for delete order", "error", err)
	}
}
