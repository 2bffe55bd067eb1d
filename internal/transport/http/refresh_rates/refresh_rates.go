package refreshrates

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
)

type service interface {
	RefreshNow(ctx context.Context) (currency.Rates, time.Time, error)
}

type refreshResponse struct {
	Status     string         `json:"status"`
	Rates      currency.Rates `json:"rates"`
	LastUpdate time.Time      `json:"last_update"`
}

func RefreshRates(w http.ResponseWriter, r *http.Request, service service) {
	rates, lastUpdate, err := service.RefreshNow(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error refreshing currency rates", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(refreshResponse{
		Status:     "success",
		Rates:      rates,
		LastUpdate: lastUpdate,
	}); err != nil {
		slog.Error("Error sending refresh response", "error", err)
	}
}
