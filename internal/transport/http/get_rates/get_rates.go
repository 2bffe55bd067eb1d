package getrates

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
)

type service interface {
	Rates() (currency.Rates, time.Time)
}

type ratesResponse struct {
	Rates      currency.Rates `json:"rates"`
	LastUpdate time.Time      `json:"last_update"`
}

func GetRates(w http.ResponseWriter, _ *http.Request, service service) {
	rates, lastUpdate := service.Rates()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ratesResponse{
		Rates:      rates,
		LastUpdate: lastUpdate,
	}); err != nil {
		slog.Error("Error sending rates response", "error", err)
	}
}
