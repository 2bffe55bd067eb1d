package convertamounts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/gorilla/schema"
)

type service interface {
	ConvertAll(amount float64, from currency.Currency) currency.Triple
}

// convertRequest is decoded from the URL query. The source currency defaults
// to the CNY anchor.
type convertRequest struct {
	Amount *float64 `schema:"amount"`
	From   string   `schema:"from"`
}

// ConvertAmounts expands an amount into the CNY/RUB/USD triple. Unknown
// source codes are not rejected; conversion falls back to a 1.0 rate.
func ConvertAmounts(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &convertRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding conversion request", "error", err)

		return
	}

	if query.Amount == nil {
		http.Error(w, `query param "amount" is required`, http.StatusBadRequest)

		return
	}

	from := currency.CurrencyCNY
	if query.From != "" {
		from = currency.Currency(query.From)
	}

	triple := service.ConvertAll(*query.Amount, from)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(triple); err != nil {
		slog.Error("Error sending conversion response", "error", err)
	}
}
