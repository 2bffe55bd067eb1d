package iraterepo

import (
	"context"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
)

// IRateRepository reads the stored CNY-anchored exchange rates.
type IRateRepository interface {
	GetRates(ctx context.Context) (currency.Rates, error)
}
