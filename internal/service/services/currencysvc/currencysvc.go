package currencysvc

import (
	"context"
	"sync"
	"time"

	"github.com/corray333/cargo-manager/internal/dal/interfaces/iraterepo"
	"github.com/corray333/cargo-manager/internal/service/models/currency"
)

// CurrencyService holds the current CNY-anchored rate snapshot and serves
// conversions from it. Readers always get an independent copy, so a refresh
// running concurrently with an order write never changes totals that write
// already derived.
type CurrencyService struct {
	rateRepo iraterepo.IRateRepository

	mu         sync.RWMutex
	rates      currency.Rates
	lastUpdate time.Time
}

// option is a function that configures the CurrencyService.
type option func(*CurrencyService)

// MustNewCurrencyService creates a new CurrencyService.
func MustNewCurrencyService(opts ...option) *CurrencyService {
	s := &CurrencyService{
		rates: currency.Rates{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithRateRepository sets the rate repository for the CurrencyService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRateRepository(rateRepo iraterepo.IRateRepository) option {
	return func(s *CurrencyService) {
		s.rateRepo = rateRepo
	}
}

// Rates returns a snapshot of the current rates and the time of the last
// refresh.
func (s *CurrencyService) Rates() (currency.Rates, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rates.Clone(), s.lastUpdate
}

// RefreshNow reloads the rate snapshot from the store and stamps the refresh
// time. Seeding and updating of the stored rates is external; this service
// only ever reads them.
func (s *CurrencyService) RefreshNow(ctx context.Context) (currency.Rates, time.Time, error) {
	rates, err := s.rateRepo.GetRates(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	now := time.Now().UTC()

	s.mu.Lock()
	s.rates = rates
	s.lastUpdate = now
	s.mu.Unlock()

	return rates.Clone(), now, nil
}

// ConvertAll expands an amount in the given currency into the CNY/RUB/USD
// triple using the current snapshot.
func (s *CurrencyService) ConvertAll(amount float64, from currency.Currency) currency.Triple {
	rates, _ := s.Rates()

	return currency.ConvertAll(amount, from, rates)
}
