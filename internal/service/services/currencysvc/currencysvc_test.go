package currencysvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/corray333/cargo-manager/internal/service/services/currencysvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateRepo struct {
	rates currency.Rates
	err   error
}

func (s *stubRateRepo) GetRates(context.Context) (currency.Rates, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rates.Clone(), nil
}

func newService(repo *stubRateRepo) *currencysvc.CurrencyService {
	return currencysvc.MustNewCurrencyService(
		currencysvc.WithRateRepository(repo),
	)
}

func TestRefreshNow_LoadsSnapshot(t *testing.T) {
	repo := &stubRateRepo{rates: currency.Rates{
		currency.CurrencyRUB: 12.0,
		currency.CurrencyUSD: 0.137,
	}}
	svc := newService(repo)

	rates, lastUpdate, err := svc.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.0, rates[currency.CurrencyRUB])
	assert.False(t, lastUpdate.IsZero())

	current, ts := svc.Rates()
	assert.Equal(t, rates, current)
	assert.Equal(t, lastUpdate, ts)
}

func TestRefreshNow_PicksUpChangedRates(t *testing.T) {
	repo := &stubRateRepo{rates: currency.Rates{currency.CurrencyRUB: 12.0}}
	svc := newService(repo)

	_, first, err := svc.RefreshNow(context.Background())
	require.NoError(t, err)

	repo.rates = currency.Rates{currency.CurrencyRUB: 13.5}

	rates, second, err := svc.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 13.5, rates[currency.CurrencyRUB])
	assert.False(t, second.Before(first))
}

func TestRefreshNow_Error(t *testing.T) {
	repo := &stubRateRepo{err: errors.New("connection refused")}
	svc := newService(repo)

	_, _, err := svc.RefreshNow(context.Background())
	assert.Error(t, err)
}

func TestRates_SnapshotIsIndependent(t *testing.T) {
	repo := &stubRateRepo{rates: currency.Rates{currency.CurrencyRUB: 12.0}}
	svc := newService(repo)

	_, _, err := svc.RefreshNow(context.Background())
	require.NoError(t, err)

	snapshot, _ := svc.Rates()
	snapshot[currency.CurrencyRUB] = 999.0

	fresh, _ := svc.Rates()
	assert.Equal(t, 12.0, fresh[currency.CurrencyRUB])
}

func TestConvertAll_UsesSnapshot(t *testing.T) {
	repo := &stubRateRepo{rates: currency.Rates{
		currency.CurrencyRUB: 12.0,
		currency.CurrencyUSD: 0.137,
	}}
	svc := newService(repo)

	_, _, err := svc.RefreshNow(context.Background())
	require.NoError(t, err)

	triple := svc.ConvertAll(100, currency.CurrencyCNY)
	assert.InDelta(t, 100.0, triple.CNY, 1e-9)
	assert.InDelta(t, 1200.0, triple.RUB, 1e-9)
	assert.InDelta(t, 13.7, triple.USD, 1e-9)
}
