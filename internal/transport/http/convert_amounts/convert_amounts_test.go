package convertamounts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	convertamounts "github.com/corray333/cargo-manager/internal/transport/http/convert_amounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	lastAmount float64
	lastFrom   currency.Currency
}

func (s *stubService) ConvertAll(amount float64, from currency.Currency) currency.Triple {
	s.lastAmount = amount
	s.lastFrom = from

	rates := currency.Rates{
		currency.CurrencyRUB: 12.0,
		currency.CurrencyUSD: 0.137,
	}

	return currency.ConvertAll(amount, from, rates)
}

func TestConvertAmounts(t *testing.T) {
	svc := &stubService{}

	r := httptest.NewRequest(http.MethodGet, "/api/currency/conversions?amount=100&from=CNY", nil)
	w := httptest.NewRecorder()

	convertamounts.ConvertAmounts(w, r, svc)

	require.Equal(t, http.StatusOK, w.Code)

	var triple currency.Triple
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &triple))
	assert.InDelta(t, 100.0, triple.CNY, 1e-9)
	assert.InDelta(t, 1200.0, triple.RUB, 1e-9)
	assert.InDelta(t, 13.7, triple.USD, 1e-9)
}

func TestConvertAmounts_DefaultsToCNY(t *testing.T) {
	svc := &stubService{}

	r := httptest.NewRequest(http.MethodGet, "/api/currency/conversions?amount=5", nil)
	w := httptest.NewRecorder()

	convertamounts.ConvertAmounts(w, r, svc)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, currency.CurrencyCNY, svc.lastFrom)
	assert.Equal(t, 5.0, svc.lastAmount)
}

func TestConvertAmounts_MissingAmount(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/currency/conversions", nil)
	w := httptest.NewRecorder()

	convertamounts.ConvertAmounts(w, r, &stubService{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertAmounts_UnknownCurrencyPassesThrough(t *testing.T) {
	svc := &stubService{}

	r := httptest.NewRequest(http.MethodGet, "/api/currency/conversions?amount=50&from=XYZ", nil)
	w := httptest.NewRecorder()

	convertamounts.ConvertAmounts(w, r, svc)

	require.Equal(t, http.StatusOK, w.Code)

	var triple currency.Triple
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &triple))
	assert.InDelta(t, 50.0, triple.CNY, 1e-9)
}
