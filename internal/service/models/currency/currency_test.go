package currency_test

import (
	"testing"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() currency.Rates {
	return currency.Rates{
		currency.CurrencyRUB: 12.0,
		currency.CurrencyUSD: 0.137,
	}
}

func TestParseCurrency(t *testing.T) {
	for _, code := range []string{"CNY", "RUB", "USD"} {
		parsed, err := currency.ParseCurrency(code)
		require.NoError(t, err)
		assert.Equal(t, code, parsed.String())
	}

	_, err := currency.ParseCurrency("EUR")
	assert.ErrorIs(t, err, currency.ErrInvalidCurrency)
}

func TestConvert_Identity(t *testing.T) {
	rates := testRates()

	for _, c := range []currency.Currency{currency.CurrencyCNY, currency.CurrencyRUB, currency.CurrencyUSD, "XYZ"} {
		assert.Equal(t, 42.5, currency.Convert(42.5, c, c, rates))
	}

	// Identity holds even with an empty snapshot.
	assert.Equal(t, 42.5, currency.Convert(42.5, currency.CurrencyRUB, currency.CurrencyRUB, currency.Rates{}))
}

func TestConvert_ThroughAnchor(t *testing.T) {
	rates := testRates()

	assert.InDelta(t, 1200.0, currency.Convert(100, currency.CurrencyCNY, currency.CurrencyRUB, rates), 1e-9)
	assert.InDelta(t, 13.7, currency.Convert(100, currency.CurrencyCNY, currency.CurrencyUSD, rates), 1e-9)
	assert.InDelta(t, 10.0, currency.Convert(120, currency.CurrencyRUB, currency.CurrencyCNY, rates), 1e-9)

	// RUB -> USD composes RUB -> CNY -> USD.
	assert.InDelta(t, 1.37, currency.Convert(120, currency.CurrencyRUB, currency.CurrencyUSD, rates), 1e-9)
}

func TestConvert_RoundTrip(t *testing.T) {
	rates := testRates()

	amount := 317.42
	rub := currency.Convert(amount, currency.CurrencyCNY, currency.CurrencyRUB, rates)
	back := currency.Convert(rub, currency.CurrencyRUB, currency.CurrencyCNY, rates)

	assert.InDelta(t, amount, back, 1e-9)
}

func TestConvert_UnknownCurrencyFallsBackToOne(t *testing.T) {
	rates := currency.Rates{currency.CurrencyRUB: 12.0}

	assert.Equal(t, 50.0, currency.Convert(50, "XYZ", currency.CurrencyCNY, rates))
	assert.Equal(t, 50.0, currency.Convert(50, currency.CurrencyCNY, "XYZ", rates))
}

func TestConvert_NegativeAmountPassesThrough(t *testing.T) {
	rates := testRates()

	assert.InDelta(t, -1200.0, currency.Convert(-100, currency.CurrencyCNY, currency.CurrencyRUB, rates), 1e-9)
}

func TestConvertAll(t *testing.T) {
	rates := testRates()

	triple := currency.ConvertAll(120, currency.CurrencyRUB, rates)

	assert.InDelta(t, 10.0, triple.CNY, 1e-9)
	assert.InDelta(t, 120.0, triple.RUB, 1e-9)
	assert.InDelta(t, 1.37, triple.USD, 1e-9)
}

func TestRates_Clone(t *testing.T) {
	rates := testRates()
	clone := rates.Clone()

	clone[currency.CurrencyRUB] = 99.0

	assert.Equal(t, 12.0, rates[currency.CurrencyRUB])
}
