package currency

import (
	"database/sql/driver"
	"errors"
)

type Currency string

const (
	CurrencyCNY Currency = "CNY"
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
)

var ErrInvalidCurrency = errors.New("invalid currency")

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Value() (driver.Value, error) {
	return c.String(), nil
}

// ParseCurrency parses a currency code into one of the three supported
// currencies. CNY is the anchor currency all rates are expressed against.
func ParseCurrency(s string) (Currency, error) {
	switch s {
	case CurrencyCNY.String():
		return CurrencyCNY, nil
	case CurrencyRUB.String():
		return CurrencyRUB, nil
	case CurrencyUSD.String():
		return CurrencyUSD, nil
	default:
		return "", ErrInvalidCurrency
	}
}

// Rates is a point-in-time snapshot of exchange rates, keyed by currency
// code, valued in units of that currency per 1 CNY. CNY itself is never
// stored.
type Rates map[Currency]float64

// Rate returns the CNY-anchored rate for the given currency. Codes missing
// from the snapshot fall back to 1.0 so conversion stays total; malformed
// rate data degrades a conversion instead of failing it.
func (r Rates) Rate(c Currency) float64 {
	if rate, ok := r[c]; ok {
		return rate
	}

	return 1.0
}

// Clone returns an independent copy of the snapshot.
func (r Rates) Clone() Rates {
	clone := make(Rates, len(r))
	for code, rate := range r {
		clone[code] = rate
	}

	return clone
}

// Convert converts amount from one currency to another through the CNY
// anchor: from -> CNY -> to. Same-currency conversion is the identity and
// performs no rate lookup. Negative amounts pass through untouched.
func Convert(amount float64, from, to Currency, rates Rates) float64 {
	if from == to {
		return amount
	}

	inCNY := amount
	if from != CurrencyCNY {
		inCNY = amount / rates.Rate(from)
	}

	if to == CurrencyCNY {
		return inCNY
	}

	return inCNY * rates.Rate(to)
}

// Triple holds one amount expressed in all three supported currencies.
type Triple struct {
	CNY float64 `json:"CNY"`
	RUB float64 `json:"RUB"`
	USD float64 `json:"USD"`
}

// ConvertAll expands an amount in the given currency into the full triple.
func ConvertAll(amount float64, from Currency, rates Rates) Triple {
	inCNY := Convert(amount, from, CurrencyCNY, rates)

	return Triple{
		CNY: inCNY,
		RUB: Convert(inCNY, CurrencyCNY, CurrencyRUB, rates),
		USD: Convert(inCNY, CurrencyCNY, CurrencyUSD, rates),
	}
}
