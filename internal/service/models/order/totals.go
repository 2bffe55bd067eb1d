package order

import (
	"github.com/corray333/cargo-manager/internal/service/models/currency"
)

// Totals is an order amount denominated in all three supported currencies.
type Totals struct {
	CNY float64 `json:"total_cny"`
	RUB float64 `json:"total_rub"`
	USD float64 `json:"total_usd"`
}

// TotalsPatch is the currency part of a write payload. Nil distinguishes
// "not provided" from an explicit zero.
type TotalsPatch struct {
	CNY *float64
	RUB *float64
	USD *float64
}

// Empty reports whether no currency field was provided.
func (p TotalsPatch) Empty() bool {
	return p.CNY == nil && p.RUB == nil && p.USD == nil
}

// Authority identifies which currency field of a write drives the other two.
// At most one field is ever authoritative; when several are provided the
// CNY > RUB > USD precedence wins and the rest are overwritten by
// derivation. That is a single-source-of-truth rule, not a validation error.
type Authority int

const (
	AuthorityNone Authority = iota
	AuthorityCNY
	AuthorityRUB
	AuthorityUSD
)

// ResolveCreate picks the authoritative field for a create: the first
// provided field with a positive value, in precedence order.
func (p TotalsPatch) ResolveCreate() Authority {
	switch {
	case p.CNY != nil && *p.CNY > 0:
		return AuthorityCNY
	case p.RUB != nil && *p.RUB > 0:
		return AuthorityRUB
	case p.USD != nil && *p.USD > 0:
		return AuthorityUSD
	default:
		return AuthorityNone
	}
}

// ResolveUpdate picks the authoritative field for an update: the first
// provided field that differs from the stored baseline, in precedence order.
func (p TotalsPatch) ResolveUpdate(baseline Totals) Authority {
	switch {
	case p.CNY != nil && *p.CNY != baseline.CNY:
		return AuthorityCNY
	case p.RUB != nil && *p.RUB != baseline.RUB:
		return AuthorityRUB
	case p.USD != nil && *p.USD != baseline.USD:
		return AuthorityUSD
	default:
		return AuthorityNone
	}
}

// Merge produces a fully consistent triple from the patch and the stored
// baseline. When a field is authoritative the other two are derived from it
// through the rate snapshot; when none is, provided values overlay the
// baseline untouched.
func (p TotalsPatch) Merge(baseline Totals, auth Authority, rates currency.Rates) Totals {
	switch auth {
	case AuthorityCNY:
		return fromAnchor(*p.CNY, currency.CurrencyCNY, rates)
	case AuthorityRUB:
		return fromAnchor(*p.RUB, currency.CurrencyRUB, rates)
	case AuthorityUSD:
		return fromAnchor(*p.USD, currency.CurrencyUSD, rates)
	case AuthorityNone:
		fallthrough
	default:
		merged := baseline
		if p.CNY != nil {
			merged.CNY = *p.CNY
		}
		if p.RUB != nil {
			merged.RUB = *p.RUB
		}
		if p.USD != nil {
			merged.USD = *p.USD
		}

		return merged
	}
}

// fromAnchor derives the two non-authoritative totals from the anchor value.
// The identity case of Convert keeps the anchor itself exactly as provided.
func fromAnchor(amount float64, from currency.Currency, rates currency.Rates) Totals {
	return Totals{
		CNY: currency.Convert(amount, from, currency.CurrencyCNY, rates),
		RUB: currency.Convert(amount, from, currency.CurrencyRUB, rates),
		USD: currency.Convert(amount, from, currency.CurrencyUSD, rates),
	}
}
