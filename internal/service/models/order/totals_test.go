package order_test

import (
	"testing"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func testRates() currency.Rates {
	return currency.Rates{
		currency.CurrencyRUB: 12.0,
		currency.CurrencyUSD: 0.137,
	}
}

func TestResolveCreate_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		patch order.TotalsPatch
		want  order.Authority
	}{
		{"cny wins over rub", order.TotalsPatch{CNY: ptr(100), RUB: ptr(999)}, order.AuthorityCNY},
		{"cny wins over all", order.TotalsPatch{CNY: ptr(1), RUB: ptr(2), USD: ptr(3)}, order.AuthorityCNY},
		{"rub wins over usd", order.TotalsPatch{RUB: ptr(120), USD: ptr(5)}, order.AuthorityRUB},
		{"usd alone", order.TotalsPatch{USD: ptr(7)}, order.AuthorityUSD},
		{"empty patch", order.TotalsPatch{}, order.AuthorityNone},
		{"explicit zeroes", order.TotalsPatch{CNY: ptr(0), RUB: ptr(0)}, order.AuthorityNone},
		{"zero cny skipped, rub wins", order.TotalsPatch{CNY: ptr(0), RUB: ptr(120)}, order.AuthorityRUB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.ResolveCreate())
		})
	}
}

func TestResolveUpdate_ChecksAgainstBaseline(t *testing.T) {
	baseline := order.Totals{CNY: 100, RUB: 1200, USD: 13.7}

	tests := []struct {
		name  string
		patch order.TotalsPatch
		want  order.Authority
	}{
		{"changed cny", order.TotalsPatch{CNY: ptr(200)}, order.AuthorityCNY},
		{"unchanged cny, changed rub", order.TotalsPatch{CNY: ptr(100), RUB: ptr(2400)}, order.AuthorityRUB},
		{"all unchanged", order.TotalsPatch{CNY: ptr(100), RUB: ptr(1200), USD: ptr(13.7)}, order.AuthorityNone},
		{"changed usd only", order.TotalsPatch{USD: ptr(27.4)}, order.AuthorityUSD},
		{"nothing provided", order.TotalsPatch{}, order.AuthorityNone},
		{"cny precedence over changed rub", order.TotalsPatch{CNY: ptr(200), RUB: ptr(9999)}, order.AuthorityCNY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.ResolveUpdate(baseline))
		})
	}
}

func TestMerge_DerivesFromAuthoritativeField(t *testing.T) {
	rates := testRates()

	t.Run("cny authoritative ignores provided rub", func(t *testing.T) {
		patch := order.TotalsPatch{CNY: ptr(100), RUB: ptr(999)}
		totals := patch.Merge(order.Totals{}, patch.ResolveCreate(), rates)

		assert.InDelta(t, 100.0, totals.CNY, 1e-9)
		assert.InDelta(t, 1200.0, totals.RUB, 1e-9)
		assert.InDelta(t, 13.7, totals.USD, 1e-9)
	})

	t.Run("rub authoritative", func(t *testing.T) {
		patch := order.TotalsPatch{RUB: ptr(120)}
		totals := patch.Merge(order.Totals{}, patch.ResolveCreate(), rates)

		assert.InDelta(t, 10.0, totals.CNY, 1e-9)
		assert.InDelta(t, 120.0, totals.RUB, 1e-9)
		assert.InDelta(t, 1.37, totals.USD, 1e-9)
	})

	t.Run("usd authoritative", func(t *testing.T) {
		patch := order.TotalsPatch{USD: ptr(1.37)}
		totals := patch.Merge(order.Totals{}, patch.ResolveCreate(), rates)

		assert.InDelta(t, 10.0, totals.CNY, 1e-9)
		assert.InDelta(t, 120.0, totals.RUB, 1e-9)
		assert.InDelta(t, 1.37, totals.USD, 1e-9)
	})

	t.Run("no authority keeps baseline", func(t *testing.T) {
		baseline := order.Totals{CNY: 100, RUB: 1200, USD: 13.7}
		patch := order.TotalsPatch{}
		totals := patch.Merge(baseline, patch.ResolveUpdate(baseline), rates)

		assert.Equal(t, baseline, totals)
	})

	t.Run("no authority overlays provided values", func(t *testing.T) {
		patch := order.TotalsPatch{CNY: ptr(0), RUB: ptr(-7)}
		totals := patch.Merge(order.Totals{}, patch.ResolveCreate(), rates)

		assert.Equal(t, order.Totals{CNY: 0, RUB: -7, USD: 0}, totals)
	})
}

func TestMerge_ConsistencyInvariant(t *testing.T) {
	rates := testRates()

	patch := order.TotalsPatch{CNY: ptr(250)}
	totals := patch.Merge(order.Totals{}, patch.ResolveCreate(), rates)

	assert.InDelta(t, currency.Convert(totals.CNY, currency.CurrencyCNY, currency.CurrencyRUB, rates), totals.RUB, 1e-9)
	assert.InDelta(t, currency.Convert(totals.CNY, currency.CurrencyCNY, currency.CurrencyUSD, rates), totals.USD, 1e-9)
}
