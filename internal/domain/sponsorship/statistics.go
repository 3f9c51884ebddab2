package sponsorship

import (
	"math"
	"sort"

	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Statistics summarizes a set of amounts in one currency
type Statistics struct {
	Count     int
	Average   decimal.Decimal
	Maximum   decimal.Decimal
	Minimum   decimal.Decimal
	Deviation decimal.Decimal
}

// ComputeStatistics returns average, extremes and sample standard deviation.
// ok is false for an empty input. A single value has deviation zero.
func ComputeStatistics(values []decimal.Decimal) (Statistics, bool) {
	n := len(values)
	if n == 0 {
		return Statistics{}, false
	}

	sum := decimal.Zero
	maximum, minimum := values[0], values[0]
	for _, v := range values {
		sum = sum.Add(v)
		if v.GreaterThan(maximum) {
			maximum = v
		}
		if v.LessThan(minimum) {
			minimum = v
		}
	}
	count := decimal.NewFromInt(int64(n))
	mean := sum.Div(count)

	deviation := decimal.Zero
	if n > 1 {
		squares := decimal.Zero
		for _, v := range values {
			diff := v.Sub(mean)
			squares = squares.Add(diff.Mul(diff))
		}
		variance := squares.Div(decimal.NewFromInt(int64(n - 1)))
		deviation = decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))
	}

	return Statistics{
		Count:     n,
		Average:   mean.Round(2),
		Maximum:   maximum,
		Minimum:   minimum,
		Deviation: deviation.Round(2),
	}, true
}

// StatisticsByCurrency groups amounts by currency and summarizes each group.
// Only currencies with at least one amount appear in the result.
func StatisticsByCurrency(amounts []valueobject.Money) map[valueobject.Currency]Statistics {
	groups := make(map[valueobject.Currency][]decimal.Decimal)
	for _, m := range amounts {
		if m.IsEmpty() {
			continue
		}
		groups[m.Currency()] = append(groups[m.Currency()], m.Amount())
	}

	out := make(map[valueobject.Currency]Statistics, len(groups))
	for currency, values := range groups {
		if stats, ok := ComputeStatistics(values); ok {
			out[currency] = stats
		}
	}
	return out
}

// SortedCurrencies returns the keys of a statistics map in lexical order
func SortedCurrencies(stats map[valueobject.Currency]Statistics) []valueobject.Currency {
	keys := make([]valueobject.Currency, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
