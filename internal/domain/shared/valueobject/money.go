package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// DefaultCurrency is used when the system configuration has not been loaded
const DefaultCurrency = EUR

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrCurrencyMismatch is returned when combining amounts in different currencies
var ErrCurrencyMismatch = errors.New("currency mismatch")

// IsValid reports whether the code has the shape of an ISO 4217 code
func (c Currency) IsValid() bool {
	return currencyCodePattern.MatchString(string(c))
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}

// ParseCurrencyList splits a comma-separated list such as "EUR,USD, GBP".
// Blank entries are skipped; entries are trimmed but not upper-cased.
func ParseCurrencyList(list string) []Currency {
	parts := strings.Split(list, ",")
	out := make([]Currency, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Currency(p))
	}
	return out
}

// JoinCurrencies is the inverse of ParseCurrencyList
func JoinCurrencies(currencies []Currency) string {
	parts := make([]string, len(currencies))
	for i, c := range currencies {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// MoneyScale is the number of decimal places amounts are stored with
const MoneyScale int32 = 2

// Money is an immutable monetary amount in a single currency
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return NewMoney(d, currency)
}

// MustMoney is NewMoneyFromString for literals known to be valid
func MustMoney(amount string, currency Currency) Money {
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero amount in the given currency
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// FitsScale reports whether the amount has no significant digits beyond MoneyScale.
// "1.500" fits, "0.004" does not.
func (m Money) FitsScale() bool {
	return m.amount.Equal(m.amount.Truncate(MoneyScale))
}

// IsEmpty reports whether the value was never set
func (m Money) IsEmpty() bool {
	return m.currency == ""
}

// Add returns m + other; both must share a currency
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Multiply scales the amount by factor
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Percentage returns pct percent of m, e.g. Percentage(21) of 100 EUR is 21 EUR
func (m Money) Percentage(pct decimal.Decimal) Money {
	return m.Multiply(pct.Div(decimal.NewFromInt(100)))
}

// Round rounds the amount to the given number of decimal places
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places), currency: m.currency}
}

// Equals compares amount and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders "12.50 EUR"
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + string(m.currency)
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.String(),
		Currency: m.currency,
	})
}

// UnmarshalJSON accepts {"amount":"12.5","currency":"EUR"}; amount may also be a JSON number or absent
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   json.Number `json:"amount"`
		Currency Currency    `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	// a missing amount decodes as zero so the positivity rule reports it
	amount := decimal.Zero
	if v.Amount != "" {
		parsed, err := decimal.NewFromString(v.Amount.String())
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		amount = parsed
	}
	m.amount = amount
	m.currency = v.Currency
	return nil
}
