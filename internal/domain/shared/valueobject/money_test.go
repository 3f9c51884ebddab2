package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), EUR)
		require.NoError(t, err)
		assert.Equal(t, EUR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})

	t.Run("rejects malformed amount strings", func(t *testing.T) {
		_, err := NewMoneyFromString("ten", EUR)
		assert.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	a := MustMoney("10.25", EUR)
	b := MustMoney("4.75", EUR)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(MustMoney("15", EUR)))

	_, err = a.Add(MustMoney("1", USD))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_Percentage(t *testing.T) {
	m := MustMoney("200", USD)
	tax := m.Percentage(decimal.NewFromInt(21))
	assert.Equal(t, "42", tax.Amount().String())
	assert.Equal(t, USD, tax.Currency())
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, MustMoney("0.01", EUR).IsPositive())
	assert.False(t, MustMoney("0", EUR).IsPositive())
	assert.False(t, MustMoney("-3", EUR).IsPositive())
	assert.True(t, Zero(EUR).IsZero())
	assert.True(t, Money{}.IsEmpty())
}

func TestMoney_FitsScale(t *testing.T) {
	assert.True(t, MustMoney("12", EUR).FitsScale())
	assert.True(t, MustMoney("0.01", EUR).FitsScale())
	assert.True(t, MustMoney("1.500", EUR).FitsScale())
	assert.False(t, MustMoney("0.004", EUR).FitsScale())
	assert.False(t, MustMoney("10.125", EUR).FitsScale())
}

func TestMoney_JSON(t *testing.T) {
	m := MustMoney("99.90", GBP)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.9","currency":"GBP"}`, string(data))

	var fromNumber Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":12.5,"currency":"EUR"}`), &fromNumber))
	assert.True(t, fromNumber.Equals(MustMoney("12.5", EUR)))

	var missing Money
	require.NoError(t, json.Unmarshal([]byte(`{"currency":"EUR"}`), &missing))
	assert.True(t, missing.Equals(Zero(EUR)))
	assert.False(t, missing.IsPositive())

	var bad Money
	assert.Error(t, json.Unmarshal([]byte(`{"amount":"x","currency":"EUR"}`), &bad))
}

func TestParseCurrencyList(t *testing.T) {
	got := ParseCurrencyList("EUR, USD,,GBP ")
	assert.Equal(t, []Currency{EUR, USD, GBP}, got)
	assert.Equal(t, "EUR,USD,GBP", JoinCurrencies(got))
	assert.Empty(t, ParseCurrencyList(""))
}

func TestCurrency_IsValid(t *testing.T) {
	assert.True(t, Currency("EUR").IsValid())
	assert.False(t, Currency("eur").IsValid())
	assert.False(t, Currency("EURO").IsValid())
	assert.False(t, Currency("").IsValid())
}
