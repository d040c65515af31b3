package money_test

import (
	"testing"

	"github.com/SscSPs/product_catalog/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"90", "90"},
		{"12.345678", "12.35"},
		{"0.001", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.Round2(decimal.RequireFromString(tt.in))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRound2_Idempotent(t *testing.T) {
	for _, s := range []string{"10.005", "3.14159", "-2.675", "1e-9", "123456.789"} {
		once := money.Round2(decimal.RequireFromString(s))
		assert.True(t, once.Equal(money.Round2(once)), s)
	}
}

func TestConvert(t *testing.T) {
	price := decimal.RequireFromString("100.00")

	assert.Equal(t, "90.00", money.Convert(price, 0.9).StringFixed(2))
	assert.Equal(t, "80.00", money.Convert(price, 0.8).StringFixed(2))
	// 1.1 * 0.1 is 0.11000000000000001 in float64; decimal keeps it exact.
	assert.Equal(t, "0.11", money.Convert(decimal.RequireFromString("1.1"), 0.1).StringFixed(2))
}

func TestParsePrice(t *testing.T) {
	got, err := money.ParsePrice("$12.5", money.DefaultSymbol)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got))

	got, err = money.ParsePrice(" 7 ", money.DefaultSymbol)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(got))

	_, err = money.ParsePrice("$abc", money.DefaultSymbol)
	assert.Error(t, err)

	_, err = money.ParsePrice("", money.DefaultSymbol)
	assert.Error(t, err)
}
