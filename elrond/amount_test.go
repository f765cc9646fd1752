package elrond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrencyAmount(t *testing.T) {
	tests := []struct {
		egld        string
		denominated string
	}{
		{"0.001", "1000000000000000"},
		{"1", "1000000000000000000"},
		{"2.5", "2500000000000000000"},
		{"0", "0"},
		{"0.000000000000000001", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.egld, func(t *testing.T) {
			amount, err := ParseCurrencyAmount(tt.egld)
			require.NoError(t, err)
			assert.Equal(t, tt.denominated, amount.Denominated())
		})
	}
}

func TestParseCurrencyAmountInvalid(t *testing.T) {
	for _, egld := range []string{"", "-1", "abc", "0.0000000000000000001"} {
		_, err := ParseCurrencyAmount(egld)
		assert.ErrorIs(t, err, ErrInvalidTransaction, egld)
	}
}

func TestCurrencyAmountFromDenominated(t *testing.T) {
	amount, err := CurrencyAmountFromDenominated("100000000000000")
	require.NoError(t, err)
	assert.Equal(t, "0.0001", amount.String())

	_, err = CurrencyAmountFromDenominated("1.5")
	assert.ErrorIs(t, err, ErrInvalidTransaction)

	var zero CurrencyAmount
	assert.Equal(t, "0", zero.Denominated())
	assert.Equal(t, "0", zero.String())
}
