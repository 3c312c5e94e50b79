package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("MXN"))
	assert.True(t, IsValid("USD"))
	assert.False(t, IsValid("XYZ"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("mxn")) // codes are uppercase
}

func TestDefaultCurrency(t *testing.T) {
	assert.Equal(t, MXN, DefaultCurrency)
	assert.True(t, IsValid(string(DefaultCurrency)))
}

func TestSupportedCurrencyCodes(t *testing.T) {
	codes := SupportedCurrencyCodes()

	assert.Len(t, codes, len(SupportedCurrencies()))
	assert.Contains(t, codes, "MXN")
	assert.Contains(t, codes, "USD")
}

func TestGetInfo(t *testing.T) {
	info, ok := GetInfo(EUR)
	assert.True(t, ok)
	assert.Equal(t, "Euro", info.Name)
	assert.Equal(t, "€", info.Symbol)
	assert.Equal(t, 2, info.DecimalPlaces)

	_, ok = GetInfo("XYZ")
	assert.False(t, ok)
}

func TestRoundAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5678)

	assert.True(t, RoundAmount(amount, MXN).Equal(decimal.NewFromFloat(1234.57)))
	// unknown codes fall back to two places
	assert.True(t, RoundAmount(amount, "XYZ").Equal(decimal.NewFromFloat(1234.57)))
}

func TestFormat(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)

	assert.Equal(t, "$1234.50 MXN", Format(amount, MXN))
	assert.Equal(t, "R$1234.50 BRL", Format(amount, BRL))
	assert.Equal(t, "1234.50", Format(amount, "XYZ"))
}
