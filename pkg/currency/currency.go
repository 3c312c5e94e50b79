// Package currency provides standardized currency handling across the application.
// All monetary amounts are stored as decimal.Decimal to avoid floating-point errors.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	MXN Currency = "MXN" // Mexican Peso
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	CAD Currency = "CAD" // Canadian Dollar
	COP Currency = "COP" // Colombian Peso
	ARS Currency = "ARS" // Argentine Peso
	BRL Currency = "BRL" // Brazilian Real
)

// DefaultCurrency is the currency assumed when an account does not name one.
const DefaultCurrency = MXN

// CurrencyInfo contains metadata about a currency.
type CurrencyInfo struct {
	Code          Currency
	Name          string
	Symbol        string
	DecimalPlaces int
}

var currencies = map[Currency]CurrencyInfo{
	MXN: {Code: MXN, Name: "Mexican Peso", Symbol: "$", DecimalPlaces: 2},
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", DecimalPlaces: 2},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€", DecimalPlaces: 2},
	GBP: {Code: GBP, Name: "British Pound", Symbol: "£", DecimalPlaces: 2},
	CAD: {Code: CAD, Name: "Canadian Dollar", Symbol: "$", DecimalPlaces: 2},
	COP: {Code: COP, Name: "Colombian Peso", Symbol: "$", DecimalPlaces: 2},
	ARS: {Code: ARS, Name: "Argentine Peso", Symbol: "$", DecimalPlaces: 2},
	BRL: {Code: BRL, Name: "Brazilian Real", Symbol: "R$", DecimalPlaces: 2},
}

// SupportedCurrencies returns all supported currency codes.
func SupportedCurrencies() []Currency {
	return []Currency{MXN, USD, EUR, GBP, CAD, COP, ARS, BRL}
}

// SupportedCurrencyCodes returns all supported currency codes as strings.
func SupportedCurrencyCodes() []string {
	codes := SupportedCurrencies()
	result := make([]string, len(codes))
	for i, c := range codes {
		result[i] = string(c)
	}
	return result
}

// IsValid checks if a currency code is supported.
func IsValid(code string) bool {
	_, ok := currencies[Currency(code)]
	return ok
}

// GetInfo returns metadata for a currency code.
func GetInfo(code Currency) (CurrencyInfo, bool) {
	info, ok := currencies[code]
	return info, ok
}

// RoundAmount rounds a monetary amount to the currency's decimal places.
func RoundAmount(amount decimal.Decimal, code Currency) decimal.Decimal {
	info, ok := currencies[code]
	if !ok {
		return amount.Round(2)
	}
	return amount.Round(int32(info.DecimalPlaces))
}

// Format renders an amount with the currency symbol, e.g. "$1234.50 MXN".
func Format(amount decimal.Decimal, code Currency) string {
	info, ok := currencies[code]
	if !ok {
		return amount.StringFixed(2)
	}
	return fmt.Sprintf("%s%s %s", info.Symbol, amount.StringFixed(int32(info.DecimalPlaces)), info.Code)
}
