package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places stored for DA amounts.
const AmountPrecision = 2

// CurrencySymbol is appended to amounts in human-readable messages.
const CurrencySymbol = "DA"

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount for messages, e.g. "2000.00 DA".
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, AmountPrecision) + " " + CurrencySymbol
}

// RoundAmount rounds an amount to the stored precision.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPrecision)
}
