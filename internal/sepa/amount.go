package sepa

import "github.com/shopspring/decimal"

var centsPerUnit = decimal.NewFromInt(100)

// AmountToCents converts a major-unit amount to minor units (cents),
// truncating toward zero. AmountToCents(0.02) is 2.
func AmountToCents(amount decimal.Decimal) int64 {
	return amount.Mul(centsPerUnit).IntPart()
}

// CentsToDecimalString renders a cent amount with exactly two decimal
// places and no currency symbol, e.g. 500002 -> "5000.02".
func CentsToDecimalString(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// resolveAmountCents supports both amount conventions: a caller-supplied
// cent integer passes through unchanged, otherwise the major-unit decimal
// is converted. A non-zero AmountCents wins.
func resolveAmountCents(amount decimal.Decimal, amountCents int64) int64 {
	if amountCents != 0 {
		return amountCents
	}
	return AmountToCents(amount)
}
