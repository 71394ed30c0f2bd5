package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// AmountFromDecimal converts a positive decimal amount to minor units (cents).
// Amounts with more than two fractional digits are rejected, never rounded.
func AmountFromDecimal(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	minor := amount.Shift(MaxDecimalPlaces)
	if minor.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: amount is too large", errs.ErrInvalidAmount)
	}

	return minor.IntPart(), nil
}

// MinorUnitsToDecimal converts minor units to a decimal value with two places
func MinorUnitsToDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -MaxDecimalPlaces)
}

// FormatAmount renders minor units as a fixed two-decimal string.
// For example 1015 becomes "10.15" and -5 becomes "-0.05".
func FormatAmount(minor int64) string {
	return MinorUnitsToDecimal(minor).StringFixed(MaxDecimalPlaces)
}
