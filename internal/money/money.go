// Package money holds the currency rules shared by the order and payment
// flows. All arithmetic goes through shopspring/decimal so budgets typed
// into the modal and amounts passed to the payment command never touch
// binary floats.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Stripe rejects charges below its fee floor; the command schema mirrors
// these bounds so invalid amounts never reach a remote call.
var (
	MinAmount = decimal.NewFromFloat(0.58)
	MaxAmount = decimal.NewFromFloat(10000.0)
)

var (
	ErrAmountTooSmall = errors.New("amount must be at least $0.58 to account for transaction fees")
	ErrAmountTooLarge = errors.New("amount must not exceed $10,000.00")
)

// ValidateAmount - enforces the payment bounds before any provider call
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinAmount) {
		return ErrAmountTooSmall
	}
	if amount.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

// MinorUnits - converts a major-unit amount to integer cents,
// rounding to the nearest cent (19.999 → 2000, 19.994 → 1999)
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FormatUSD - renders an amount as "$1,234.56"
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, cents, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}
