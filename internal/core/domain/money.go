package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor currency units. Integer math keeps ledger
// sums exact.
type Money int64

var (
	maxMoney = decimal.NewFromInt(math.MaxInt64)
	minMoney = decimal.NewFromInt(math.MinInt64)
)

// ParseMoney parses a decimal amount with at most two fraction digits,
// e.g. "100.04" or "12".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !d.Equal(d.Truncate(2)) {
		return 0, fmt.Errorf("%w: %q has more than two decimals", ErrInvalidAmount, s)
	}
	cents := d.Shift(2)
	if cents.GreaterThan(maxMoney) || cents.LessThan(minMoney) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return Money(cents.IntPart()), nil
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}
