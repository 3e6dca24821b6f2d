// Package amount converts between human-readable decimal amounts and integer
// token units.
package amount

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is used when a token has no whitelist entry
const DefaultDecimals int32 = 18

// ErrInvalidAmount is returned for strings that are not plain non-negative decimals
var ErrInvalidAmount = errors.New("invalid amount")

var amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Validate reports whether s is a plain decimal string such as "10" or "0.015".
// Signs, exponents and surrounding whitespace are rejected.
func Validate(s string) error {
	if !amountPattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return nil
}

// ToUnits converts a decimal string to integer units for a token with the given
// decimals. Fraction digits beyond decimals are truncated, never rounded.
func ToUnits(s string, decimals int32) (*big.Int, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	if decimals < 0 {
		return nil, fmt.Errorf("negative decimals: %d", decimals)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	return d.Shift(decimals).Truncate(0).BigInt(), nil
}

// FromUnits renders integer units as a decimal string without trailing zeros
func FromUnits(units *big.Int, decimals int32) string {
	if units == nil {
		return "0"
	}
	return decimal.NewFromBigInt(units, -decimals).String()
}

// IsPositive reports whether s converts to a strictly positive number of units
func IsPositive(s string, decimals int32) bool {
	units, err := ToUnits(s, decimals)
	if err != nil {
		return false
	}
	return units.Sign() > 0
}
