package payproc

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// minNormalFloat64 is the smallest positive normal float64 (2^-1022).
const minNormalFloat64 = 0x1p-1022

// Amount is an exact monetary quantity. It wraps decimal.Decimal so
// that balance arithmetic never drifts the way raw floats would.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps a decimal value as an Amount.
func NewAmount(value decimal.Decimal) Amount {
	return Amount{value: value}
}

// ParseAmount parses a decimal string like "100.0" into an Amount.
func ParseAmount(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	return Amount{value: value}, nil
}

// AmountFromFloat converts a raw float into an Amount, enforcing the
// amount domain at the float boundary: NaN, infinite, subnormal and
// sign-negative values (including -0.0) are rejected. Decimals cannot
// represent the excluded classes, so this is the only place the float
// predicate exists.
func AmountFromFloat(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f):
		return Amount{}, fmt.Errorf("%w: amount is NaN", ErrInvalidTransaction)
	case math.IsInf(f, 0):
		return Amount{}, fmt.Errorf("%w: amount is infinite", ErrInvalidTransaction)
	case math.Signbit(f):
		return Amount{}, fmt.Errorf("%w: amount must be a positive number", ErrInvalidTransaction)
	case f != 0 && math.Abs(f) < minNormalFloat64:
		// Subnormal values have lost precision already.
		return Amount{}, fmt.Errorf("%w: amount is subnormal", ErrInvalidTransaction)
	}
	return Amount{value: decimal.NewFromFloat(f)}, nil
}

// Validate reports whether the amount is inside the valid domain for
// a transaction: zero or strictly positive.
func (a Amount) Validate() error {
	if a.value.IsNegative() {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidTransaction)
	}
	return nil
}

func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) String() string            { return a.value.String() }

// MarshalJSON implements the json.Marshaler interface for Amount.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}
