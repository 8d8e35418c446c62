package payproc

import (
	"github.com/shopspring/decimal"
)

// amt is a helper for tests to create an Amount from a decimal string.
func amt(s string) Amount {
	return NewAmount(decimal.RequireFromString(s))
}
