// Package money wraps shopspring decimal so every price, sub-total and
// total serializes as a fixed two-decimal string on the wire.
package money

import (
	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value with two-decimal wire precision.
type Amount struct {
	decimal.Decimal
}

func Zero() Amount {
	return Amount{decimal.Zero}
}

func New(d decimal.Decimal) Amount {
	return Amount{d}
}

func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// Round2 rounds half away from zero to two decimal places.
func (a Amount) Round2() Amount {
	return Amount{a.Decimal.Round(2)}
}

// MulInt returns a * n rounded to two decimal places.
func (a Amount) MulInt(n int) Amount {
	return Amount{a.Decimal.Mul(decimal.NewFromInt(int64(n)))}.Round2()
}

// AddAmount returns a + b.
func (a Amount) AddAmount(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// EqualAmount reports numeric equality regardless of exponent.
func (a Amount) EqualAmount(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// String renders the fixed two-decimal wire form, e.g. "7.50".
func (a Amount) String() string {
	return a.Decimal.StringFixed(2)
}

// MarshalJSON renders the amount as a quoted fixed two-decimal string.
// Prices must never cross the wire as floating point.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.Decimal.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal forms.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	a.Decimal = d
	return nil
}
