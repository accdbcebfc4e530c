package tinky

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value in a single currency.
//
// The broker encodes amounts as a fixed-point pair of integer units and
// fractional nano-units. Money keeps the exact decimal so that all
// aggregation happens at full precision; rounding to two digits happens
// only when a value is formatted for display.
type Money struct {
	value decimal.Decimal
	cur   string // ISO code, lowercase as the API reports it
}

// M is a convenient Money factory for values that are already decimal.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// NewMoney converts the fixed-point pair (units, nanos) into an exact
// decimal value: units + nanos/1e9.
//
// A nanos part whose sign contradicts the units part is a data error and
// is surfaced to the caller, never silently corrected.
func NewMoney(units int64, nanos int32, currency string) (Money, error) {
	v, err := normalize(units, nanos)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v, cur: currency}, nil
}

// normalize implements the fixed-point contract shared by Money and Quantity.
func normalize(units int64, nanos int32) (decimal.Decimal, error) {
	if (units > 0 && nanos < 0) || (units < 0 && nanos > 0) {
		return decimal.Decimal{}, fmt.Errorf("fixed-point pair (%d units, %d nanos): sign mismatch", units, nanos)
	}
	if nanos <= -1_000_000_000 || nanos >= 1_000_000_000 {
		return decimal.Decimal{}, fmt.Errorf("fixed-point pair (%d units, %d nanos): nanos out of range", units, nanos)
	}
	return decimal.New(units, 0).Add(decimal.New(int64(nanos), -9)), nil
}

// Currency returns the money's ISO currency code.
func (m Money) Currency() string { return m.cur }

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Neg() Money           { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String returns the exact value without a currency mark, mostly for
// diagnostics. Use StringFixed for display.
func (m Money) String() string { return m.value.String() }

// StringFixed returns the value rounded to two decimal places. This is
// the only place where display rounding is applied.
func (m Money) StringFixed() string { return m.value.StringFixed(2) }

// SignedStringFixed returns the value rounded to two decimal places with
// an explicit sign.
func (m Money) SignedStringFixed() string {
	s := m.value.StringFixed(2)
	if !m.value.IsNegative() {
		return "+" + s
	}
	return s
}
