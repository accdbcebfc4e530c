package tinky

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity represents a number of units of an instrument held. Like
// Money it is an exact decimal; bonds and currencies can be held in
// fractional amounts.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient Quantity factory.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// NewQuantity converts the fixed-point pair (units, nanos) into an exact
// quantity, with the same sign rules as NewMoney.
func NewQuantity(units int64, nanos int32) (Quantity, error) {
	v, err := normalize(units, nanos)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
func (q Quantity) Add(p Quantity) Quantity {
	return Quantity{value: q.value.Add(p.value)}
}

// Decimal returns the exact decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

// String renders whole quantities without a fractional part, the way a
// position count is usually read.
func (q Quantity) String() string { return q.value.String() }
