package tinky

import "github.com/shopspring/decimal"

// Direction is the three-way sign classification of a yield, used purely
// for presentation.
type Direction int

const (
	Flat Direction = iota
	Gain
	Loss
)

// Valuation holds the derived per-position figures.
type Valuation struct {
	BuySum       Money // average buy price times quantity
	CurrentSum   Money // current price times quantity
	Yield        Money
	YieldPercent Percent
}

// Valuate computes the purchase cost, current value, absolute yield and
// yield percentage of one position.
//
// When either the average buy price or the quantity is exactly zero the
// yield percentage is defined as zero. That is a deliberate policy for
// freshly opened or fully blocked positions, not a missing case.
func Valuate(p Position) Valuation {
	buySum := p.AvgPrice.Mul(p.Quantity)
	currentSum := p.Price.Mul(p.Quantity)

	var percent decimal.Decimal
	if !p.AvgPrice.IsZero() && !p.Quantity.IsZero() {
		percent = p.Yield.Decimal().Div(buySum.Decimal()).Mul(decimal.NewFromInt(100))
	}

	return Valuation{
		BuySum:       buySum,
		CurrentSum:   currentSum,
		Yield:        p.Yield,
		YieldPercent: Percent(percent.InexactFloat64()),
	}
}

// Direction classifies the yield sign.
func (v Valuation) Direction() Direction {
	switch {
	case v.Yield.IsPositive():
		return Gain
	case v.Yield.IsNegative():
		return Loss
	default:
		return Flat
	}
}
