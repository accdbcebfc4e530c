package tinky

import (
	"fmt"

	"github.com/psylone/tinky/tinvest"
)

// InstrumentType classifies a held position.
type InstrumentType string

const (
	Share    InstrumentType = "share"
	Bond     InstrumentType = "bond"
	ETF      InstrumentType = "etf"
	Currency InstrumentType = "currency"
	Other    InstrumentType = "other"
)

// parseInstrumentType maps the raw API type onto the engine's enum.
// Anything unrecognized (futures, options, structured products) is
// Other: still valuated, but never projected.
func parseInstrumentType(s string) InstrumentType {
	switch s {
	case "share", "bond", "etf", "currency":
		return InstrumentType(s)
	default:
		return Other
	}
}

// Position is the canonical model of one held instrument. It is built
// exactly once from the raw payload, so the rest of the engine never
// branches on payload shape.
type Position struct {
	UID      string // stable unique instrument id, preferred identifier
	Figi     string // exchange identifier, fallback when UID is absent
	Ticker   string
	Type     InstrumentType
	Quantity Quantity
	AvgPrice Money // average buy price per unit
	Price    Money // current price per unit
	Yield    Money // absolute unrealized yield for the whole position
	Daily    Money // today's yield, optional
	Blocked  bool
}

// ID returns the lookup identifier: the stable uid when present, the
// exchange identifier otherwise.
func (p Position) ID() string {
	if p.UID != "" {
		return p.UID
	}
	return p.Figi
}

// IsCurrency reports whether the position is a cash/currency holding.
func (p Position) IsCurrency() bool { return p.Type == Currency }

// NewPosition normalizes one raw payload row into the canonical shape.
// Malformed fixed-point pairs are a data defect and propagate.
func NewPosition(raw tinvest.PortfolioPosition) (Position, error) {
	quantity, err := NewQuantity(raw.Quantity.Units, raw.Quantity.Nano)
	if err != nil {
		return Position{}, fmt.Errorf("position %s: quantity: %w", raw.Figi, err)
	}
	avg, err := NewMoney(raw.AveragePositionPrice.Units, raw.AveragePositionPrice.Nano, raw.AveragePositionPrice.Currency)
	if err != nil {
		return Position{}, fmt.Errorf("position %s: average price: %w", raw.Figi, err)
	}
	price, err := NewMoney(raw.CurrentPrice.Units, raw.CurrentPrice.Nano, raw.CurrentPrice.Currency)
	if err != nil {
		return Position{}, fmt.Errorf("position %s: current price: %w", raw.Figi, err)
	}
	// the expected yield quotation is in the average-price currency
	yield, err := NewMoney(raw.ExpectedYield.Units, raw.ExpectedYield.Nano, raw.AveragePositionPrice.Currency)
	if err != nil {
		return Position{}, fmt.Errorf("position %s: expected yield: %w", raw.Figi, err)
	}
	daily, err := NewMoney(raw.DailyYield.Units, raw.DailyYield.Nano, raw.DailyYield.Currency)
	if err != nil {
		return Position{}, fmt.Errorf("position %s: daily yield: %w", raw.Figi, err)
	}
	return Position{
		UID:      raw.InstrumentUID,
		Figi:     raw.Figi,
		Ticker:   raw.Ticker,
		Type:     parseInstrumentType(raw.InstrumentType),
		Quantity: quantity,
		AvgPrice: avg,
		Price:    price,
		Yield:    yield,
		Daily:    daily,
		Blocked:  raw.Blocked,
	}, nil
}

// NewPositions normalizes a whole snapshot.
func NewPositions(raw []tinvest.PortfolioPosition) ([]Position, error) {
	positions := make([]Position, 0, len(raw))
	for _, r := range raw {
		p, err := NewPosition(r)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}
