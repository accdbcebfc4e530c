package tinky

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/psylone/tinky/tinvest"
)

// tolerance is the rounding tolerance of the reconciliation invariants.
var tolerance = decimal.New(1, -6)

// fakeBroker is a scriptable Broker for engine tests. Lookup results
// and failures are keyed by instrument id; every call is counted so
// memoization can be asserted.
type fakeBroker struct {
	portfolio    *tinvest.Portfolio
	portfolioErr error

	catalog    []tinvest.CurrencyInstrument
	catalogErr error

	instruments   map[string]*tinvest.Instrument
	instrumentErr map[string]error

	dividends    map[string][]tinvest.Dividend
	dividendsErr map[string]error

	coupons    map[string][]tinvest.Coupon
	couponsErr map[string]error

	instrumentCalls map[string]int
	dividendCalls   map[string]int
	couponCalls     map[string]int
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{
		instruments:     make(map[string]*tinvest.Instrument),
		instrumentErr:   make(map[string]error),
		dividends:       make(map[string][]tinvest.Dividend),
		dividendsErr:    make(map[string]error),
		coupons:         make(map[string][]tinvest.Coupon),
		couponsErr:      make(map[string]error),
		instrumentCalls: make(map[string]int),
		dividendCalls:   make(map[string]int),
		couponCalls:     make(map[string]int),
	}
}

func (f *fakeBroker) Portfolio(ctx context.Context, currency string) (*tinvest.Portfolio, error) {
	if f.portfolioErr != nil {
		return nil, f.portfolioErr
	}
	return f.portfolio, nil
}

func (f *fakeBroker) Currencies(ctx context.Context) ([]tinvest.CurrencyInstrument, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.catalog, nil
}

func (f *fakeBroker) Instrument(ctx context.Context, idType tinvest.IDType, id string) (*tinvest.Instrument, error) {
	f.instrumentCalls[id]++
	if err, ok := f.instrumentErr[id]; ok {
		return nil, err
	}
	if instrument, ok := f.instruments[id]; ok {
		return instrument, nil
	}
	return nil, &tinvest.Error{Status: 404, Body: "instrument not found"}
}

func (f *fakeBroker) Dividends(ctx context.Context, instrumentID string, from, to time.Time) ([]tinvest.Dividend, error) {
	f.dividendCalls[instrumentID]++
	if err, ok := f.dividendsErr[instrumentID]; ok {
		return nil, err
	}
	return f.dividends[instrumentID], nil
}

func (f *fakeBroker) BondCoupons(ctx context.Context, instrumentID string, from, to time.Time) ([]tinvest.Coupon, error) {
	f.couponCalls[instrumentID]++
	if err, ok := f.couponsErr[instrumentID]; ok {
		return nil, err
	}
	return f.coupons[instrumentID], nil
}

// mv is a shorthand MoneyValue constructor for fixtures.
func mv(currency string, units int64, nano int32) tinvest.MoneyValue {
	return tinvest.MoneyValue{Currency: currency, Units: units, Nano: nano}
}

// qt is a shorthand Quotation constructor for fixtures.
func qt(units int64, nano int32) tinvest.Quotation {
	return tinvest.Quotation{Units: units, Nano: nano}
}

// portfolioFixture is a small but complete portfolio snapshot.
func portfolioFixture() *tinvest.Portfolio {
	return &tinvest.Portfolio{
		TotalAmountPortfolio:  mv("rub", 1100, 500_000_000),
		TotalAmountCurrencies: mv("rub", 100, 250_000_000),
		ExpectedYield:         qt(25, 0),
		Positions: []tinvest.PortfolioPosition{
			sharePosition("share-uid", "BBG000000001", "GAZP", 10),
			{
				Figi:                 "BBG000000002",
				Ticker:               "SU26238RMFS4",
				InstrumentType:       "bond",
				Quantity:             qt(5, 0),
				AveragePositionPrice: mv("rub", 950, 0),
				ExpectedYield:        qt(-25, 0),
				CurrentPrice:         mv("rub", 945, 0),
				InstrumentUID:        "bond-uid",
			},
			{
				Figi:                 "BBG0013HGFT4",
				Ticker:               "USD000UTSTOM",
				InstrumentType:       "currency",
				Quantity:             qt(200, 0),
				AveragePositionPrice: mv("rub", 70, 0),
				ExpectedYield:        qt(1000, 0),
				CurrentPrice:         mv("rub", 75, 0),
				InstrumentUID:        "usd-uid",
			},
		},
	}
}

// sharePosition returns a plain share position fixture.
func sharePosition(uid, figi, ticker string, quantity int64) tinvest.PortfolioPosition {
	return tinvest.PortfolioPosition{
		Figi:                 figi,
		Ticker:               ticker,
		InstrumentType:       "share",
		Quantity:             qt(quantity, 0),
		AveragePositionPrice: mv("rub", 100, 0),
		ExpectedYield:        qt(10, 0),
		CurrentPrice:         mv("rub", 110, 0),
		InstrumentUID:        uid,
	}
}
