package tinky

import (
	"context"
	"fmt"
	"time"

	"github.com/psylone/tinky/tinvest"
)

// Broker is the narrow surface of the trading API the report engine
// consumes. *tinvest.Client satisfies it; tests substitute fakes.
//
// Portfolio is primary data: its failure aborts the report cycle. The
// remaining calls are auxiliary and their failures only degrade the
// report (see Failure).
type Broker interface {
	Portfolio(ctx context.Context, currency string) (*tinvest.Portfolio, error)
	Currencies(ctx context.Context) ([]tinvest.CurrencyInstrument, error)
	Instrument(ctx context.Context, idType tinvest.IDType, id string) (*tinvest.Instrument, error)
	Dividends(ctx context.Context, instrumentID string, from, to time.Time) ([]tinvest.Dividend, error)
	BondCoupons(ctx context.Context, instrumentID string, from, to time.Time) ([]tinvest.Coupon, error)
}

var _ Broker = (*tinvest.Client)(nil)

// Failure records one isolated per-instrument lookup failure. The
// report carries the full list so a verbose caller can surface what
// degraded instead of the errors being swallowed silently.
type Failure struct {
	ID  string // instrument identifier, empty for cycle-wide lookups
	Op  string // which lookup failed: "instrument", "dividends", "coupons", "currencies"
	Err error
}

func (f Failure) String() string {
	if f.ID == "" {
		return fmt.Sprintf("%s: %v", f.Op, f.Err)
	}
	return fmt.Sprintf("%s %s: %v", f.Op, f.ID, f.Err)
}
