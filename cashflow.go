package tinky

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/psylone/tinky/tinvest"
)

// CashFlowKind tells a dividend payment from a bond coupon.
type CashFlowKind string

const (
	DividendFlow CashFlowKind = "dividend"
	CouponFlow   CashFlowKind = "coupon"
)

// CashFlow is one projected payment owed to the current holdings:
// the per-unit amount declared by the issuer, scaled by the held
// quantity. Projections are rebuilt from scratch every cycle.
type CashFlow struct {
	Date     Date
	Name     string // resolved instrument display name
	Kind     CashFlowKind
	Amount   Money
	Quantity Quantity
}

// Window is the future interval a projection covers.
type Window struct {
	From, To time.Time
}

// DefaultWindowDays is the default projection horizon.
const DefaultWindowDays = 90

// ProjectionWindow returns the [now, now+days] projection window.
func ProjectionWindow(now time.Time, days int) Window {
	return Window{From: now, To: now.AddDate(0, 0, days)}
}

// Project queries upcoming dividend and coupon events for every
// non-currency holding and merges them into one list, sorted ascending
// by date. Shares and etfs are queried for dividends, bonds for
// coupons; other instrument kinds are skipped.
//
// A fetch failure on one instrument is isolated: the instrument is
// reported in the failure list and the projection continues with the
// rest. Zero-quantity holdings still project (with zero amounts); hiding
// them is the caller's choice. A malformed payload is a defect and
// aborts the projection.
func Project(ctx context.Context, b Broker, names *NameCache, positions []Position, w Window) ([]CashFlow, []Failure, error) {
	var flows []CashFlow
	var failures []Failure

	horizon := DateOf(w.From)

	for _, p := range positions {
		switch p.Type {
		case Share, ETF:
			dividends, err := b.Dividends(ctx, p.ID(), w.From, w.To)
			if err != nil {
				failures = append(failures, Failure{ID: p.ID(), Op: "dividends", Err: err})
				continue
			}
			for _, d := range dividends {
				if d.Status == tinvest.DividendStatusCancelled {
					continue
				}
				day := DateOf(d.PaymentDate)
				if day.Before(horizon) {
					// declared but already paid
					continue
				}
				perUnit, err := NewMoney(d.DividendNet.Units, d.DividendNet.Nano, d.DividendNet.Currency)
				if err != nil {
					return nil, failures, fmt.Errorf("dividend of %s: %w", p.ID(), err)
				}
				flows = append(flows, CashFlow{
					Date:     day,
					Name:     names.Resolve(p),
					Kind:     DividendFlow,
					Amount:   perUnit.Mul(p.Quantity),
					Quantity: p.Quantity,
				})
			}

		case Bond:
			coupons, err := b.BondCoupons(ctx, p.ID(), w.From, w.To)
			if err != nil {
				failures = append(failures, Failure{ID: p.ID(), Op: "coupons", Err: err})
				continue
			}
			for _, c := range coupons {
				day := DateOf(c.CouponDate)
				if day.Before(horizon) {
					continue
				}
				perBond, err := NewMoney(c.PayOneBond.Units, c.PayOneBond.Nano, c.PayOneBond.Currency)
				if err != nil {
					return nil, failures, fmt.Errorf("coupon of %s: %w", p.ID(), err)
				}
				flows = append(flows, CashFlow{
					Date:     day,
					Name:     names.Resolve(p),
					Kind:     CouponFlow,
					Amount:   perBond.Mul(p.Quantity),
					Quantity: p.Quantity,
				})
			}
		}
	}

	// same-date events from different instruments are distinct; the
	// stable sort keeps their fetch order
	sort.SliceStable(flows, func(i, j int) bool { return flows[i].Date.Before(flows[j].Date) })
	return flows, failures, nil
}
