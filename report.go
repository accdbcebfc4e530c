package tinky

import (
	"context"
	"fmt"
	"time"
)

// Options configure one report cycle.
type Options struct {
	Currency   string     // reporting currency (RUB, USD, EUR); default RUB
	WindowDays int        // cash-flow projection horizon; default DefaultWindowDays
	Names      *NameCache // optional cache to reuse across cycles; fresh if nil
}

// PositionRow is one valuated position with its resolved display name.
type PositionRow struct {
	Position
	Valuation Valuation
	Name      string
}

// Report is one complete portfolio report: a snapshot valuated,
// rolled up, and projected. It is immutable once built and discarded
// after rendering.
type Report struct {
	Time      time.Time
	Currency  string
	Registry  *Registry
	Positions []PositionRow
	Totals    Totals
	Summary   Summary
	CashFlows []CashFlow
	Failures  []Failure // auxiliary lookups that degraded this report
}

// BuildReport runs one report cycle against the broker.
//
// The portfolio fetch is primary: its failure (or a malformed payload)
// aborts the cycle. Everything downstream — the currency catalog, name
// resolution, dividend and coupon schedules — degrades the report and
// lands in Failures instead of failing the cycle.
//
// All cycle-scoped state (registry, valuations, projections) lives in
// the returned Report; only the name cache survives a cycle, and only
// when the caller passes one in.
func BuildReport(ctx context.Context, b Broker, opts Options) (*Report, error) {
	now := time.Now()
	currency := opts.Currency
	if currency == "" {
		currency = "RUB"
	}
	days := opts.WindowDays
	if days == 0 {
		days = DefaultWindowDays
	}
	names := opts.Names
	if names == nil {
		names = NewNameCache()
	}

	raw, err := b.Portfolio(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("fetching portfolio: %w", err)
	}
	positions, err := NewPositions(raw.Positions)
	if err != nil {
		return nil, err
	}
	totals, err := NewTotals(raw)
	if err != nil {
		return nil, err
	}

	var failures []Failure

	catalog, err := b.Currencies(ctx)
	if err != nil {
		// the registry falls back to its static table
		failures = append(failures, Failure{Op: "currencies", Err: err})
		catalog = nil
	}
	registry := NewRegistry(catalog)

	// the cache is fully built before projection so the projector never
	// triggers a second lookup for the same id
	failures = append(failures, names.Warm(ctx, b, positions)...)

	rows := make([]PositionRow, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, PositionRow{
			Position:  p,
			Valuation: Valuate(p),
			Name:      names.Resolve(p),
		})
	}

	flows, flowFailures, err := Project(ctx, b, names, positions, ProjectionWindow(now, days))
	if err != nil {
		return nil, err
	}
	failures = append(failures, flowFailures...)

	return &Report{
		Time:      now,
		Currency:  currency,
		Registry:  registry,
		Positions: rows,
		Totals:    totals,
		Summary:   Summarize(totals),
		CashFlows: flows,
		Failures:  failures,
	}, nil
}
