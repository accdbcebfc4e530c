// Package tinky implements the portfolio valuation and cash-flow
// projection engine behind the `tinky` command-line tool.
//
// The engine consumes snapshots of a brokerage account fetched from the
// T-Invest OpenAPI (see the tinvest package) and turns them into
// display-ready reports:
//   - Fixed-Point Normalization: exact decimal values from the API's
//     (units, nanos) wire encoding, with rounding deferred to rendering.
//   - Position Valuation: purchase cost, current value and yield per
//     held position.
//   - Portfolio Rollup: single-currency totals reconciled against the
//     broker-reported grand totals.
//   - Instrument Name Resolution: a memoized, failure-tolerant cache
//     mapping opaque instrument identifiers to display names.
//   - Cash-Flow Projection: upcoming dividend and coupon payments over
//     a rolling future window, scaled by held quantities.
//
// Everything is computed fresh per report cycle from a read-only
// snapshot; the engine keeps no state between runs beyond the name
// cache, which is safe to reuse because instrument identity is stable.
package tinky
