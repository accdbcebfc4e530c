package tinky

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/psylone/tinky/tinvest"
)

// Totals are the broker-reported grand totals of a portfolio snapshot,
// normalized once at the payload boundary. Yield is the expected yield
// already expressed as a percentage of purchase cost.
type Totals struct {
	Portfolio  Money // total portfolio value, cash included
	Currencies Money // total value of currency holdings
	Yield      decimal.Decimal
}

// NewTotals normalizes the raw totals of a snapshot.
func NewTotals(raw *tinvest.Portfolio) (Totals, error) {
	portfolio, err := NewMoney(raw.TotalAmountPortfolio.Units, raw.TotalAmountPortfolio.Nano, raw.TotalAmountPortfolio.Currency)
	if err != nil {
		return Totals{}, fmt.Errorf("total portfolio amount: %w", err)
	}
	currencies, err := NewMoney(raw.TotalAmountCurrencies.Units, raw.TotalAmountCurrencies.Nano, raw.TotalAmountCurrencies.Currency)
	if err != nil {
		return Totals{}, fmt.Errorf("total currencies amount: %w", err)
	}
	yield, err := normalize(raw.ExpectedYield.Units, raw.ExpectedYield.Nano)
	if err != nil {
		return Totals{}, fmt.Errorf("expected yield: %w", err)
	}
	return Totals{Portfolio: portfolio, Currencies: currencies, Yield: yield}, nil
}

// Summary is the portfolio-level rollup, everything in the single
// reporting currency of the snapshot.
type Summary struct {
	TotalPurchases Money   // cost basis of all non-currency holdings
	ExpectedYield  Money   // unrealized yield of all non-currency holdings
	ExpectedTotal  Money   // purchases plus yield
	YieldPercent   Percent // broker-reported, relative to purchase cost
	CashBalance    Money
	GrandTotal     Money // securities plus cash, reconciles to the broker total
}

var hundred = decimal.NewFromInt(100)

// Summarize rolls the broker totals up into a Summary.
//
// The broker reports the expected yield as a percentage of purchase
// cost, so the cost basis is recovered algebraically:
//
//	purchases = securities / (1 + yield/100)
//	yield     = securities - purchases
func Summarize(t Totals) Summary {
	cash := t.Currencies
	securities := t.Portfolio.Sub(cash)

	// at -100% yield the divisor is zero: the whole purchase cost is
	// lost, so the algebraic limit applies
	divisor := decimal.NewFromInt(1).Add(t.Yield.Div(hundred))
	purchases := M(decimal.Zero, securities.Currency())
	if !divisor.IsZero() {
		purchases = securities.Div(Q(divisor))
	}
	yieldAmount := securities.Sub(purchases)

	return Summary{
		TotalPurchases: purchases,
		ExpectedYield:  yieldAmount,
		ExpectedTotal:  securities,
		YieldPercent:   Percent(t.Yield.InexactFloat64()),
		CashBalance:    cash,
		GrandTotal:     securities.Add(cash),
	}
}
