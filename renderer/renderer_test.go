package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/psylone/tinky"
	"github.com/psylone/tinky/tinvest"
)

func reportFixture() *tinky.Report {
	registry := tinky.NewRegistry(nil)
	share := tinky.Position{
		UID:      "share-uid",
		Figi:     "BBG000000001",
		Ticker:   "GAZP",
		Type:     tinky.Share,
		Quantity: tinky.Q(10),
		AvgPrice: tinky.M(100, "rub"),
		Price:    tinky.M(110, "rub"),
		Yield:    tinky.M(100, "rub"),
	}
	usd := tinky.Position{
		UID:      "usd-uid",
		Figi:     "BBG0013HGFT4",
		Ticker:   "USD000UTSTOM",
		Type:     tinky.Currency,
		Quantity: tinky.Q(200.5),
		AvgPrice: tinky.M(70, "rub"),
		Price:    tinky.M(75, "rub"),
		Yield:    tinky.M(1000, "rub"),
	}
	return &tinky.Report{
		Time:     time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC),
		Currency: "RUB",
		Registry: registry,
		Positions: []tinky.PositionRow{
			{Position: share, Valuation: tinky.Valuate(share), Name: "Gazprom"},
			{Position: usd, Valuation: tinky.Valuate(usd), Name: "US Dollar"},
		},
		CashFlows: []tinky.CashFlow{{
			Date:     tinky.NewDate(2026, 9, 30),
			Name:     "Gazprom",
			Kind:     tinky.DividendFlow,
			Amount:   tinky.M(15, "rub"),
			Quantity: tinky.Q(10),
		}},
		Summary: tinky.Summary{
			TotalPurchases: tinky.M(800, "rub"),
			ExpectedYield:  tinky.M(200, "rub"),
			ExpectedTotal:  tinky.M(1000, "rub"),
			YieldPercent:   tinky.Percent(25),
			CashBalance:    tinky.M(100, "rub"),
			GrandTotal:     tinky.M(1100, "rub"),
		},
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "**Gazprom**", Name("Gazprom"))

	long := strings.Repeat("x", 40)
	got := Name(long)
	assert.Contains(t, got, "…")
	assert.Contains(t, got, strings.Repeat("x", 29))
	assert.NotContains(t, got, strings.Repeat("x", 30))
}

func TestPrice(t *testing.T) {
	reg := tinky.NewRegistry(nil)
	assert.Equal(t, "12.50 ₽", Price(tinky.M(12.5, "rub"), reg))
	assert.Equal(t, "+0.33 $", SignedPrice(tinky.M(1.0/3, "usd"), reg))
	assert.Equal(t, "-7.00 €", SignedPrice(tinky.M(-7, "eur"), reg))
}

func TestArrow(t *testing.T) {
	assert.Equal(t, " ▲", Arrow(tinky.Gain))
	assert.Equal(t, " ▼", Arrow(tinky.Loss))
	assert.Equal(t, "", Arrow(tinky.Flat))
}

func TestPortfolioMarkdown(t *testing.T) {
	out := PortfolioMarkdown(reportFixture())

	assert.Contains(t, out, "# Portfolio")
	assert.Contains(t, out, "**Gazprom**")
	assert.Contains(t, out, "SHARE")
	assert.Contains(t, out, "100.00 ₽")
	assert.Contains(t, out, "+100.00 ₽ ▲")
	assert.Contains(t, out, "+10.00%")
	assert.Contains(t, out, "## Total amount summary")
	assert.Contains(t, out, "**1100.00 ₽**")
	assert.Contains(t, out, "(+25.00%)")
	assert.Contains(t, out, "Last updated: 2026-08-31 15:04:05")
}

func TestWalletMarkdown(t *testing.T) {
	out := WalletMarkdown(reportFixture())

	assert.Contains(t, out, "# Wallet")
	// the balance carries the glyph of the held currency, not the
	// reporting currency
	assert.Contains(t, out, "200.50 $")
	assert.Contains(t, out, "15037.50 ₽")
	// only currency rows make the wallet
	assert.NotContains(t, out, "Gazprom")
}

func TestWalletMarkdownUnknownTicker(t *testing.T) {
	r := reportFixture()
	r.Positions[1].Ticker = "XAU000TOM"
	out := WalletMarkdown(r)
	assert.Contains(t, out, "200.50 ?")
}

func TestCashFlowMarkdown(t *testing.T) {
	out := CashFlowMarkdown(reportFixture())

	assert.Contains(t, out, "# Upcoming cash flows")
	assert.Contains(t, out, "2026-09-30")
	assert.Contains(t, out, "DIVIDEND")
	assert.Contains(t, out, "15.00 ₽")
}

func TestCashFlowMarkdownEmpty(t *testing.T) {
	r := reportFixture()
	r.CashFlows = nil
	out := CashFlowMarkdown(r)
	assert.Contains(t, out, "No dividends or coupons expected")
}

func TestFailuresMarkdown(t *testing.T) {
	r := reportFixture()
	assert.Empty(t, FailuresMarkdown(r))

	r.Failures = []tinky.Failure{{ID: "share-uid", Op: "dividends", Err: &tinvest.Error{Status: 429, Body: "rate limited"}}}
	out := FailuresMarkdown(r)
	assert.Contains(t, out, "Degraded lookups (1)")
	assert.Contains(t, out, "share-uid")
}

func TestAccountMarkdown(t *testing.T) {
	info := &tinvest.UserInfo{Tariff: "investor", PremStatus: false, QualStatus: true}
	accounts := []tinvest.Account{
		{ID: "acc-1", Name: "Main", Type: "ACCOUNT_TYPE_TINKOFF", Status: "ACCOUNT_STATUS_OPEN"},
	}
	out := AccountMarkdown(info, accounts)

	assert.Contains(t, out, "# Account")
	assert.Contains(t, out, "Tariff: investor")
	assert.Contains(t, out, "acc-1")
}
