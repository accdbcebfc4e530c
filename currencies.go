package tinky

import (
	"strings"

	money "github.com/Rhymond/go-money"

	"github.com/psylone/tinky/tinvest"
)

// UnknownSymbol is rendered for currencies that resolve neither through
// the static table nor through the fetched catalog. Wallet and cash-flow
// rendering must keep going for unrecognized currencies, so lookups
// degrade to this sentinel instead of failing.
const UnknownSymbol = "?"

// CurrencyEntry describes one known currency: its lowercase ISO code,
// the glyph used for display, and the exchange ticker of the instrument
// it trades under, when there is one.
type CurrencyEntry struct {
	Code   string
	Symbol string
	Ticker string
}

// staticCurrencies is the seed table. The dynamic catalog extends it at
// runtime for every other currency the exchange lists.
var staticCurrencies = []CurrencyEntry{
	{Code: "rub", Symbol: "₽"},
	{Code: "usd", Symbol: "$", Ticker: "USD000UTSTOM"},
	{Code: "eur", Symbol: "€", Ticker: "EUR_RUB__TOM"},
}

// Registry resolves currency codes and exchange tickers to display
// glyphs. It merges the static seed table with the instrument-currency
// catalog fetched once per report cycle.
type Registry struct {
	byCode   map[string]CurrencyEntry
	byTicker map[string]string // ticker -> lowercase ISO code
}

// NewRegistry builds a Registry from the fetched catalog. A nil catalog
// yields a registry backed by the static table alone.
func NewRegistry(catalog []tinvest.CurrencyInstrument) *Registry {
	r := &Registry{
		byCode:   make(map[string]CurrencyEntry, len(staticCurrencies)),
		byTicker: make(map[string]string, len(catalog)),
	}
	for _, e := range staticCurrencies {
		r.byCode[e.Code] = e
		if e.Ticker != "" {
			r.byTicker[e.Ticker] = e.Code
		}
	}
	for _, ci := range catalog {
		if ci.Ticker == "" || ci.IsoCurrencyName == "" {
			continue
		}
		code := strings.ToLower(ci.IsoCurrencyName)
		// the static table wins over the catalog
		if _, ok := r.byTicker[ci.Ticker]; !ok {
			r.byTicker[ci.Ticker] = code
		}
	}
	return r
}

// Symbol returns the display glyph for a lowercase ISO currency code.
// Codes outside the static table fall back to the go-money grapheme, and
// finally to the uppercased code itself, so it never fails.
func (r *Registry) Symbol(code string) string {
	if e, ok := r.byCode[strings.ToLower(code)]; ok {
		return e.Symbol
	}
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil {
		return c.Grapheme
	}
	return strings.ToUpper(code)
}

// SymbolByTicker resolves an exchange ticker to a display glyph through
// the static table first, then the fetched catalog. Unresolvable tickers
// yield UnknownSymbol.
func (r *Registry) SymbolByTicker(ticker string) string {
	if code, ok := r.byTicker[ticker]; ok {
		return r.Symbol(code)
	}
	return UnknownSymbol
}

// CodeByTicker returns the lowercase ISO code an exchange ticker trades
// under, if known.
func (r *Registry) CodeByTicker(ticker string) (string, bool) {
	code, ok := r.byTicker[ticker]
	return code, ok
}
