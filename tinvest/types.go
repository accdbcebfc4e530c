package tinvest

import "time"

// Wire types of the T-Invest OpenAPI REST gateway
// (tinkoff.public.invest.api.contract.v1). Per the proto3 JSON mapping,
// int64 fields arrive as JSON strings.

// MoneyValue is the API's fixed-point encoding of a monetary amount:
// integer major units plus fractional nano-units, tagged with a
// lowercase ISO currency code.
type MoneyValue struct {
	Currency string `json:"currency"`
	Units    int64  `json:"units,string"`
	Nano     int32  `json:"nano"`
}

// Quotation is a MoneyValue without a currency, used for quantities and
// relative values.
type Quotation struct {
	Units int64 `json:"units,string"`
	Nano  int32 `json:"nano"`
}

// Account is one brokerage account of the authenticated user.
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

// UserInfo describes the authenticated user's tariff and status flags.
type UserInfo struct {
	PremStatus bool   `json:"premStatus"`
	QualStatus bool   `json:"qualStatus"`
	Tariff     string `json:"tariff"`
}

// PortfolioPosition is one raw position row of a portfolio snapshot.
type PortfolioPosition struct {
	Figi                 string     `json:"figi"`
	Ticker               string     `json:"ticker"`
	InstrumentType       string     `json:"instrumentType"`
	Quantity             Quotation  `json:"quantity"`
	AveragePositionPrice MoneyValue `json:"averagePositionPrice"`
	ExpectedYield        Quotation  `json:"expectedYield"`
	CurrentPrice         MoneyValue `json:"currentPrice"`
	DailyYield           MoneyValue `json:"dailyYield"`
	InstrumentUID        string     `json:"instrumentUid"`
	Blocked              bool       `json:"blocked"`
}

// Portfolio is the OperationsService/GetPortfolio response: the raw
// position rows plus the broker-computed grand totals in the requested
// reporting currency. ExpectedYield is already a percentage.
type Portfolio struct {
	TotalAmountPortfolio  MoneyValue          `json:"totalAmountPortfolio"`
	TotalAmountCurrencies MoneyValue          `json:"totalAmountCurrencies"`
	ExpectedYield         Quotation           `json:"expectedYield"`
	Positions             []PortfolioPosition `json:"positions"`
	AccountID             string              `json:"accountId"`
}

// Instrument is the subset of InstrumentsService/GetInstrumentBy the
// engine consumes.
type Instrument struct {
	Figi           string `json:"figi"`
	Ticker         string `json:"ticker"`
	ISIN           string `json:"isin"`
	Name           string `json:"name"`
	Currency       string `json:"currency"`
	UID            string `json:"uid"`
	InstrumentType string `json:"instrumentType"`
}

// CurrencyInstrument is one entry of the instrument-currency catalog,
// linking an exchange ticker (e.g. USD000UTSTOM) to an ISO code.
type CurrencyInstrument struct {
	Figi            string `json:"figi"`
	Ticker          string `json:"ticker"`
	Name            string `json:"name"`
	IsoCurrencyName string `json:"isoCurrencyName"`
}

// DividendStatusCancelled marks a dividend payment that was declared and
// later cancelled; such events must not appear in projections.
const DividendStatusCancelled = "DIVIDEND_STATUS_CANCELLED"

// Dividend is one declared dividend payment of a share or etf.
// DividendNet is the per-unit net amount.
type Dividend struct {
	DividendNet  MoneyValue `json:"dividendNet"`
	PaymentDate  time.Time  `json:"paymentDate"`
	DeclaredDate time.Time  `json:"declaredDate"`
	DividendType string     `json:"dividendType"`
	Status       string     `json:"status"`
}

// Coupon is one bond coupon payment. PayOneBond is the per-bond amount.
type Coupon struct {
	Figi         string     `json:"figi"`
	CouponDate   time.Time  `json:"couponDate"`
	CouponNumber int64      `json:"couponNumber,string"`
	PayOneBond   MoneyValue `json:"payOneBond"`
}

// IDType selects the identifier kind for instrument lookups.
type IDType string

const (
	IDTypeUID  IDType = "INSTRUMENT_ID_TYPE_UID"
	IDTypeFigi IDType = "INSTRUMENT_ID_TYPE_FIGI"
)
