// Package tinvest is a minimal client for the T-Invest OpenAPI REST
// gateway. It covers exactly the calls the report engine needs: user
// info, accounts, portfolio snapshots, the currency catalog, instrument
// lookup, and dividend/coupon schedules.
package tinvest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Namespace is the gRPC contract namespace exposed over REST.
const Namespace = "tinkoff.public.invest.api.contract.v1"

// DatetimeFormat is the timestamp format for query windows.
const DatetimeFormat = time.RFC3339

// Error is a transport-level failure carrying the HTTP status and the
// raw response body, so callers can tell a 404 from a 429.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tinvest: HTTP %d: %s", e.Status, e.Body)
}

// Client talks to one T-Invest endpoint on behalf of one token.
type Client struct {
	base    string
	token   string
	http    *http.Client
	catalog *http.Client // same transport behind a daily disk cache
	limiter *rate.Limiter

	mu        sync.Mutex
	accountID string // first open account, resolved once per process
}

// New returns a Client for the given endpoint and bearer token.
func New(base, token string) *Client {
	return &Client{
		base:    base,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		catalog: newDailyCachingClient(30 * time.Second),
		// the unary-method quota is per minute; stay well under it
		limiter: rate.NewLimiter(rate.Every(time.Second/4), 4),
	}
}

// UserInfo fetches the authenticated user's info.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	var out UserInfo
	if err := c.post(ctx, c.http, "UsersService/GetInfo", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Accounts fetches the user's open brokerage accounts.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var out struct {
		Accounts []Account `json:"accounts"`
	}
	params := map[string]any{"status": "ACCOUNT_STATUS_OPEN"}
	if err := c.post(ctx, c.http, "UsersService/GetAccounts", params, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// firstAccountID resolves and memoizes the first open account. Account
// identity is stable, so one lookup per process is enough.
func (c *Client) firstAccountID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accountID != "" {
		return c.accountID, nil
	}
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", fmt.Errorf("tinvest: no open accounts found")
	}
	c.accountID = accounts[0].ID
	return c.accountID, nil
}

// Portfolio fetches the portfolio snapshot of the first open account,
// with totals expressed in the given currency (RUB, USD or EUR).
func (c *Client) Portfolio(ctx context.Context, currency string) (*Portfolio, error) {
	accountID, err := c.firstAccountID(ctx)
	if err != nil {
		return nil, err
	}
	var out Portfolio
	params := map[string]any{"accountId": accountID, "currency": currency}
	if err := c.post(ctx, c.http, "OperationsService/GetPortfolio", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Currencies fetches the instrument-currency catalog. The catalog is
// stable, so the call goes through the daily disk cache.
func (c *Client) Currencies(ctx context.Context) ([]CurrencyInstrument, error) {
	var out struct {
		Instruments []CurrencyInstrument `json:"instruments"`
	}
	params := map[string]any{
		"instrumentStatus":   "INSTRUMENT_STATUS_UNSPECIFIED",
		"instrumentExchange": "INSTRUMENT_EXCHANGE_UNSPECIFIED",
	}
	if err := c.post(ctx, c.catalog, "InstrumentsService/Currencies", params, &out); err != nil {
		return nil, err
	}
	return out.Instruments, nil
}

// Instrument looks up a single instrument by uid or figi.
func (c *Client) Instrument(ctx context.Context, idType IDType, id string) (*Instrument, error) {
	var out struct {
		Instrument Instrument `json:"instrument"`
	}
	params := map[string]any{"idType": string(idType), "id": id}
	if err := c.post(ctx, c.http, "InstrumentsService/GetInstrumentBy", params, &out); err != nil {
		return nil, err
	}
	return &out.Instrument, nil
}

// Dividends fetches declared dividend payments for an instrument within
// the given window.
func (c *Client) Dividends(ctx context.Context, instrumentID string, from, to time.Time) ([]Dividend, error) {
	var out struct {
		Dividends []Dividend `json:"dividends"`
	}
	params := windowParams(instrumentID, from, to)
	if err := c.post(ctx, c.http, "InstrumentsService/GetDividends", params, &out); err != nil {
		return nil, err
	}
	return out.Dividends, nil
}

// BondCoupons fetches the coupon schedule for a bond within the given window.
func (c *Client) BondCoupons(ctx context.Context, instrumentID string, from, to time.Time) ([]Coupon, error) {
	var out struct {
		Events []Coupon `json:"events"`
	}
	params := windowParams(instrumentID, from, to)
	if err := c.post(ctx, c.http, "InstrumentsService/GetBondCoupons", params, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func windowParams(instrumentID string, from, to time.Time) map[string]any {
	params := map[string]any{"instrumentId": instrumentID}
	if !from.IsZero() {
		params["from"] = from.UTC().Format(DatetimeFormat)
	}
	if !to.IsZero() {
		params["to"] = to.UTC().Format(DatetimeFormat)
	}
	return params
}

// post performs a JSON POST to the namespaced method and unmarshals the
// response into out. Non-2xx responses become a *Error.
func (c *Client) post(ctx context.Context, client *http.Client, method string, params any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}

	addr := c.base + "/" + Namespace + "." + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Body: string(content)}
	}
	return json.Unmarshal(content, out)
}
