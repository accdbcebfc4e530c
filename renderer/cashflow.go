package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/psylone/tinky"
)

// CashFlowMarkdown renders the projected dividend and coupon payments,
// already sorted by date by the engine.
func CashFlowMarkdown(r *tinky.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Upcoming cash flows")

	if len(r.CashFlows) == 0 {
		doc.PlainText("No dividends or coupons expected in the projection window.")
		doc.PlainText(Timestamp(r))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Name", "Kind", "Amount", "Quantity"},
	}
	for _, flow := range r.CashFlows {
		table.Rows = append(table.Rows, []string{
			flow.Date.String(),
			Name(flow.Name),
			strings.ToUpper(string(flow.Kind)),
			Price(flow.Amount, r.Registry),
			flow.Quantity.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(Timestamp(r))
	return doc.String()
}

// FailuresMarkdown renders the report's degradation diagnostics, for
// verbose mode.
func FailuresMarkdown(r *tinky.Report) string {
	if len(r.Failures) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Degraded lookups (%d)", len(r.Failures)))
	var items []string
	for _, f := range r.Failures {
		items = append(items, f.String())
	}
	doc.BulletList(items...)
	return doc.String()
}
