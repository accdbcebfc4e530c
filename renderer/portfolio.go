package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/psylone/tinky"
)

// PortfolioMarkdown renders the positions table and the totals summary.
func PortfolioMarkdown(r *tinky.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Type", "Name", "Amount", "Avg. price", "Yield", "Yield %"},
	}
	for _, row := range r.Positions {
		table.Rows = append(table.Rows, []string{
			strings.ToUpper(string(row.Type)),
			Name(row.Name),
			row.Quantity.String(),
			Price(row.AvgPrice, r.Registry),
			SignedPrice(row.Valuation.Yield, r.Registry) + Arrow(row.Valuation.Direction()),
			row.Valuation.YieldPercent.SignedString(),
		})
	}
	doc.Table(table)

	doc.H2("Total amount summary")
	doc.Table(summaryTable(r))

	doc.PlainText(Timestamp(r))
	return doc.String()
}

// SummaryMarkdown renders the totals summary alone.
func SummaryMarkdown(r *tinky.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Total amount summary")
	doc.Table(summaryTable(r))
	doc.PlainText(Timestamp(r))
	return doc.String()
}

func summaryTable(r *tinky.Report) md.TableSet {
	s := r.Summary
	return md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Avg. buy price", "Yield", "Expected total", "Cash", "Grand total"},
		Rows: [][]string{{
			Price(s.TotalPurchases, r.Registry),
			md.Bold(SignedPrice(s.ExpectedYield, r.Registry)) + " (" + s.YieldPercent.SignedString() + ")",
			Price(s.ExpectedTotal, r.Registry),
			Price(s.CashBalance, r.Registry),
			md.Bold(Price(s.GrandTotal, r.Registry)),
		}},
	}
}
