package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/psylone/tinky"
)

// WalletMarkdown renders the currency holdings. The balance is tagged
// with the glyph of the held currency itself, resolved through its
// exchange ticker; unrecognized currencies render with the "?" sentinel
// rather than breaking the wallet.
func WalletMarkdown(r *tinky.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Wallet")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight},
		Header:    []string{"Currencies", "Value"},
	}
	for _, row := range r.Positions {
		if !row.IsCurrency() {
			continue
		}
		balance := fmt.Sprintf("%s %s", row.Quantity.Decimal().StringFixed(2), r.Registry.SymbolByTicker(row.Ticker))
		table.Rows = append(table.Rows, []string{
			balance,
			Price(row.Valuation.CurrentSum, r.Registry),
		})
	}
	doc.Table(table)

	doc.PlainText(Timestamp(r))
	return doc.String()
}
