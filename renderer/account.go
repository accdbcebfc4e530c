package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/psylone/tinky/tinvest"
)

// AccountMarkdown renders the user's tariff and open accounts.
func AccountMarkdown(info *tinvest.UserInfo, accounts []tinvest.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account")
	doc.PlainText(fmt.Sprintf("Tariff: %s, premium: %v, qualified: %v",
		info.Tariff, info.PremStatus, info.QualStatus))

	table := md.TableSet{
		Header: []string{"ID", "Name", "Type", "Status"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{a.ID, a.Name, a.Type, a.Status})
	}
	doc.Table(table)

	return doc.String()
}
