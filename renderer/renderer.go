// Package renderer turns reports into markdown documents suitable for
// terminal display. It contributes no portfolio logic: every figure it
// prints was computed by the engine, here it only gets rounded and
// decorated.
package renderer

import (
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/psylone/tinky"
)

// maxNameLen is where instrument names are cut for the tables.
const maxNameLen = 29

// Name decorates an instrument display name: bold, truncated with an
// ellipsis when too long.
func Name(s string) string {
	runes := []rune(s)
	if len(runes) > maxNameLen {
		s = string(runes[:maxNameLen]) + "…"
	}
	return md.Bold(s)
}

// Price formats a monetary value with its currency glyph, e.g. "12.50 ₽".
func Price(m tinky.Money, reg *tinky.Registry) string {
	return fmt.Sprintf("%s %s", m.StringFixed(), reg.Symbol(m.Currency()))
}

// SignedPrice is Price with an explicit sign, for yields.
func SignedPrice(m tinky.Money, reg *tinky.Registry) string {
	return fmt.Sprintf("%s %s", m.SignedStringFixed(), reg.Symbol(m.Currency()))
}

// Arrow marks a yield direction. Flat yields get no mark.
func Arrow(d tinky.Direction) string {
	switch d {
	case tinky.Gain:
		return " ▲"
	case tinky.Loss:
		return " ▼"
	default:
		return ""
	}
}

// Timestamp is the "Last updated" footer of every report.
func Timestamp(r *tinky.Report) string {
	return fmt.Sprintf("Last updated: %s", r.Time.Format("2006-01-02 15:04:05"))
}
