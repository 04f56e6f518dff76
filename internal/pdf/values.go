// Package pdf lays out parsed Profit & Loss reports onto paginated pages and
// produces the final document bytes. Drawing primitives come from go-pdf/fpdf;
// this package owns only the layout decisions built on top of them.
package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroAmount is the printed stand-in for a value column the row never carried.
const zeroAmount = "0.00"

// one hundred, the percent scale and the self-percentage snap point.
var hundred = decimal.NewFromInt(100)

// percentSnap is how close to 100 a percentage must be to display as exactly
// 100. Rounding drift in upstream totals lands within this band.
var percentSnap = decimal.NewFromFloat(0.001)

// cleanNumber strips formatting the accounting API sometimes leaves in value
// strings: thousands separators, currency glyphs, parenthesized negatives.
func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	return s
}

// parseAmount returns the decimal value of a report string, zero when the
// string does not parse. Values never fail the pipeline.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(cleanNumber(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// percentOf formats value as a percentage of total. The result is blank, not
// zero, when the denominator is zero or the value does not parse: an absent
// percentage and a zero percentage mean different things on the page.
func percentOf(value string, total decimal.Decimal) string {
	if total.IsZero() {
		return ""
	}
	v, err := decimal.NewFromString(cleanNumber(value))
	if err != nil {
		return ""
	}
	p := v.Div(total).Mul(hundred)
	if p.Sub(hundred).Abs().LessThan(percentSnap) {
		p = hundred
	}
	return p.StringFixed(2) + "%"
}

// formatAmount renders a value string as a two-decimal figure with thousands
// separators. Unparseable input degrades to zero.
func formatAmount(s string) string {
	d := parseAmount(s)
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// currencySymbol maps an ISO code to its printed glyph. The code affects only
// the symbol, never arithmetic. Codes without a dedicated glyph print as the
// code itself.
func currencySymbol(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "USD", "CAD", "AUD", "NZD", "SGD", "HKD", "MXN":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY", "CNY":
		return "¥"
	case "":
		return "$"
	default:
		return strings.ToUpper(strings.TrimSpace(code)) + " "
	}
}
