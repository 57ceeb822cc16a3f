// Package format renders money, counts and dates for templates.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency symbol shown before amounts.
const Currency = "$"

// Money renders d as "$1,234.50".
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, _ := decimal.NewFromString(whole)
	return sign + Currency + printer.Sprintf("%d", n.IntPart()) + "." + frac
}

// Count renders n with thousands separators.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Compact renders large numbers as 1.2K / 3.4M for chart axes.
func Compact(d decimal.Decimal) string {
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return d.Div(decimal.NewFromInt(1_000_000)).Round(1).String() + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return d.Div(decimal.NewFromInt(1_000)).Round(1).String() + "K"
	default:
		return d.Round(0).String()
	}
}

// Date renders t as "Jan 2, 2006", or "-" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// DateTime renders t as "Jan 2, 2006 3:04 PM", or "-" for the zero time.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

// DatePtr is Date for optional times.
func DatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return Date(*t)
}

