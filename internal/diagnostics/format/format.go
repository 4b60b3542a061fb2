// Package format renders diagnostic figures for people.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no symbol is configured.
const DefaultCurrency = "$"

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Money renders a whole-unit amount with thousands separators, e.g. "$1,250".
func Money(symbol string, v float64) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	d := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + symbol + group(d.StringFixed(0))
}

// Hours renders hours with at most one decimal, e.g. "9.6" or "12".
func Hours(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String()
}

// Percent renders a percentage with at most one decimal and a trailing "%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String() + "%"
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
