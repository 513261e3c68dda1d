// Package currency renders amounts for display. Formatting is pure: no
// state, no locale lookup at runtime.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// rule describes how one supported currency is laid out. Fraction digits
// and the symbol grapheme come from the go-money registry; separator and
// placement conventions are fixed here.
type rule struct {
	thousandsSep string
	decimalSep   string
	symbolAfter  bool
	space        bool
}

var rules = map[string]rule{
	"USD": {thousandsSep: ",", decimalSep: "."},
	"GBP": {thousandsSep: ",", decimalSep: "."},
	"JPY": {thousandsSep: ",", decimalSep: "."},
	"EUR": {thousandsSep: ".", decimalSep: ",", symbolAfter: true, space: true},
}

var (
	thousand = decimal.NewFromInt(1_000)
	lakh     = decimal.NewFromInt(100_000)
	crore    = decimal.NewFromInt(10_000_000)
)

// Format renders amount in the display convention of the given currency
// code. INR uses Indian Crore/Lakh notation; other supported codes follow
// the rule table; unknown codes fall back to "<amount> <CODE>".
func Format(amount decimal.Decimal, code string) string {
	if code == "INR" {
		return formatINR(amount)
	}

	r, ok := rules[code]
	if !ok {
		return amount.StringFixed(2) + " " + code
	}

	cur := money.GetCurrency(code)
	sign := ""
	abs := amount
	if amount.IsNegative() {
		sign = "-"
		abs = amount.Neg()
	}

	digits := group(abs.StringFixed(int32(cur.Fraction)), r.thousandsSep, r.decimalSep)

	sep := ""
	if r.space {
		sep = " "
	}
	if r.symbolAfter {
		return sign + digits + sep + cur.Grapheme
	}
	return sign + cur.Grapheme + sep + digits
}

// formatINR applies the Indian numbering convention: >= 1 Crore renders as
// "X.XX Cr", >= 1 Lakh as "X.XX L", >= 1,000 with Indian digit grouping,
// otherwise plain two decimals. The sign goes before the symbol.
func formatINR(amount decimal.Decimal) string {
	sign := ""
	abs := amount
	if amount.IsNegative() {
		sign = "-"
		abs = amount.Neg()
	}

	symbol := money.GetCurrency("INR").Grapheme

	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + symbol + abs.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + symbol + abs.Div(lakh).StringFixed(2) + " L"
	case abs.GreaterThanOrEqual(thousand):
		return sign + symbol + groupIndian(abs.StringFixed(2))
	default:
		return sign + symbol + abs.StringFixed(2)
	}
}

// group inserts thousands separators into a non-negative "1234.56"-style
// string, grouping the integer digits in runs of three.
func group(fixed, thousandsSep, decimalSep string) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// groupIndian groups integer digits the Indian way: the last three digits,
// then runs of two ("1234567.00" -> "12,34,567.00").
func groupIndian(fixed string) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var groups []string
	rest := intPart
	if len(rest) > 3 {
		groups = append(groups, rest[len(rest)-3:])
		rest = rest[:len(rest)-3]
		for len(rest) > 2 {
			groups = append(groups, rest[len(rest)-2:])
			rest = rest[:len(rest)-2]
		}
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(",")
		}
	}
	if hasFrac {
		b.WriteString(".")
		b.WriteString(fracPart)
	}
	return b.String()
}
