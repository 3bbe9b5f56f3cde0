package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Free-text prices look like "€ 79,95", "79.95", "vanaf 49" or "Op aanvraag".
// The first numeric substring wins; an optional comma or point with at most
// two fraction digits.
var amountPattern = regexp.MustCompile(`[-+]?\d+(?:[.,]\d{1,2})?`)

var vatDivisor = decimal.RequireFromString("1.21")

// ExtractAmount pulls the first amount out of a free-text price field.
// Returns false when the text holds no parseable number ("Op aanvraag").
func ExtractAmount(priceText string) (decimal.Decimal, bool) {
	match := amountPattern.FindString(priceText)
	if match == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.Replace(match, ",", ".", 1))
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// PriceBreakdown splits a VAT-inclusive amount at the 21% rate.
// Excl and VAT are rounded to cents independently, so Excl+VAT can differ
// from Incl by one cent. That is expected, not a bug.
type PriceBreakdown struct {
	Incl decimal.Decimal
	Excl decimal.Decimal
	VAT  decimal.Decimal
}

func BreakdownFromInclusive(incl decimal.Decimal) PriceBreakdown {
	exact := incl.Div(vatDivisor)
	return PriceBreakdown{
		Incl: incl,
		Excl: exact.Round(2),
		VAT:  incl.Sub(exact).Round(2),
	}
}

// FormatEuro renders an amount the Dutch way: comma as decimal separator.
func FormatEuro(d decimal.Decimal) string {
	return "€ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
