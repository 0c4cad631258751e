// Package format renders calculator numbers for display: fixed precision
// rounding, locale-aware grouping and currency symbols.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultLocale = "en"

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Number formats value with locale grouping and at most decimals fraction digits.
func Number(value float64, decimals int, locale string) string {
	p := message.NewPrinter(parseTag(locale))
	return p.Sprintf("%v", number.Decimal(Round(value, decimals), number.MaxFractionDigits(decimals)))
}

// Fixed formats value with locale grouping and exactly decimals fraction digits.
func Fixed(value float64, decimals int, locale string) string {
	p := message.NewPrinter(parseTag(locale))
	return p.Sprintf("%v", number.Decimal(Round(value, decimals),
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// Money formats value in the given ISO currency.
func Money(value float64, code, locale string) (string, error) {
	cur, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("currency %q: %w", code, err)
	}
	p := message.NewPrinter(parseTag(locale))
	return p.Sprintf("%v", currency.Symbol(cur.Amount(Round(value, 2)))), nil
}

// Percent formats a fraction (0.25) as a percentage.
func Percent(value float64, locale string) string {
	p := message.NewPrinter(parseTag(locale))
	return p.Sprintf("%v", number.Percent(value))
}

func parseTag(locale string) language.Tag {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
