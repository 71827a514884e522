package orders

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders order totals for a locale.
type Formatter struct {
	unit currency.Unit
}

// NewFormatter parses an ISO 4217 code, falling back to INR.
func NewFormatter(code string) *Formatter {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		unit = currency.INR
	}
	return &Formatter{unit: unit}
}

// Currency returns the ISO 4217 code in use.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format renders amount with the currency symbol and the locale's digit
// grouping, e.g. "₹ 1,250.00". country, when known, refines the region.
func (f *Formatter) Format(amount float64, locale, country string) string {
	p := message.NewPrinter(resolveTag(locale, country))
	scale, _ := currency.Standard.Rounding(f.unit)
	return p.Sprintf("%v %v", currency.Symbol(f.unit), number.Decimal(amount, number.Scale(scale)))
}

func resolveTag(locale, country string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	if country == "" {
		return tag
	}
	region, err := language.ParseRegion(country)
	if err != nil {
		return tag
	}
	if withRegion, err := language.Compose(tag, region); err == nil {
		return withRegion
	}
	return tag
}
