package render

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders monetary values for a locale and currency unit.
// Formatting is zero-safe: NaN, infinities, and negative inputs render as
// zero.
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewCurrencyFormatter builds a formatter for a BCP 47 locale tag and a
// three-letter ISO 4217 currency code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

// Format renders the amount with the currency symbol and the currency's
// standard number of decimal places.
func (f *CurrencyFormatter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		v = 0
	}
	return f.printer.Sprint(currency.NarrowSymbol(f.unit.Amount(v)))
}
