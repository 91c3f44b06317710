package engine

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers for display strings. Grouping and decimal marks
// follow the locale; the currency symbol is prepended as-is.
type Formatter struct {
	printer   *message.Printer
	symbol    string
	precision int
}

// NewFormatter builds a Formatter. An unknown locale falls back to en-US.
func NewFormatter(locale, symbol string, precision int) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		printer:   message.NewPrinter(tag),
		symbol:    symbol,
		precision: precision,
	}
}

func (f *Formatter) Int(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Currency always uses two decimals.
func (f *Formatter) Currency(v float64) string {
	return f.symbol + " " + f.printer.Sprintf("%.2f", v)
}

// Decimal uses the configured precision.
func (f *Formatter) Decimal(v float64) string {
	return f.Fixed(v, f.precision)
}

func (f *Formatter) Fixed(v float64, places int) string {
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", places), v)
}
