package localeinfo

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Backend is the wrapped locale data library. Accessors open short-lived handles per
// call and close them before returning.
type Backend interface {
	OpenNumberFormat(tag language.Tag) (NumberFormat, error)
	OpenDateFormat(tag language.Tag, timeStyle, dateStyle FormatStyle) (DateFormat, error)
	CurrencyForLocale(tag language.Tag) (currency.Unit, error)
	CurrencyName(unit currency.Unit, tag language.Tag) (string, error)
}

// NumberFormat exposes the formatting symbols of one locale.
type NumberFormat interface {
	Symbol(symbol NumberSymbol) (string, error)
	Close() error
}

// DateFormat exposes the pattern and day period names of one date/time style.
type DateFormat interface {
	Pattern() (string, error)
	// DayPeriod returns the abbreviated AM (0) or PM (1) marker.
	DayPeriod(index int) (string, error)
	Close() error
}

// FormatStyle selects the length of a date or time pattern.
type FormatStyle int

const (
	StyleNone FormatStyle = iota
	StyleShort
	StyleMedium
)

func (s FormatStyle) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleShort:
		return "short"
	case StyleMedium:
		return "medium"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

func (s FormatStyle) valid() bool {
	return s >= StyleNone && s <= StyleMedium
}

// NumberSymbol selects a formatting symbol. The digit symbols zero through nine are
// contiguous.
type NumberSymbol int

const (
	SymbolDecimalSeparator NumberSymbol = iota
	SymbolGroupingSeparator
	SymbolPercent
	SymbolZeroDigit
	SymbolOneDigit
	SymbolTwoDigit
	SymbolThreeDigit
	SymbolFourDigit
	SymbolFiveDigit
	SymbolSixDigit
	SymbolSevenDigit
	SymbolEightDigit
	SymbolNineDigit
	SymbolPlusSign
	SymbolMinusSign
	SymbolCurrency
	SymbolIntlCurrency
	SymbolMonetarySeparator
	SymbolMonetaryGroupingSeparator
	SymbolPerMill
	SymbolInfinity
	SymbolNaN
)

// DigitSymbol returns the symbol of decimal digit d (0-9).
func DigitSymbol(d int) NumberSymbol {
	return SymbolZeroDigit + NumberSymbol(d)
}

func (s NumberSymbol) isDigit() bool {
	return s >= SymbolZeroDigit && s <= SymbolNineDigit
}

var numberSymbolNames = map[NumberSymbol]string{
	SymbolDecimalSeparator:          "decimal",
	SymbolGroupingSeparator:         "group",
	SymbolPercent:                   "percent",
	SymbolPlusSign:                  "plus",
	SymbolMinusSign:                 "minus",
	SymbolCurrency:                  "currency",
	SymbolIntlCurrency:              "intl-currency",
	SymbolMonetarySeparator:         "monetary-decimal",
	SymbolMonetaryGroupingSeparator: "monetary-group",
	SymbolPerMill:                   "per-mille",
	SymbolInfinity:                  "infinity",
	SymbolNaN:                       "nan",
}

func (s NumberSymbol) String() string {
	if s.isDigit() {
		return fmt.Sprintf("digit-%d", int(s-SymbolZeroDigit))
	}
	if name, ok := numberSymbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("symbol(%d)", int(s))
}
