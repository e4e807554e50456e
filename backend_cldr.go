package localeinfo

import (
	"fmt"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// genericCurrencySymbol is reported when a locale has no currency.
	genericCurrencySymbol = "¤"
	// unknownCurrencyCode is ISO 4217 "no currency".
	unknownCurrencyCode = "XXX"
)

// englishCurrencyLocale is the locale used for English currency names.
var englishCurrencyLocale = language.AmericanEnglish

// CLDRBackend serves locale data from a LocaleCatalog built over the generated CLDR
// bundles, and currency codes and symbols from golang.org/x/text/currency.
type CLDRBackend struct {
	catalog *LocaleCatalog
}

var _ Backend = (*CLDRBackend)(nil)

// NewCLDRBackend wraps catalog. A nil catalog uses the generated bundles only.
func NewCLDRBackend(catalog *LocaleCatalog) (*CLDRBackend, error) {
	if catalog == nil {
		var err error
		catalog, err = NewLocaleCatalog(localeDataBundles, nil, nil)
		if err != nil {
			return nil, err
		}
	}
	return &CLDRBackend{catalog: catalog}, nil
}

// Catalog returns the catalog backing b.
func (b *CLDRBackend) Catalog() *LocaleCatalog {
	if b == nil {
		return nil
	}
	return b.catalog
}

// OpenNumberFormat implements Backend. A "nu" Unicode extension selects another
// known numbering system for the digits.
func (b *CLDRBackend) OpenNumberFormat(tag language.Tag) (NumberFormat, error) {
	if b == nil || b.catalog == nil {
		return nil, fmt.Errorf("%w: backend not initialised", ErrLibrary)
	}

	data := b.catalog.Resolve(tag)
	system := data.NumberingSystem
	if nu := tag.TypeForKey("nu"); nu != "" {
		if _, ok := numberingSystemDigits[nu]; ok {
			system = nu
		}
	}

	digits, err := numberingSystemGlyphs(system)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrLibrary, LocaleName(tag), err)
	}

	return &cldrNumberFormat{
		tag:     tag,
		symbols: data.Symbols,
		digits:  digits,
	}, nil
}

// OpenDateFormat implements Backend. Only time patterns are available, so dateStyle
// must be StyleNone.
func (b *CLDRBackend) OpenDateFormat(tag language.Tag, timeStyle, dateStyle FormatStyle) (DateFormat, error) {
	if b == nil || b.catalog == nil {
		return nil, fmt.Errorf("%w: backend not initialised", ErrLibrary)
	}
	if !timeStyle.valid() || !dateStyle.valid() {
		return nil, fmt.Errorf("%w: style %s/%s", ErrUnsupportedField, timeStyle, dateStyle)
	}
	if dateStyle != StyleNone {
		return nil, fmt.Errorf("%w: date style %s", ErrUnsupportedField, dateStyle)
	}
	if timeStyle == StyleNone {
		return nil, fmt.Errorf("%w: no time style", ErrUnsupportedField)
	}

	data := b.catalog.Resolve(tag)
	return &cldrDateFormat{
		style:   timeStyle,
		formats: data.TimeFormats,
		periods: data.DayPeriods,
	}, nil
}

// CurrencyForLocale implements Backend.
func (b *CLDRBackend) CurrencyForLocale(tag language.Tag) (currency.Unit, error) {
	return currencyForTag(tag)
}

// CurrencyName implements Backend. The long name is looked up along the inheritance
// chain of tag; when no locale names the currency its ISO code is returned.
func (b *CLDRBackend) CurrencyName(unit currency.Unit, tag language.Tag) (string, error) {
	if b == nil || b.catalog == nil {
		return "", fmt.Errorf("%w: backend not initialised", ErrLibrary)
	}
	code := unit.String()
	if code == "" || code == unknownCurrencyCode {
		return "", fmt.Errorf("%w: no currency", ErrLibrary)
	}

	for _, locale := range b.catalog.Chain(tag) {
		data, _ := b.catalog.Data(locale)
		if name := data.CurrencyNames[code]; name != "" {
			return name, nil
		}
	}
	return code, nil
}

func currencyForTag(tag language.Tag) (currency.Unit, error) {
	if tag.IsRoot() {
		return currency.Unit{}, fmt.Errorf("%w: root locale has no currency", ErrLibrary)
	}
	unit, confidence := currency.FromTag(tag)
	if confidence == language.No || unit.String() == unknownCurrencyCode {
		return currency.Unit{}, fmt.Errorf("%w: no currency for %q", ErrLibrary, LocaleName(tag))
	}
	return unit, nil
}

func numberingSystemGlyphs(system string) ([]string, error) {
	digits, ok := numberingSystemDigits[system]
	if !ok {
		return nil, fmt.Errorf("unknown numbering system %q", system)
	}
	runes := []rune(digits)
	if len(runes) != 10 {
		return nil, fmt.Errorf("numbering system %q has %d digits", system, len(runes))
	}
	glyphs := make([]string, len(runes))
	for i, r := range runes {
		glyphs[i] = string(r)
	}
	return glyphs, nil
}

type cldrNumberFormat struct {
	mu      sync.Mutex
	closed  bool
	tag     language.Tag
	symbols NumberSymbols
	digits  []string
}

func (f *cldrNumberFormat) Symbol(symbol NumberSymbol) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", ErrHandleClosed
	}

	if symbol.isDigit() {
		return f.digits[symbol-SymbolZeroDigit], nil
	}

	var value string
	switch symbol {
	case SymbolDecimalSeparator:
		value = f.symbols.Decimal
	case SymbolGroupingSeparator:
		value = f.symbols.Group
	case SymbolPercent:
		value = f.symbols.Percent
	case SymbolPlusSign:
		value = f.symbols.PlusSign
	case SymbolMinusSign:
		value = f.symbols.MinusSign
	case SymbolPerMill:
		value = f.symbols.PerMille
	case SymbolInfinity:
		value = f.symbols.Infinity
	case SymbolNaN:
		value = f.symbols.NaN
	case SymbolMonetarySeparator:
		value = firstNonEmpty(f.symbols.CurrencyDecimal, f.symbols.Decimal)
	case SymbolMonetaryGroupingSeparator:
		value = firstNonEmpty(f.symbols.CurrencyGroup, f.symbols.Group)
	case SymbolCurrency:
		value = f.currencySymbol()
	case SymbolIntlCurrency:
		value = unknownCurrencyCode
		if unit, err := currencyForTag(f.tag); err == nil {
			value = unit.String()
		}
	default:
		return "", fmt.Errorf("%w: number symbol %s", ErrUnsupportedField, symbol)
	}

	if value == "" {
		return "", fmt.Errorf("%w: no %s symbol for %q", ErrLibrary, symbol, LocaleName(f.tag))
	}
	return value, nil
}

func (f *cldrNumberFormat) currencySymbol() string {
	unit, err := currencyForTag(f.tag)
	if err != nil {
		return genericCurrencySymbol
	}
	symbol := message.NewPrinter(f.tag).Sprint(currency.Symbol(unit))
	if symbol == "" {
		return unit.String()
	}
	return symbol
}

func (f *cldrNumberFormat) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrHandleClosed
	}
	f.closed = true
	return nil
}

type cldrDateFormat struct {
	mu      sync.Mutex
	closed  bool
	style   FormatStyle
	formats TimeFormats
	periods DayPeriods
}

func (f *cldrDateFormat) Pattern() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", ErrHandleClosed
	}

	pattern := f.formats.Medium
	if f.style == StyleShort {
		pattern = f.formats.Short
	}
	if pattern == "" {
		return "", fmt.Errorf("%w: no %s time pattern", ErrLibrary, f.style)
	}
	return pattern, nil
}

func (f *cldrDateFormat) DayPeriod(index int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", ErrHandleClosed
	}

	var value string
	switch index {
	case 0:
		value = f.periods.AM
	case 1:
		value = f.periods.PM
	default:
		return "", fmt.Errorf("%w: day period %d", ErrUnsupportedField, index)
	}
	if value == "" {
		return "", fmt.Errorf("%w: no day period %d", ErrLibrary, index)
	}
	return value, nil
}

func (f *cldrDateFormat) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrHandleClosed
	}
	f.closed = true
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
