package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

const rootLocale = "root"

type generatorConfig struct {
	pkg        string
	out        string
	cldrPath   string
	locales    []string
	currencies map[string]struct{}
}

type localePayload struct {
	Locale          string
	NumberingSystem string
	Symbols         symbolPayload
	AM              string
	PM              string
	ShortTime       string
	MediumTime      string
	CurrencyNames   map[string]string
}

type symbolPayload struct {
	Decimal         string
	Group           string
	Percent         string
	PerMille        string
	PlusSign        string
	MinusSign       string
	Infinity        string
	NaN             string
	CurrencyDecimal string
	CurrencyGroup   string
}

// alwaysNumberingSystems are emitted even when no generated locale defaults to them,
// so "nu" extensions can select them.
var alwaysNumberingSystems = []string{"arab", "arabext", "beng", "deva", "latn", "thai"}

var defaultCurrencies = []string{
	"AED", "BDT", "BRL", "CAD", "CHF", "CNY", "EGP", "EUR", "GBP", "INR",
	"IRR", "JPY", "MAD", "MXN", "RUB", "SAR", "THB", "TWD", "USD",
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "localeinfo-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList, currencyList listFlag

	flag.StringVar(&cfg.pkg, "pkg", "localeinfo", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "localedata.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag to add more; root is always included.")
	flag.Var(&currencyList, "currency", "ISO 4217 code whose names are extracted. Defaults to a built-in set.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	locales, err := normalizeLocales(localeList.items)
	if err != nil {
		return generatorConfig{}, err
	}
	cfg.locales = locales
	cfg.currencies = currencySet(currencyList.items)

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var payloads []localePayload
	for _, locale := range cfg.locales {
		ldml := data.RawLDML(cldrLocaleID(locale))
		if ldml == nil {
			return fmt.Errorf("missing LDML data for %s", locale)
		}
		payload := buildPayload(ldml, locale, cfg.currencies)
		payloads = append(payloads, payload)
	}

	digits := extractNumberingSystems(data.Supplemental(), payloads)
	for _, payload := range payloads {
		if payload.NumberingSystem == "" {
			continue
		}
		if _, ok := digits[payload.NumberingSystem]; !ok {
			return fmt.Errorf("%s: numbering system %q has no decimal digits", payload.Locale, payload.NumberingSystem)
		}
	}

	source, err := renderSource(cfg.pkg, payloads, digits)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetDirFilter("main", "supplemental")
	decoder.SetSectionFilter("numbers", "dates")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// normalizeLocales canonicalizes, dedupes and sorts the requested locales and makes
// sure root is present.
func normalizeLocales(items []string) ([]string, error) {
	seen := map[string]struct{}{rootLocale: {}}
	locales := []string{rootLocale}

	for _, item := range items {
		locale, err := parseLocale(item)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales, nil
}

func parseLocale(input string) (string, error) {
	input = strings.ReplaceAll(strings.TrimSpace(input), "_", "-")
	if input == "" {
		return "", errors.New("empty locale value")
	}
	if input == rootLocale {
		return input, nil
	}

	tag, err := language.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", input, err)
	}
	return tag.String(), nil
}

func cldrLocaleID(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}

func currencySet(codes []string) map[string]struct{} {
	if len(codes) == 0 {
		codes = defaultCurrencies
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 3 {
			continue
		}
		set[code] = struct{}{}
	}
	return set
}

func buildPayload(ldml *cldr.LDML, locale string, currencies map[string]struct{}) localePayload {
	payload := localePayload{Locale: locale}
	extractNumbers(ldml, &payload, currencies)
	extractGregorian(ldml, &payload)
	return payload
}

func extractNumbers(ldml *cldr.LDML, payload *localePayload, currencies map[string]struct{}) {
	if ldml == nil || ldml.Numbers == nil {
		return
	}
	numbers := ldml.Numbers

	for _, c := range leaves(&numbers.DefaultNumberingSystem) {
		if c.Alt == "" {
			payload.NumberingSystem = c.Data()
			break
		}
	}

	system := payload.NumberingSystem
	if system == "" {
		system = "latn"
	}
	for _, symbols := range numbers.Symbols {
		if symbols == nil || symbols.NumberSystem != system {
			continue
		}
		s := &payload.Symbols
		s.Decimal = firstData(&symbols.Decimal)
		s.Group = firstData(&symbols.Group)
		s.Percent = firstData(&symbols.PercentSign)
		s.PerMille = firstData(&symbols.PerMille)
		s.PlusSign = firstData(&symbols.PlusSign)
		s.MinusSign = firstData(&symbols.MinusSign)
		s.Infinity = firstData(&symbols.Infinity)
		s.NaN = firstData(&symbols.Nan)
		s.CurrencyDecimal = firstData(&symbols.CurrencyDecimal)
		s.CurrencyGroup = firstData(&symbols.CurrencyGroup)
	}

	if numbers.Currencies == nil {
		return
	}
	for _, cur := range numbers.Currencies.Currency {
		if cur == nil {
			continue
		}
		code := strings.ToUpper(cur.Type)
		if _, wanted := currencies[code]; !wanted {
			continue
		}
		name := uncountedData(&cur.DisplayName)
		if name == "" {
			continue
		}
		if payload.CurrencyNames == nil {
			payload.CurrencyNames = make(map[string]string)
		}
		payload.CurrencyNames[code] = name
	}
}

func extractGregorian(ldml *cldr.LDML, payload *localePayload) {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return
	}

	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar == nil || calendar.Type != "gregorian" {
			continue
		}

		if calendar.DayPeriods != nil {
			for _, context := range calendar.DayPeriods.DayPeriodContext {
				if context == nil || context.Type != "format" {
					continue
				}
				for _, width := range context.DayPeriodWidth {
					if width == nil || width.Type != "abbreviated" {
						continue
					}
					for _, period := range leaves(&width.DayPeriod) {
						if period.Alt != "" {
							continue
						}
						switch period.Type {
						case "am":
							payload.AM = period.Data()
						case "pm":
							payload.PM = period.Data()
						}
					}
				}
			}
		}

		if calendar.TimeFormats != nil {
			for _, length := range calendar.TimeFormats.TimeFormatLength {
				if length == nil {
					continue
				}
				var pattern string
				for _, tf := range length.TimeFormat {
					if tf == nil {
						continue
					}
					if pattern = firstData(&tf.Pattern); pattern != "" {
						break
					}
				}
				switch length.Type {
				case "short":
					payload.ShortTime = pattern
				case "medium":
					payload.MediumTime = pattern
				}
			}
		}
	}
}

// extractNumberingSystems returns the decimal digits of every numbering system used by
// payloads plus alwaysNumberingSystems.
func extractNumberingSystems(supplemental *cldr.SupplementalData, payloads []localePayload) map[string]string {
	wanted := make(map[string]struct{}, len(alwaysNumberingSystems))
	for _, system := range alwaysNumberingSystems {
		wanted[system] = struct{}{}
	}
	for _, payload := range payloads {
		if payload.NumberingSystem != "" {
			wanted[payload.NumberingSystem] = struct{}{}
		}
	}

	digits := make(map[string]string, len(wanted))
	if supplemental == nil || supplemental.NumberingSystems == nil {
		return digits
	}
	for _, system := range supplemental.NumberingSystems.NumberingSystem {
		if system == nil {
			continue
		}
		if _, ok := wanted[system.Id]; !ok {
			continue
		}
		if len([]rune(system.Digits)) != 10 {
			continue
		}
		digits[system.Id] = system.Digits
	}
	return digits
}

// leaves returns the Common part of every non-nil element in a slice of CLDR elements.
func leaves(slicePtr any) []*cldr.Common {
	slice := cldr.MakeSlice(slicePtr)
	value := slice.Value()
	out := make([]*cldr.Common, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		item := value.Index(i)
		if item.Kind() == reflect.Ptr && item.IsNil() {
			continue
		}
		elem, ok := item.Interface().(cldr.Elem)
		if !ok {
			continue
		}
		if common := elem.GetCommon(); common != nil {
			out = append(out, common)
		}
	}
	return out
}

func firstData(slicePtr any) string {
	for _, c := range leaves(slicePtr) {
		if c.Alt != "" {
			continue
		}
		if data := c.Data(); data != "" {
			return data
		}
	}
	return ""
}

// uncountedData prefers the display name without a plural count attribute.
func uncountedData(slicePtr any) string {
	slice := cldr.MakeSlice(slicePtr)
	value := slice.Value()
	var fallback string
	for i := 0; i < value.Len(); i++ {
		item := value.Index(i)
		if item.Kind() == reflect.Ptr && item.IsNil() {
			continue
		}
		elem, ok := item.Interface().(cldr.Elem)
		if !ok {
			continue
		}
		common := elem.GetCommon()
		if common == nil || common.Alt != "" {
			continue
		}
		if countAttr(item) == "" {
			return common.Data()
		}
		if fallback == "" {
			fallback = common.Data()
		}
	}
	return fallback
}

func countAttr(item reflect.Value) string {
	if item.Kind() == reflect.Ptr {
		item = item.Elem()
	}
	if item.Kind() != reflect.Struct {
		return ""
	}
	field := item.FieldByName("Count")
	if !field.IsValid() || field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}

func renderSource(pkg string, payloads []localePayload, digits map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by localeinfo-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var numberingSystemDigits = map[string]string{\n")
	for _, system := range sortedKeys(digits) {
		fmt.Fprintf(&buf, "\t%q: %q,\n", system, digits[system])
	}
	buf.WriteString("}\n\n")

	sorted := append([]localePayload(nil), payloads...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Locale < sorted[j].Locale
	})

	buf.WriteString("var localeDataBundles = map[string]LocaleData{\n")
	for _, payload := range sorted {
		fmt.Fprintf(&buf, "\t%q: {\n", payload.Locale)
		writeField(&buf, 2, "NumberingSystem", payload.NumberingSystem)

		symbols := []struct{ name, value string }{
			{"Decimal", payload.Symbols.Decimal},
			{"Group", payload.Symbols.Group},
			{"Percent", payload.Symbols.Percent},
			{"PerMille", payload.Symbols.PerMille},
			{"PlusSign", payload.Symbols.PlusSign},
			{"MinusSign", payload.Symbols.MinusSign},
			{"Infinity", payload.Symbols.Infinity},
			{"NaN", payload.Symbols.NaN},
			{"CurrencyDecimal", payload.Symbols.CurrencyDecimal},
			{"CurrencyGroup", payload.Symbols.CurrencyGroup},
		}
		if payload.Symbols != (symbolPayload{}) {
			buf.WriteString("\t\tSymbols: NumberSymbols{\n")
			for _, symbol := range symbols {
				writeField(&buf, 3, symbol.name, symbol.value)
			}
			buf.WriteString("\t\t},\n")
		}

		if payload.AM != "" || payload.PM != "" {
			buf.WriteString("\t\tDayPeriods: DayPeriods{\n")
			writeField(&buf, 3, "AM", payload.AM)
			writeField(&buf, 3, "PM", payload.PM)
			buf.WriteString("\t\t},\n")
		}

		if payload.ShortTime != "" || payload.MediumTime != "" {
			buf.WriteString("\t\tTimeFormats: TimeFormats{\n")
			writeField(&buf, 3, "Short", payload.ShortTime)
			writeField(&buf, 3, "Medium", payload.MediumTime)
			buf.WriteString("\t\t},\n")
		}

		if len(payload.CurrencyNames) > 0 {
			buf.WriteString("\t\tCurrencyNames: map[string]string{\n")
			for _, code := range sortedKeys(payload.CurrencyNames) {
				fmt.Fprintf(&buf, "\t\t\t%q: %q,\n", code, payload.CurrencyNames[code])
			}
			buf.WriteString("\t\t},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedLocales = []string{\n")
	for _, payload := range sorted {
		fmt.Fprintf(&buf, "\t%q,\n", payload.Locale)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedLocales lists the locales with bundled CLDR data.\n")
	buf.WriteString("func GeneratedLocales() []string {\n")
	buf.WriteString("\treturn append([]string{}, generatedLocales...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeField(buf *bytes.Buffer, indent int, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, "%s%s: %q,\n", strings.Repeat("\t", indent), name, value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
