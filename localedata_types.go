package localeinfo

// LocaleData holds the CLDR derived values for one locale. Empty fields inherit from
// the parent locale.
type LocaleData struct {
	// NumberingSystem names the default numbering system, e.g. "latn" or "arab".
	NumberingSystem string            `json:"numbering_system,omitempty" yaml:"numbering_system,omitempty"`
	Symbols         NumberSymbols     `json:"symbols" yaml:"symbols"`
	DayPeriods      DayPeriods        `json:"day_periods" yaml:"day_periods"`
	TimeFormats     TimeFormats       `json:"time_formats" yaml:"time_formats"`
	CurrencyNames   map[string]string `json:"currency_names,omitempty" yaml:"currency_names,omitempty"`
}

// NumberSymbols are the symbols of the locale's default numbering system.
type NumberSymbols struct {
	Decimal         string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Group           string `json:"group,omitempty" yaml:"group,omitempty"`
	Percent         string `json:"percent,omitempty" yaml:"percent,omitempty"`
	PerMille        string `json:"per_mille,omitempty" yaml:"per_mille,omitempty"`
	PlusSign        string `json:"plus_sign,omitempty" yaml:"plus_sign,omitempty"`
	MinusSign       string `json:"minus_sign,omitempty" yaml:"minus_sign,omitempty"`
	Infinity        string `json:"infinity,omitempty" yaml:"infinity,omitempty"`
	NaN             string `json:"nan,omitempty" yaml:"nan,omitempty"`
	CurrencyDecimal string `json:"currency_decimal,omitempty" yaml:"currency_decimal,omitempty"`
	CurrencyGroup   string `json:"currency_group,omitempty" yaml:"currency_group,omitempty"`
}

// DayPeriods are the abbreviated format-context AM/PM markers.
type DayPeriods struct {
	AM string `json:"am,omitempty" yaml:"am,omitempty"`
	PM string `json:"pm,omitempty" yaml:"pm,omitempty"`
}

// TimeFormats are the gregorian time patterns in CLDR pattern syntax.
type TimeFormats struct {
	Short  string `json:"short,omitempty" yaml:"short,omitempty"`
	Medium string `json:"medium,omitempty" yaml:"medium,omitempty"`
}

func (d LocaleData) clone() LocaleData {
	out := d
	if len(d.CurrencyNames) > 0 {
		out.CurrencyNames = make(map[string]string, len(d.CurrencyNames))
		for code, name := range d.CurrencyNames {
			out.CurrencyNames[code] = name
		}
	}
	return out
}

// mergeLocaleData overlays the non-empty values of source onto dest.
func mergeLocaleData(dest *LocaleData, source LocaleData) {
	mergeString(&dest.NumberingSystem, source.NumberingSystem)

	mergeString(&dest.Symbols.Decimal, source.Symbols.Decimal)
	mergeString(&dest.Symbols.Group, source.Symbols.Group)
	mergeString(&dest.Symbols.Percent, source.Symbols.Percent)
	mergeString(&dest.Symbols.PerMille, source.Symbols.PerMille)
	mergeString(&dest.Symbols.PlusSign, source.Symbols.PlusSign)
	mergeString(&dest.Symbols.MinusSign, source.Symbols.MinusSign)
	mergeString(&dest.Symbols.Infinity, source.Symbols.Infinity)
	mergeString(&dest.Symbols.NaN, source.Symbols.NaN)
	mergeString(&dest.Symbols.CurrencyDecimal, source.Symbols.CurrencyDecimal)
	mergeString(&dest.Symbols.CurrencyGroup, source.Symbols.CurrencyGroup)

	mergeString(&dest.DayPeriods.AM, source.DayPeriods.AM)
	mergeString(&dest.DayPeriods.PM, source.DayPeriods.PM)

	mergeString(&dest.TimeFormats.Short, source.TimeFormats.Short)
	mergeString(&dest.TimeFormats.Medium, source.TimeFormats.Medium)

	if len(source.CurrencyNames) > 0 {
		if dest.CurrencyNames == nil {
			dest.CurrencyNames = make(map[string]string, len(source.CurrencyNames))
		}
		for code, name := range source.CurrencyNames {
			if name == "" {
				continue
			}
			dest.CurrencyNames[code] = name
		}
	}
}

func mergeString(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}
