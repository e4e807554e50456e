package localeinfo

import (
	"fmt"
	"sort"
	"strings"
)

// LocaleStringField selects which locale string is requested. Values match the
// runtime's LocaleStringData so selectors can cross the interop boundary unchanged.
type LocaleStringField int32

const (
	LocalizedDisplayName          LocaleStringField = 0x02
	EnglishDisplayName            LocaleStringField = 0x72
	NativeDisplayName             LocaleStringField = 0x73
	LocalizedLanguageName         LocaleStringField = 0x6f
	EnglishLanguageName           LocaleStringField = 0x1001
	NativeLanguageName            LocaleStringField = 0x04
	EnglishCountryName            LocaleStringField = 0x1002
	NativeCountryName             LocaleStringField = 0x08
	ListSeparator                 LocaleStringField = 0x0C
	DecimalSeparator              LocaleStringField = 0x0E
	ThousandSeparator             LocaleStringField = 0x0F
	Digits                        LocaleStringField = 0x13
	MonetarySymbol                LocaleStringField = 0x14
	CurrencyEnglishName           LocaleStringField = 0x1007
	CurrencyNativeName            LocaleStringField = 0x1008
	Iso4217MonetarySymbol         LocaleStringField = 0x15
	MonetaryDecimalSeparator      LocaleStringField = 0x16
	MonetaryThousandSeparator     LocaleStringField = 0x17
	AMDesignator                  LocaleStringField = 0x28
	PMDesignator                  LocaleStringField = 0x29
	PositiveSign                  LocaleStringField = 0x50
	NegativeSign                  LocaleStringField = 0x51
	Iso639LanguageTwoLetterName   LocaleStringField = 0x59
	Iso639LanguageThreeLetterName LocaleStringField = 0x67
	Iso3166CountryName            LocaleStringField = 0x5A
	Iso3166CountryName2           LocaleStringField = 0x68
	NaNSymbol                     LocaleStringField = 0x69
	PositiveInfinitySymbol        LocaleStringField = 0x6a
	ParentName                    LocaleStringField = 0x6d
	PercentSymbol                 LocaleStringField = 0x76
	PerMilleSymbol                LocaleStringField = 0x77
)

var fieldNames = map[LocaleStringField]string{
	LocalizedDisplayName:          "LocalizedDisplayName",
	EnglishDisplayName:            "EnglishDisplayName",
	NativeDisplayName:             "NativeDisplayName",
	LocalizedLanguageName:         "LocalizedLanguageName",
	EnglishLanguageName:           "EnglishLanguageName",
	NativeLanguageName:            "NativeLanguageName",
	EnglishCountryName:            "EnglishCountryName",
	NativeCountryName:             "NativeCountryName",
	ListSeparator:                 "ListSeparator",
	DecimalSeparator:              "DecimalSeparator",
	ThousandSeparator:             "ThousandSeparator",
	Digits:                        "Digits",
	MonetarySymbol:                "MonetarySymbol",
	CurrencyEnglishName:           "CurrencyEnglishName",
	CurrencyNativeName:            "CurrencyNativeName",
	Iso4217MonetarySymbol:         "Iso4217MonetarySymbol",
	MonetaryDecimalSeparator:      "MonetaryDecimalSeparator",
	MonetaryThousandSeparator:     "MonetaryThousandSeparator",
	AMDesignator:                  "AMDesignator",
	PMDesignator:                  "PMDesignator",
	PositiveSign:                  "PositiveSign",
	NegativeSign:                  "NegativeSign",
	Iso639LanguageTwoLetterName:   "Iso639LanguageTwoLetterName",
	Iso639LanguageThreeLetterName: "Iso639LanguageThreeLetterName",
	Iso3166CountryName:            "Iso3166CountryName",
	Iso3166CountryName2:           "Iso3166CountryName2",
	NaNSymbol:                     "NaNSymbol",
	PositiveInfinitySymbol:        "PositiveInfinitySymbol",
	ParentName:                    "ParentName",
	PercentSymbol:                 "PercentSymbol",
	PerMilleSymbol:                "PerMilleSymbol",
}

func (f LocaleStringField) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("LocaleStringField(0x%x)", int32(f))
}

// Valid reports whether f is one of the known selectors.
func (f LocaleStringField) Valid() bool {
	_, ok := fieldNames[f]
	return ok
}

// Fields returns every known selector ordered by value.
func Fields() []LocaleStringField {
	out := make([]LocaleStringField, 0, len(fieldNames))
	for field := range fieldNames {
		out = append(out, field)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseField resolves a selector by name (case insensitive) or by numeric value
// written in decimal or 0x-prefixed hex.
func ParseField(name string) (LocaleStringField, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty field name", ErrUnsupportedField)
	}

	for field, fieldName := range fieldNames {
		if strings.EqualFold(fieldName, trimmed) {
			return field, nil
		}
	}

	var value int32
	if _, err := fmt.Sscan(trimmed, &value); err == nil {
		field := LocaleStringField(value)
		if field.Valid() {
			return field, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedField, name)
}
