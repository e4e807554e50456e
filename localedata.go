// Bundled CLDR locale data in the layout written by cmd/localeinfo-gen. Rerun the
// generator against a CLDR core directory to refresh it.

package localeinfo

var numberingSystemDigits = map[string]string{
	"arab":    "٠١٢٣٤٥٦٧٨٩",
	"arabext": "۰۱۲۳۴۵۶۷۸۹",
	"beng":    "০১২৩৪৫৬৭৮৯",
	"deva":    "०१२३४५६७८९",
	"latn":    "0123456789",
	"thai":    "๐๑๒๓๔๕๖๗๘๙",
}

var localeDataBundles = map[string]LocaleData{
	"ar": {
		NumberingSystem: "arab",
		Symbols: NumberSymbols{
			Decimal:   "٫",
			Group:     "٬",
			Percent:   "٪\u061c",
			PerMille:  "؉",
			PlusSign:  "\u061c+",
			MinusSign: "\u061c-",
			Infinity:  "∞",
			NaN:       "ليس رقمًا",
		},
		DayPeriods: DayPeriods{
			AM: "ص",
			PM: "م",
		},
		TimeFormats: TimeFormats{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
		},
		CurrencyNames: map[string]string{
			"AED": "درهم إماراتي",
			"EGP": "جنيه مصري",
			"MAD": "درهم مغربي",
			"SAR": "ريال سعودي",
			"USD": "دولار أمريكي",
		},
	},
	"ar-MA": {
		NumberingSystem: "latn",
		Symbols: NumberSymbols{
			Decimal:   ",",
			Group:     ".",
			Percent:   "\u200e%\u200e",
			PerMille:  "‰",
			PlusSign:  "\u200e+",
			MinusSign: "\u200e-",
			Infinity:  "∞",
			NaN:       "ليس رقمًا",
		},
	},
	"bn": {
		NumberingSystem: "beng",
		DayPeriods: DayPeriods{
			AM: "AM",
			PM: "PM",
		},
		TimeFormats: TimeFormats{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
		},
		CurrencyNames: map[string]string{
			"BDT": "বাংলাদেশী টাকা",
			"INR": "ভারতীয় রুপি",
		},
	},
	"de": {
		Symbols: NumberSymbols{
			Decimal: ",",
			Group:   ".",
		},
		DayPeriods: DayPeriods{
			AM: "AM",
			PM: "PM",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"CHF": "Schweizer Franken",
			"EUR": "Euro",
			"GBP": "Britisches Pfund",
			"USD": "US-Dollar",
		},
	},
	"de-CH": {
		Symbols: NumberSymbols{
			Decimal: ".",
			Group:   "’",
		},
	},
	"en": {
		DayPeriods: DayPeriods{
			AM: "AM",
			PM: "PM",
		},
		TimeFormats: TimeFormats{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
		},
		CurrencyNames: map[string]string{
			"AED": "United Arab Emirates Dirham",
			"BDT": "Bangladeshi Taka",
			"BRL": "Brazilian Real",
			"CAD": "Canadian Dollar",
			"CHF": "Swiss Franc",
			"CNY": "Chinese Yuan",
			"EGP": "Egyptian Pound",
			"EUR": "Euro",
			"GBP": "British Pound",
			"INR": "Indian Rupee",
			"IRR": "Iranian Rial",
			"JPY": "Japanese Yen",
			"MAD": "Moroccan Dirham",
			"MXN": "Mexican Peso",
			"RUB": "Russian Ruble",
			"SAR": "Saudi Riyal",
			"THB": "Thai Baht",
			"TWD": "New Taiwan Dollar",
			"USD": "US Dollar",
		},
	},
	"en-GB": {
		DayPeriods: DayPeriods{
			AM: "am",
			PM: "pm",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
	},
	"es": {
		Symbols: NumberSymbols{
			Decimal: ",",
			Group:   ".",
		},
		DayPeriods: DayPeriods{
			AM: "a.\u00a0m.",
			PM: "p.\u00a0m.",
		},
		TimeFormats: TimeFormats{
			Short:  "H:mm",
			Medium: "H:mm:ss",
		},
		CurrencyNames: map[string]string{
			"EUR": "euro",
			"GBP": "libra esterlina",
			"JPY": "yen",
			"MXN": "peso mexicano",
			"USD": "dólar estadounidense",
		},
	},
	"es-419": {
		Symbols: NumberSymbols{
			Decimal: ".",
			Group:   ",",
		},
	},
	"es-MX": {
		Symbols: NumberSymbols{
			Decimal: ".",
			Group:   ",",
		},
	},
	"fa": {
		NumberingSystem: "arabext",
		Symbols: NumberSymbols{
			Decimal:   "٫",
			Group:     "٬",
			Percent:   "٪",
			PerMille:  "؉",
			PlusSign:  "\u200e+",
			MinusSign: "\u200e−",
			Infinity:  "∞",
			NaN:       "ناعدد",
		},
		DayPeriods: DayPeriods{
			AM: "ق.ظ.",
			PM: "ب.ظ.",
		},
		TimeFormats: TimeFormats{
			Short:  "H:mm",
			Medium: "H:mm:ss",
		},
		CurrencyNames: map[string]string{
			"IRR": "ریال ایران",
			"USD": "دلار امریکا",
		},
	},
	"fr": {
		Symbols: NumberSymbols{
			Decimal: ",",
			Group:   "\u202f",
		},
		DayPeriods: DayPeriods{
			AM: "AM",
			PM: "PM",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"CAD": "dollar canadien",
			"CHF": "franc suisse",
			"EUR": "euro",
			"GBP": "livre sterling",
			"MAD": "dirham marocain",
			"USD": "dollar des États-Unis",
		},
	},
	"fr-CA": {
		Symbols: NumberSymbols{
			Group: "\u00a0",
		},
		DayPeriods: DayPeriods{
			AM: "a.m.",
			PM: "p.m.",
		},
		TimeFormats: TimeFormats{
			Short:  "HH 'h' mm",
			Medium: "HH 'h' mm 'min' ss 's'",
		},
	},
	"hi": {
		DayPeriods: DayPeriods{
			AM: "am",
			PM: "pm",
		},
		TimeFormats: TimeFormats{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
		},
		CurrencyNames: map[string]string{
			"INR": "भारतीय रुपया",
			"USD": "यूएस डॉलर",
		},
	},
	"it": {
		Symbols: NumberSymbols{
			Decimal: ",",
			Group:   ".",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"CHF": "franco svizzero",
			"EUR": "euro",
			"USD": "dollaro statunitense",
		},
	},
	"ja": {
		DayPeriods: DayPeriods{
			AM: "午前",
			PM: "午後",
		},
		TimeFormats: TimeFormats{
			Short:  "H:mm",
			Medium: "H:mm:ss",
		},
		CurrencyNames: map[string]string{
			"EUR": "ユーロ",
			"JPY": "日本円",
			"USD": "米ドル",
		},
	},
	"mr": {
		NumberingSystem: "deva",
		DayPeriods: DayPeriods{
			AM: "म.पू.",
			PM: "म.उ.",
		},
		TimeFormats: TimeFormats{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
		},
		CurrencyNames: map[string]string{
			"INR": "भारतीय रुपया",
		},
	},
	"pt": {
		Symbols: NumberSymbols{
			Decimal: ",",
			Group:   ".",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"BRL": "Real brasileiro",
			"EUR": "Euro",
			"USD": "Dólar americano",
		},
	},
	"pt-PT": {
		Symbols: NumberSymbols{
			Group: "\u00a0",
		},
		DayPeriods: DayPeriods{
			AM: "da manhã",
			PM: "da tarde",
		},
		CurrencyNames: map[string]string{
			"BRL": "real brasileiro",
			"EUR": "euro",
			"USD": "dólar dos Estados Unidos",
		},
	},
	"root": {
		NumberingSystem: "latn",
		Symbols: NumberSymbols{
			Decimal:   ".",
			Group:     ",",
			Percent:   "%",
			PerMille:  "‰",
			PlusSign:  "+",
			MinusSign: "-",
			Infinity:  "∞",
			NaN:       "NaN",
		},
		DayPeriods: DayPeriods{
			AM: "AM",
			PM: "PM",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
	},
	"ru": {
		Symbols: NumberSymbols{
			Decimal: ",",
			Group:   "\u00a0",
			NaN:     "не\u00a0число",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"EUR": "евро",
			"RUB": "российский рубль",
			"USD": "доллар США",
		},
	},
	"th": {
		DayPeriods: DayPeriods{
			AM: "ก่อนเที่ยง",
			PM: "หลังเที่ยง",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"THB": "บาท",
			"USD": "ดอลลาร์สหรัฐ",
		},
	},
	"zh": {
		DayPeriods: DayPeriods{
			AM: "上午",
			PM: "下午",
		},
		TimeFormats: TimeFormats{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
		},
		CurrencyNames: map[string]string{
			"CNY": "人民币",
			"EUR": "欧元",
			"USD": "美元",
		},
	},
	"zh-Hant": {
		TimeFormats: TimeFormats{
			Short:  "ah:mm",
			Medium: "ah:mm:ss",
		},
		CurrencyNames: map[string]string{
			"CNY": "人民幣",
			"EUR": "歐元",
			"TWD": "新台幣",
		},
	},
}

var generatedLocales = []string{
	"ar",
	"ar-MA",
	"bn",
	"de",
	"de-CH",
	"en",
	"en-GB",
	"es",
	"es-419",
	"es-MX",
	"fa",
	"fr",
	"fr-CA",
	"hi",
	"it",
	"ja",
	"mr",
	"pt",
	"pt-PT",
	"root",
	"ru",
	"th",
	"zh",
	"zh-Hant",
}

// GeneratedLocales lists the locales with bundled CLDR data.
func GeneratedLocales() []string {
	return append([]string{}, generatedLocales...)
}
