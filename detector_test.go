package localeinfo

import (
	"testing"

	"golang.org/x/text/language"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestEnvLocaleDetector(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"lc_all wins", map[string]string{"LC_ALL": "de_DE.UTF-8", "LANG": "fr_FR"}, "de-DE"},
		{"skips C", map[string]string{"LC_ALL": "C", "LC_MESSAGES": "POSIX", "LANG": "fr_CA.UTF-8"}, "fr-CA"},
		{"strips modifier", map[string]string{"LANG": "sr_RS@latin"}, "sr-RS"},
		{"skips invalid", map[string]string{"LC_ALL": "!!", "LANG": "ja_JP"}, "ja-JP"},
		{"fallback", map[string]string{}, "en-US"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := EnvLocaleDetector{LookupEnv: lookupFrom(tc.env)}.DetectLocale()
			if err != nil {
				t.Fatalf("DetectLocale: %v", err)
			}
			if got := LocaleName(tag); got != tc.want {
				t.Fatalf("DetectLocale = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEnvLocaleDetectorReadsProcessEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "pt_BR.UTF-8")

	tag, err := EnvLocaleDetector{}.DetectLocale()
	if err != nil {
		t.Fatalf("DetectLocale: %v", err)
	}
	if got := LocaleName(tag); got != "pt-BR" {
		t.Fatalf("DetectLocale = %q", got)
	}
}

func TestStaticLocaleDetector(t *testing.T) {
	tag, err := StaticLocaleDetector{Tag: language.Japanese}.DetectLocale()
	if err != nil || tag != language.Japanese {
		t.Fatalf("DetectLocale = %v, %v", tag, err)
	}
}
