package parser

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCleanNumericValue(t *testing.T) {
	german := NumberLocale{Group: ".", Decimal: ","}
	french := NumberLocale{Group: " ", Decimal: ","}

	tests := []struct {
		name     string
		input    string
		locale   NumberLocale
		expected string
	}{
		{"currency with german separators", "$ 1.234,56", german, "1234.56"},
		{"english separators", "1,234.56", LocaleEnglish, "1234.56"},
		{"currency code", "USD 2,000", LocaleEnglish, "2000"},
		{"euro sign", "€1.000", german, "1000"},
		{"space grouping", "1 234,5", french, "1234.5"},
		{"plain integer", "42", LocaleEnglish, "42"},
		{"negative", "-3.5", LocaleEnglish, "-3.5"},
		{"text unchanged", "hello", LocaleEnglish, "hello"},
		{"empty unchanged", "", LocaleEnglish, ""},
		{"no grouping locale", "1234,5", NumberLocale{Decimal: ","}, "1234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanNumericValue(tt.input, tt.locale); got != tt.expected {
				t.Errorf("CleanNumericValue(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLocaleFor(t *testing.T) {
	if got := LocaleFor(language.English); got != LocaleEnglish {
		t.Errorf("LocaleFor(en) = %+v, expected %+v", got, LocaleEnglish)
	}
	if got := LocaleFor(language.German); got.Decimal != "," || got.Group != "." {
		t.Errorf("LocaleFor(de) = %+v, expected group . and decimal ,", got)
	}
}

func TestParseLocale(t *testing.T) {
	if got := ParseLocale(""); got != LocaleEnglish {
		t.Errorf("ParseLocale(\"\") = %+v", got)
	}
	if got := ParseLocale("not a tag!"); got != LocaleEnglish {
		t.Errorf("ParseLocale(invalid) = %+v", got)
	}
	if got := ParseLocale("de-DE"); got.Decimal != "," {
		t.Errorf("ParseLocale(de-DE) = %+v", got)
	}
}
