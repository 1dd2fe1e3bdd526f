package parser

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberLocale holds the separators used when numbers are written in a locale.
type NumberLocale struct {
	// Group is the thousands separator; empty when the locale does not group.
	Group string
	// Decimal is the decimal separator.
	Decimal string
}

// LocaleEnglish groups with "," and uses "." for decimals.
var LocaleEnglish = NumberLocale{Group: ",", Decimal: "."}

// LocaleFor derives the separators of tag from CLDR number formatting.
func LocaleFor(tag language.Tag) NumberLocale {
	formatted := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234567.5))

	var runs []string
	var current strings.Builder
	for _, r := range formatted {
		if unicode.IsDigit(r) {
			if current.Len() > 0 {
				runs = append(runs, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}

	switch {
	case len(runs) == 0:
		return LocaleEnglish
	case len(runs) == 1:
		return NumberLocale{Decimal: runs[0]}
	default:
		return NumberLocale{Group: runs[0], Decimal: runs[len(runs)-1]}
	}
}

// ParseLocale resolves a BCP 47 tag such as "de-DE". Unknown tags fall back to English.
func ParseLocale(tag string) NumberLocale {
	if tag == "" {
		return LocaleEnglish
	}
	t, err := language.Parse(tag)
	if err != nil {
		return LocaleEnglish
	}
	return LocaleFor(t)
}

func isCurrencyMarker(r rune) bool {
	return unicode.Is(unicode.Sc, r) || unicode.IsLetter(r) || unicode.IsSpace(r)
}

// CleanNumericValue rewrites a locale formatted number such as "$ 1.234,56" as "1234.56".
// A leading currency marker is dropped. Values that are not numbers are returned unchanged.
func CleanNumericValue(raw string, loc NumberLocale) string {
	s := strings.TrimLeftFunc(strings.TrimSpace(raw), isCurrencyMarker)

	if loc.Group != "" {
		s = strings.ReplaceAll(s, loc.Group, "")
		if strings.TrimSpace(loc.Group) == "" {
			s = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, s)
		}
	}
	if loc.Decimal != "" && loc.Decimal != "." {
		s = strings.ReplaceAll(s, loc.Decimal, ".")
	}

	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return raw
	}
	return s
}
