// Package localedate provides simple, lightweight internationalization
// for date and time formatting.
package localedate

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// LocaleFormats defines the date and time format strings for a single locale.
// Go's time.Format does not translate month/day names, so named formats
// produce English names regardless of locale.
type LocaleFormats struct {
	Date     string
	DateTime string
}

var formats = map[string]LocaleFormats{
	"en-US": {
		Date:     "1/2/2006",
		DateTime: "1/2/2006, 3:04 PM MST",
	},
	"en-GB": {
		Date:     "02/01/2006",
		DateTime: "02/01/2006, 15:04 MST",
	},
	"de-DE": {
		Date:     "02.01.2006",
		DateTime: "02.01.2006 15:04 MST",
	},
	"fr-FR": {
		Date:     "02/01/2006",
		DateTime: "02/01/2006 15:04 MST",
	},
	"sv-SE": { // ISO 8601 style
		Date:     "2006-01-02",
		DateTime: "2006-01-02 15:04 MST",
	},
}

// getFormats retrieves the formats for a locale, falling back to
// language-based matching, then en-GB.
func getFormats(locale string) LocaleFormats {
	if f, ok := formats[locale]; ok {
		return f
	}
	if parts := strings.Split(locale, "-"); len(parts) >= 2 {
		lang := parts[0]
		for key := range formats {
			if strings.HasPrefix(key, lang+"-") {
				return formats[key]
			}
		}
	}
	return formats["en-GB"]
}

// GetUserLocaleTag discovers the user's locale from the standard environment
// variables, checked in precedence order. It falls back to British English.
func GetUserLocaleTag() language.Tag {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		if localeStr := os.Getenv(envVar); localeStr != "" {
			// Extract the core part (e.g., "de_DE" from "de_DE.UTF-8")
			base := strings.Split(localeStr, ".")[0]
			standardized := strings.ReplaceAll(base, "_", "-")
			if tag, err := language.Parse(standardized); err == nil {
				return tag
			}
		}
	}
	return language.BritishEnglish
}

// FormatDate formats the date part of t in the local timezone.
func FormatDate(locale string, t time.Time) string {
	return t.Local().Format(getFormats(locale).Date)
}

// FormatDateTime formats date and time of t in the local timezone.
func FormatDateTime(locale string, t time.Time) string {
	return t.Local().Format(getFormats(locale).DateTime)
}
