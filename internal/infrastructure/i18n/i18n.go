// Package i18n resolves request locales and localizes the message keys
// produced by form validation.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the locales messages are available in; the first is the fallback
var Supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(Supported)

var messages = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	for key, t := range translations {
		// SetString only fails on malformed tags, which are constants here
		_ = messages.SetString(language.English, key, t.en)
		_ = messages.SetString(language.Spanish, key, t.es)
	}
}

// Match picks the best supported locale for an Accept-Language header value.
// Unparseable or empty headers resolve to English.
func Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.English
	}
	return Supported[idx]
}

// Translate returns the localized text for key, or key itself when unknown
func Translate(tag language.Tag, key string) string {
	p := message.NewPrinter(tag, message.Catalog(messages))
	return p.Sprintf(key)
}

// YesNo renders a boolean flag the way list views show it
func YesNo(tag language.Tag, value bool) string {
	if value {
		return Translate(tag, KeyYes)
	}
	return Translate(tag, KeyNo)
}
