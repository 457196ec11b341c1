// Package i18n defines the languages the site is published in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{language.German, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// SupportedTags returns the published languages; the first one is the default.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the language served when nothing else matches.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it maps to a published language.
// Regional variants collapse onto their base language ("de-AT" → "de").
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return language.Und, false
	}
	for _, supported := range supportedTags {
		supportedBase, _ := supported.Base()
		if supportedBase == base {
			return supported, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best published language for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LocaleCode returns the short catalog locale ("de" or "en") for tag.
func LocaleCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
