// Package metadata builds the localized search and social metadata rendered
// into every page head.
package metadata

import (
	"net/url"
	"strings"

	"github.com/optionsbroker/vergleich/internal/platform/branding"
	platformi18n "github.com/optionsbroker/vergleich/internal/platform/i18n"
	"github.com/optionsbroker/vergleich/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

// Page identifies a route that owns its own metadata.
type Page string

const (
	PageHome       Page = "home"
	PageComparison Page = "comparison"
	PageGuide      Page = "guide"
	PageBroker     Page = "broker"
	PageNotFound   Page = "notfound"
)

const (
	// LocaleGerman is the only locale that yields German copy.
	LocaleGerman = "de"
	// LocaleEnglish is served for every other locale value.
	LocaleEnglish = "en"

	// XDefault is the hreflang value for the language-neutral alternate.
	XDefault = "x-default"

	nameToken = "{name}"
)

// OpenGraph holds the og:* properties.
type OpenGraph struct {
	Title       string
	Description string
	Type        string
	Locale      string
	SiteName    string
	URL         string
}

// Twitter holds the twitter:* card properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
}

// Alternate is one hreflang link.
type Alternate struct {
	HrefLang string
	URL      string
}

// Metadata is the head metadata for a single rendered page.
type Metadata struct {
	Locale      string
	Title       string
	Description string
	Keywords    []string
	Robots      string
	Canonical   string
	Alternates  []Alternate
	OpenGraph   OpenGraph
	Twitter     Twitter
}

// Generate returns the metadata for page. Only locale "de" selects German;
// anything else, including regional variants, selects English.
func Generate(page Page, locale string) Metadata {
	return build(page, normalizeLocale(locale), "")
}

// GenerateBroker returns the metadata for a broker detail page.
func GenerateBroker(brokerName string, locale string) Metadata {
	return build(PageBroker, normalizeLocale(locale), strings.TrimSpace(brokerName))
}

// LocaleForTag maps a resolved request language onto the metadata locale.
func LocaleForTag(tag language.Tag) string {
	if platformi18n.LocaleCode(tag) == LocaleGerman {
		return LocaleGerman
	}
	return LocaleEnglish
}

// FullTitle appends the brand to a page title.
func FullTitle(title string) string {
	return branding.WithAppName(title)
}

func normalizeLocale(locale string) string {
	if locale == LocaleGerman {
		return LocaleGerman
	}
	return LocaleEnglish
}

func build(page Page, locale string, name string) Metadata {
	switch page {
	case PageHome, PageComparison, PageGuide, PageBroker, PageNotFound:
	default:
		page = PageHome
	}
	bundle := catalog.Default()
	if page == PageBroker && name == "" {
		name = bundle.MustMessage(locale, "seo.broker.fallback_name")
	}
	lookup := func(field string) string {
		value := bundle.MustMessage(locale, "seo."+string(page)+"."+field)
		return strings.ReplaceAll(value, nameToken, name)
	}

	title := lookup("title")
	description := lookup("description")
	robots := "index, follow"
	if page == PageNotFound {
		robots = "noindex, follow"
	}
	ogType := "website"
	if page == PageGuide {
		ogType = "article"
	}

	return Metadata{
		Locale:      locale,
		Title:       title,
		Description: description,
		Keywords:    splitKeywords(lookup("keywords")),
		Robots:      robots,
		OpenGraph: OpenGraph{
			Title:       FullTitle(title),
			Description: description,
			Type:        ogType,
			Locale:      ogLocale(locale),
			SiteName:    branding.AppName,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       FullTitle(title),
			Description: description,
		},
	}
}

// WithURLs returns a copy of m with canonical, og:url and hreflang
// alternates resolved against baseURL. German is served without a lang
// parameter and doubles as x-default.
func (m Metadata) WithURLs(baseURL string, path string) Metadata {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	localized := func(locale string) string {
		if locale == LocaleGerman {
			return base + path
		}
		return base + path + "?" + url.Values{"lang": []string{locale}}.Encode()
	}

	out := m
	out.Keywords = append([]string(nil), m.Keywords...)
	out.Canonical = localized(normalizeLocale(m.Locale))
	out.OpenGraph.URL = out.Canonical
	out.Alternates = []Alternate{
		{HrefLang: LocaleGerman, URL: localized(LocaleGerman)},
		{HrefLang: LocaleEnglish, URL: localized(LocaleEnglish)},
		{HrefLang: XDefault, URL: localized(LocaleGerman)},
	}
	return out
}

// KeywordsContent joins keywords for the meta keywords tag.
func (m Metadata) KeywordsContent() string {
	return strings.Join(m.Keywords, ", ")
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if keyword := strings.TrimSpace(part); keyword != "" {
			out = append(out, keyword)
		}
	}
	return out
}

func ogLocale(locale string) string {
	if locale == LocaleGerman {
		return "de_DE"
	}
	return "en_US"
}
