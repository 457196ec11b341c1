package seo

import (
	"encoding/xml"
	"strings"

	"github.com/optionsbroker/vergleich/internal/services/site/brokers"
	"github.com/optionsbroker/vergleich/internal/services/site/metadata"
	"github.com/optionsbroker/vergleich/internal/services/site/routepath"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNamespace   = "http://www.w3.org/1999/xhtml"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string      `xml:"loc"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Links      []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type entry struct {
	page       metadata.Page
	path       string
	changeFreq string
	priority   string
}

func entries(catalog *brokers.Catalog) []entry {
	out := []entry{
		{page: metadata.PageHome, path: routepath.Root, changeFreq: "weekly", priority: "1.0"},
		{page: metadata.PageComparison, path: routepath.Comparison, changeFreq: "weekly", priority: "0.9"},
		{page: metadata.PageGuide, path: routepath.Guide, changeFreq: "monthly", priority: "0.8"},
	}
	for _, broker := range catalog.All() {
		out = append(out, entry{
			page:       metadata.PageBroker,
			path:       routepath.Broker(broker.Slug),
			changeFreq: "monthly",
			priority:   "0.7",
		})
	}
	return out
}

// buildSitemap lists every indexable page with its language alternates.
func buildSitemap(baseURL string, catalog *brokers.Catalog) urlSet {
	set := urlSet{XMLNS: sitemapNamespace, XHTML: xhtmlNamespace}
	for _, e := range entries(catalog) {
		meta := metadata.Generate(e.page, metadata.LocaleGerman).WithURLs(baseURL, e.path)
		u := sitemapURL{Loc: meta.Canonical, ChangeFreq: e.changeFreq, Priority: e.priority}
		for _, alternate := range meta.Alternates {
			u.Links = append(u.Links, xhtmlLink{Rel: "alternate", HrefLang: alternate.HrefLang, Href: alternate.URL})
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

func marshalSitemap(set urlSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: " + routepath.APIPrefix + "\n")
	b.WriteString("Disallow: " + routepath.GoPrefix + "\n")
	b.WriteString("\nSitemap: " + strings.TrimRight(strings.TrimSpace(baseURL), "/") + routepath.Sitemap + "\n")
	return b.String()
}
