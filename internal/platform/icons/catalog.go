package icons

import "strings"

// ID identifies one site icon.
type ID string

const (
	IDCheck        ID = "check"
	IDExternalLink ID = "external-link"
	IDArrowRight   ID = "arrow-right"
	IDRegulator    ID = "regulator"
	IDMarkets      ID = "markets"
	IDGuide        ID = "guide"
)

// Definition describes a site icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDCheck, Name: "Check", Description: "Broker feature bullet points."},
	{ID: IDExternalLink, Name: "External Link", Description: "Links that open a broker website."},
	{ID: IDArrowRight, Name: "Arrow Right", Description: "Calls to action inside the site."},
	{ID: IDRegulator, Name: "Regulator", Description: "Supervisory authority of a broker."},
	{ID: IDMarkets, Name: "Markets", Description: "Option exchanges a broker connects to."},
	{ID: IDGuide, Name: "Guide", Description: "Educational guide content."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
