package jsonld

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ListItem is one entry of a breadcrumb trail.
type ListItem struct {
	Name string
	URL  string
}

// BreadcrumbList is a schema.org BreadcrumbList.
type BreadcrumbList struct {
	Items []ListItem
}

type breadcrumbDocument struct {
	Context         string             `json:"@context"`
	Type            string             `json:"@type"`
	ItemListElement []listItemDocument `json:"itemListElement"`
}

type listItemDocument struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// Marshal renders the trail; the last entry may omit its URL.
func (l BreadcrumbList) Marshal() ([]byte, error) {
	doc := breadcrumbDocument{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: make([]listItemDocument, 0, len(l.Items)),
	}
	for i, item := range l.Items {
		doc.ItemListElement = append(doc.ItemListElement, listItemDocument{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
			Item:     strings.TrimSpace(item.URL),
		})
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal breadcrumb list: %w", err)
	}
	return data, nil
}
