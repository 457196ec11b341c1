// Package jsonld emits schema.org structured data for search engines.
package jsonld

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const schemaContext = "https://schema.org"

// Step is one instruction of a HowTo.
type Step struct {
	Name  string
	Text  string
	Image string
}

// HowTo is a schema.org HowTo guide.
type HowTo struct {
	Name        string
	Description string
	Steps       []Step
	// TotalTime is an ISO-8601 duration such as "PT30M".
	TotalTime string
}

type howToDocument struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	TotalTime   string         `json:"totalTime,omitempty"`
	Step        []stepDocument `json:"step"`
}

type stepDocument struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Image    string `json:"image,omitempty"`
}

// Marshal renders h as a JSON-LD document. Step positions start at 1 and
// follow input order; image and totalTime are omitted when blank.
func (h HowTo) Marshal() ([]byte, error) {
	doc := howToDocument{
		Context:     schemaContext,
		Type:        "HowTo",
		Name:        h.Name,
		Description: h.Description,
		TotalTime:   strings.TrimSpace(h.TotalTime),
		Step:        make([]stepDocument, 0, len(h.Steps)),
	}
	for i, step := range h.Steps {
		doc.Step = append(doc.Step, stepDocument{
			Type:     "HowToStep",
			Position: i + 1,
			Name:     step.Name,
			Text:     step.Text,
			Image:    strings.TrimSpace(step.Image),
		})
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal howto: %w", err)
	}
	return data, nil
}

// Document is a structured-data value that serializes to JSON-LD.
type Document interface {
	Marshal() ([]byte, error)
}

// Script renders h inside a <script type="application/ld+json"> element.
func Script(h HowTo) templ.Component {
	return ScriptFor(h)
}

// ScriptFor renders doc inside a <script type="application/ld+json"> element.
// encoding/json escapes <, > and & so the payload cannot close the element.
func ScriptFor(doc Document) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if doc == nil {
			return nil
		}
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		buf.WriteString(`<script type="application/ld+json">`)
		buf.Write(data)
		buf.WriteString(`</script>`)
		_, err = w.Write(buf.Bytes())
		return err
	})
}
