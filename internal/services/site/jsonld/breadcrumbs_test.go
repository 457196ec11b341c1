package jsonld

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreadcrumbListMarshal(t *testing.T) {
	t.Parallel()

	data, err := BreadcrumbList{Items: []ListItem{
		{Name: "Startseite", URL: "https://example.test/"},
		{Name: "Vergleich", URL: "https://example.test/optionen-broker-vergleich"},
		{Name: "LYNX"},
	}}.Marshal()
	require.NoError(t, err)

	var doc struct {
		Context string `json:"@context"`
		Type    string `json:"@type"`
		Items   []struct {
			Type     string  `json:"@type"`
			Position int     `json:"position"`
			Name     string  `json:"name"`
			Item     *string `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "https://schema.org", doc.Context)
	require.Equal(t, "BreadcrumbList", doc.Type)
	require.Len(t, doc.Items, 3)
	for i, item := range doc.Items {
		require.Equal(t, "ListItem", item.Type)
		require.Equal(t, i+1, item.Position)
	}
	require.NotNil(t, doc.Items[0].Item)
	require.Nil(t, doc.Items[2].Item, "last crumb without URL omits item")
}

func TestScriptForNilDocumentRendersNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ScriptFor(nil).Render(context.Background(), &buf))
	require.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, ScriptFor(BreadcrumbList{}).Render(context.Background(), &buf))
	require.True(t, strings.Contains(buf.String(), `"itemListElement":[]`))
}
