package jsonld

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleHowTo() HowTo {
	return HowTo{
		Name:        "Optionshandel starten",
		Description: "In fünf Schritten zum ersten Trade",
		Steps: []Step{
			{Name: "Grundlagen", Text: "Calls und Puts verstehen"},
			{Name: "Broker wählen", Text: "Vergleich nutzen", Image: "https://example.test/step2.png"},
			{Name: "Konto eröffnen", Text: "Identität bestätigen"},
		},
	}
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.True(t, json.Valid(data), "output is not valid JSON: %s", data)
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestMarshalEmitsSchemaHeader(t *testing.T) {
	t.Parallel()

	data, err := sampleHowTo().Marshal()
	require.NoError(t, err)
	doc := decode(t, data)
	require.Equal(t, "https://schema.org", doc["@context"])
	require.Equal(t, "HowTo", doc["@type"])
	require.Equal(t, "Optionshandel starten", doc["name"])
	require.Equal(t, "In fünf Schritten zum ersten Trade", doc["description"])
}

func TestMarshalPositionsAreOneIndexedInOrder(t *testing.T) {
	t.Parallel()

	input := sampleHowTo()
	data, err := input.Marshal()
	require.NoError(t, err)
	steps := decode(t, data)["step"].([]any)
	require.Len(t, steps, len(input.Steps))
	for i, raw := range steps {
		step := raw.(map[string]any)
		require.Equal(t, "HowToStep", step["@type"])
		require.Equal(t, float64(i+1), step["position"])
		require.Equal(t, input.Steps[i].Name, step["name"])
		require.Equal(t, input.Steps[i].Text, step["text"])
	}
}

func TestMarshalOptionalFieldsPresentIffSupplied(t *testing.T) {
	t.Parallel()

	data, err := sampleHowTo().Marshal()
	require.NoError(t, err)
	doc := decode(t, data)
	_, hasTotal := doc["totalTime"]
	require.False(t, hasTotal)
	steps := doc["step"].([]any)
	for i, raw := range steps {
		_, hasImage := raw.(map[string]any)["image"]
		require.Equal(t, i == 1, hasImage, "step %d image presence", i+1)
	}

	withTime := sampleHowTo()
	withTime.TotalTime = "PT45M"
	withTime.Steps[0].Image = "   "
	data, err = withTime.Marshal()
	require.NoError(t, err)
	doc = decode(t, data)
	require.Equal(t, "PT45M", doc["totalTime"])
	_, hasImage := doc["step"].([]any)[0].(map[string]any)["image"]
	require.False(t, hasImage, "blank image must be omitted")
}

func TestMarshalEmptyStepsIsArray(t *testing.T) {
	t.Parallel()

	data, err := HowTo{Name: "x"}.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), `"step":[]`)
}

func TestScriptIsInertAndEscaped(t *testing.T) {
	t.Parallel()

	h := sampleHowTo()
	h.Steps[0].Text = `</script><script>alert(1)</script>`
	var buf bytes.Buffer
	require.NoError(t, Script(h).Render(context.Background(), &buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<script type="application/ld+json">`))
	require.True(t, strings.HasSuffix(out, `</script>`))
	require.Equal(t, 1, strings.Count(out, "</script>"), "payload must not close the script element")

	payload := strings.TrimSuffix(strings.TrimPrefix(out, `<script type="application/ld+json">`), `</script>`)
	doc := decode(t, []byte(payload))
	require.Equal(t, `</script><script>alert(1)</script>`, doc["step"].([]any)[0].(map[string]any)["text"])
}
