package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"trisolve/internal/batch"
	"trisolve/internal/triangle"
)

func wswResult() triangle.Result {
	return triangle.Calculate(triangle.Spec{Schema: triangle.WSW, Alpha: 40, Beta: 70, C: 4.8})
}

func testRenderer(f Format) Renderer {
	return Renderer{Format: f, Precision: 2, Styles: NewStyles(LightTheme()), MarkdownStyle: "notty"}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml ", "markdown"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "3.28", FormatSide(3.2833933759264196, 2))
	assert.Equal(t, "3.2834", FormatSide(3.2833933759264196, 4))
	assert.Equal(t, "104.4°", FormatAngle(104.41530859719299))
	assert.Equal(t, "α", Symbol(triangle.FieldAlpha))
	assert.Equal(t, "c", Symbol(triangle.FieldC))
}

func TestRenderer_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer(FormatText).Result(&buf, Item{Title: "WSW", Result: wswResult()}))

	out := buf.String()
	for _, want := range []string{"WSW", "isosceles", "acute", "3.28", "4.80", "40.0°", "70.0°", "perimeter", "area"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderer_TextError(t *testing.T) {
	res := triangle.Calculate(triangle.Spec{Schema: triangle.SSS, A: 1, B: 2, C: 3})

	var buf bytes.Buffer
	require.NoError(t, testRenderer(FormatText).Result(&buf, Item{Title: "SSS", Result: res}))
	assert.Contains(t, buf.String(), "triangle inequality")
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer(FormatJSON).Result(&buf, Item{Result: wswResult()}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.InDelta(t, 3.2833933759264196, got["a"], 1e-12)
	assert.Equal(t, "isosceles", got["sidesType"])
	assert.Equal(t, "acute", got["anglesType"])
	assert.NotContains(t, got, "error")
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer(FormatYAML).Result(&buf, Item{Result: wswResult()}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.InDelta(t, 70, got["gamma"], 1e-9)
	assert.Equal(t, "isosceles", got["sidesType"])
}

func TestRenderer_Markdown(t *testing.T) {
	r := testRenderer(FormatMarkdown)

	md := r.resultMarkdown(Item{Title: "WSW", Result: wswResult()})
	assert.Contains(t, md, "## WSW")
	assert.Contains(t, md, "| a | 3.28 | α | 40.0° |")
	assert.Contains(t, md, "**Classification:** isosceles, acute")

	var buf bytes.Buffer
	require.NoError(t, r.Result(&buf, Item{Title: "WSW", Result: wswResult()}))
	assert.Contains(t, buf.String(), "3.28")
	assert.Contains(t, buf.String(), "isosceles")
}

func sampleReport() batch.Report {
	return batch.Report{
		RunID: "abcd1234",
		Outcomes: []batch.Outcome{
			{ID: "11111111", Name: "truss", Schema: triangle.WSW, Result: wswResult()},
			{ID: "22222222", Name: "flat", Schema: triangle.SSS,
				Result: triangle.Calculate(triangle.Spec{Schema: triangle.SSS, A: 1, B: 2, C: 3})},
		},
	}
}

func TestRenderer_ReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer(FormatText).Report(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "truss")
	assert.Contains(t, out, "3.28")
	assert.Contains(t, out, "triangle inequality")
	assert.Contains(t, out, "1 solved, 1 failed (run abcd1234)")
}

func TestRenderer_ReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer(FormatJSON).Report(&buf, sampleReport()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "truss", got[0]["name"])
	assert.Equal(t, "11111111", got[0]["id"])
	assert.Contains(t, got[0]["result"], "sidesType")
	assert.Contains(t, got[1]["result"], "error")
}

func TestRenderer_ReportMarkdown(t *testing.T) {
	md := testRenderer(FormatMarkdown).reportMarkdown(sampleReport())
	assert.Contains(t, md, "## Batch run abcd1234")
	assert.Contains(t, md, "| truss | WSW | 3.28 |")
	assert.Contains(t, md, "1 solved, 1 failed.")
}
