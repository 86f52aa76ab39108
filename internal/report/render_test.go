package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/chriserin/gherkin-report/internal/feature"
)

func mrnFeature() *feature.Feature {
	return &feature.Feature{
		Name:      "Medical Record Numbers",
		Scenarios: []feature.Scenario{{Name: "Look up by MRN"}},
	}
}

func clerkFeature() *feature.Feature {
	f := &feature.Feature{
		Name:        "Patients",
		Description: "  As a clerk\n  I want records",
		Scenarios:   []feature.Scenario{{Name: "Register"}, {Name: "Merge duplicates"}},
	}
	f.DescriptionLines = feature.DescriptionLines(f.Description)
	return f
}

func TestRenderMarkdown_SingleFeature(t *testing.T) {
	assert.Equal(t, "## Medical Record Numbers\n\n- Look up by MRN\n", RenderMarkdown([]*feature.Feature{mrnFeature()}))
}

func TestRenderMarkdown_DescriptionAsQuotes(t *testing.T) {
	expected := "## Patients\n> As a clerk\n> I want records\n\n- Register\n- Merge duplicates\n"
	assert.Equal(t, expected, RenderMarkdown([]*feature.Feature{clerkFeature()}))
}

func TestRenderMarkdown_FeaturesSeparatedByBlankLine(t *testing.T) {
	out := RenderMarkdown([]*feature.Feature{mrnFeature(), clerkFeature()})
	assert.Equal(t, "## Medical Record Numbers\n\n- Look up by MRN\n\n\n## Patients\n> As a clerk\n> I want records\n\n- Register\n- Merge duplicates\n", out)
}

func TestRenderMarkdown_FeatureWithoutScenarios(t *testing.T) {
	assert.Equal(t, "## Empty\n\n", RenderMarkdown([]*feature.Feature{{Name: "Empty"}}))
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(nil))
}

func TestRenderMarkdown_ParsesAsHeadingQuoteAndList(t *testing.T) {
	src := []byte(RenderMarkdown([]*feature.Feature{clerkFeature(), mrnFeature()}))
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var kinds []ast.NodeKind
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal(t, []ast.NodeKind{
		ast.KindHeading, ast.KindBlockquote, ast.KindList,
		ast.KindHeading, ast.KindList,
	}, kinds)

	heading, ok := doc.FirstChild().(*ast.Heading)
	require.True(t, ok)
	assert.Equal(t, 2, heading.Level)
	assert.Equal(t, 2, doc.FirstChild().NextSibling().NextSibling().ChildCount())
}

func renderDocument(t *testing.T, features []*feature.Feature) string {
	t.Helper()
	doc, err := BuildDocument(features)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, writeDocument(doc)(&buf))
	return documentXML(t, buf.Bytes())
}

func TestBuildDocument(t *testing.T) {
	body := renderDocument(t, []*feature.Feature{clerkFeature(), mrnFeature()})

	order := []string{"Patients", "As a clerk I want records", "Register", "Merge duplicates", "Medical Record Numbers", "Look up by MRN"}
	last := -1
	for _, s := range order {
		i := strings.Index(body, s)
		require.Greater(t, i, last, "%q out of order", s)
		last = i
	}
	assert.Contains(t, body, "<w:i")
	assert.Contains(t, body, bulletStyle)
}

func TestBuildDocument_BlankDescriptionSkipped(t *testing.T) {
	body := renderDocument(t, []*feature.Feature{{Name: "Blank", Description: "   \n  "}})
	assert.Contains(t, body, "Blank")
	assert.NotContains(t, body, "<w:i")
}
