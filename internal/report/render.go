package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/yuin/goldmark"

	"github.com/chriserin/gherkin-report/internal/feature"
)

// RenderMarkdown renders one block per feature, joined by a blank line.
func RenderMarkdown(features []*feature.Feature) string {
	blocks := make([]string, len(features))
	for i, f := range features {
		blocks[i] = markdownBlock(f)
	}
	return strings.Join(blocks, "\n\n")
}

func markdownBlock(f *feature.Feature) string {
	var b strings.Builder
	b.WriteString("## " + f.Name + "\n")
	for _, line := range f.DescriptionLines {
		b.WriteString("> " + line + "\n")
	}
	b.WriteString("\n")
	for _, sc := range f.Scenarios {
		b.WriteString("- " + sc.Name + "\n")
	}
	return b.String()
}

// RenderHTML converts the Markdown rendering to HTML.
func RenderHTML(features []*feature.Feature) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderMarkdown(features)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// bulletStyle is the list paragraph style shipped in the godocx template.
const bulletStyle = "List Bullet"

// BuildDocument lays features out as a Word document: a heading per feature,
// its description in italics, then a bullet per scenario.
func BuildDocument(features []*feature.Feature) (*docx.RootDoc, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	for _, f := range features {
		if _, err := doc.AddHeading(f.Name, 1); err != nil {
			return nil, fmt.Errorf("adding heading %q: %w", f.Name, err)
		}
		if desc := feature.SingleLineDescription(f.Description); desc != "" {
			doc.AddParagraph("").AddText(desc).Italic(true)
		}
		for _, sc := range f.Scenarios {
			doc.AddParagraph(sc.Name).Style(bulletStyle)
		}
	}
	return doc, nil
}

func writeDocument(doc *docx.RootDoc) func(io.Writer) error {
	return func(w io.Writer) error {
		return doc.Write(w)
	}
}
