package report

import (
	"fmt"
	"os"

	"github.com/chriserin/gherkin-report/internal/feature"
	"github.com/chriserin/gherkin-report/internal/parser"
)

// Loader turns feature files into Features.
type Loader interface {
	Load(path string) (*feature.Feature, error)
}

// FileLoader reads from the local filesystem and parses with internal/parser.
type FileLoader struct{}

func (FileLoader) Load(path string) (*feature.Feature, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parser.Transform(doc, path), nil
}
