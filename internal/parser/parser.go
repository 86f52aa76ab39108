// Package parser adapts the cucumber Gherkin parser to the report model.
package parser

import (
	"bytes"
	"errors"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

// ErrNoFeature is returned for sources that parse but hold no Feature,
// such as empty or comment-only files.
var ErrNoFeature = errors.New("no Feature found")

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse parses Gherkin source in any supported dialect (see "# language:").
func Parse(content []byte) (*messages.GherkinDocument, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	doc, err := gherkin.ParseGherkinDocument(bytes.NewReader(content), (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, err
	}
	if doc.Feature == nil {
		return nil, ErrNoFeature
	}
	return doc, nil
}
