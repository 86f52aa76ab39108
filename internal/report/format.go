package report

import "strings"

type Format int

const (
	FormatStructured Format = iota
	FormatMarkup
	FormatDocument
	FormatHTML
)

var formatNames = map[string]Format{
	"raw":        FormatStructured,
	"structured": FormatStructured,
	"markdown":   FormatMarkup,
	"markup":     FormatMarkup,
	"md":         FormatMarkup,
	"word":       FormatDocument,
	"docx":       FormatDocument,
	"document":   FormatDocument,
	"html":       FormatHTML,
}

// ParseFormat maps a format name to a Format. Unknown names fall back to
// FormatStructured.
func ParseFormat(name string) Format {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return FormatStructured
}

func (f Format) String() string {
	switch f {
	case FormatMarkup:
		return "markdown"
	case FormatDocument:
		return "word"
	case FormatHTML:
		return "html"
	}
	return "raw"
}
