package feature

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r\n|\n|\r`)

// DescriptionLines splits a free-text description into trimmed lines.
// It returns nil for an empty description.
func DescriptionLines(description string) []string {
	if description == "" {
		return nil
	}
	parts := lineBreak.Split(description, -1)
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = strings.TrimSpace(p)
	}
	return lines
}

// Normalize attaches DescriptionLines to every feature with a description.
func Normalize(features []*Feature) {
	for _, f := range features {
		f.DescriptionLines = DescriptionLines(f.Description)
	}
}

// SingleLineDescription collapses the description onto one trimmed line.
func SingleLineDescription(description string) string {
	var parts []string
	for _, l := range DescriptionLines(description) {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}
