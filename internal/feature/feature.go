package feature

import "strings"

// Feature is one parsed feature file, reduced to what a report needs.
type Feature struct {
	Name             string     `yaml:"name"`
	Description      string     `yaml:"description,omitempty"`
	DescriptionLines []string   `yaml:"descriptionLines,omitempty"`
	Tags             TagSet     `yaml:"tags,omitempty"`
	Scenarios        []Scenario `yaml:"scenarios"`
	Path             string     `yaml:"path,omitempty"`
}

// Scenario belongs to exactly one Feature.
type Scenario struct {
	Name string `yaml:"name"`
	Tags TagSet `yaml:"tags,omitempty"`
	Line int    `yaml:"line,omitempty"`
}

// NormalizeTag returns name with a leading "@". Blank names stay blank.
func NormalizeTag(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "@") {
		return name
	}
	return "@" + name
}

func (f *Feature) clone() *Feature {
	c := *f
	if f.DescriptionLines != nil {
		c.DescriptionLines = append([]string(nil), f.DescriptionLines...)
	}
	return &c
}
