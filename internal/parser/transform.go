package parser

import (
	messages "github.com/cucumber/messages/go/v21"

	"github.com/chriserin/gherkin-report/internal/feature"
)

// Transform converts a Gherkin document into the report model.
// Scenarios nested in rules are flattened in source order and inherit the
// rule's tags. Backgrounds are not scenarios and are dropped.
func Transform(doc *messages.GherkinDocument, path string) *feature.Feature {
	if doc == nil || doc.Feature == nil {
		return nil
	}

	f := &feature.Feature{
		Name:        doc.Feature.Name,
		Description: doc.Feature.Description,
		Tags:        tagSet(doc.Feature.Tags),
		Scenarios:   []feature.Scenario{},
		Path:        path,
	}

	for _, child := range doc.Feature.Children {
		switch {
		case child.Scenario != nil:
			f.Scenarios = append(f.Scenarios, toScenario(child.Scenario, feature.TagSet{}))
		case child.Rule != nil:
			inherited := tagSet(child.Rule.Tags)
			for _, rc := range child.Rule.Children {
				if rc.Scenario != nil {
					f.Scenarios = append(f.Scenarios, toScenario(rc.Scenario, inherited))
				}
			}
		}
	}

	return f
}

func toScenario(sc *messages.Scenario, inherited feature.TagSet) feature.Scenario {
	out := feature.Scenario{
		Name: sc.Name,
		Tags: inherited.Union(tagSet(sc.Tags)),
	}
	if sc.Location != nil {
		out.Line = int(sc.Location.Line)
	}
	return out
}

func tagSet(tags []*messages.Tag) feature.TagSet {
	var s feature.TagSet
	for _, t := range tags {
		s.Add(t.Name)
	}
	return s
}
