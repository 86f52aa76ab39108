package feature

// Filter drops every feature tagged with exclude and, from the features that
// remain, every scenario tagged with it. A blank exclude returns features as is.
// The input slice and the features it points to are left untouched.
func Filter(features []*Feature, exclude string) []*Feature {
	if exclude == "" {
		return features
	}

	out := make([]*Feature, 0, len(features))
	for _, f := range features {
		if f == nil || f.Tags.Has(exclude) {
			continue
		}
		kept := f.clone()
		kept.Scenarios = make([]Scenario, 0, len(f.Scenarios))
		for _, sc := range f.Scenarios {
			if sc.Tags.Has(exclude) {
				continue
			}
			kept.Scenarios = append(kept.Scenarios, sc)
		}
		out = append(out, kept)
	}
	return out
}
