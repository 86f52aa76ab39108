package feature

import "gopkg.in/yaml.v3"

// TagSet is an ordered set of tag names. Lookups are by exact name.
type TagSet struct {
	names []string
	index map[string]struct{}
}

// NewTagSet builds a set from names, dropping duplicates and blanks.
func NewTagSet(names ...string) TagSet {
	var s TagSet
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name if it is not already present.
func (s *TagSet) Add(name string) {
	if name == "" || s.Has(name) {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s TagSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s TagSet) Len() int { return len(s.names) }

func (s TagSet) IsZero() bool { return len(s.names) == 0 }

// Names returns the tags in the order they were added.
func (s TagSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Union returns a new set holding the tags of s followed by those of other.
func (s TagSet) Union(other TagSet) TagSet {
	out := NewTagSet(s.names...)
	for _, n := range other.names {
		out.Add(n)
	}
	return out
}

func (s TagSet) MarshalYAML() (interface{}, error) {
	return s.Names(), nil
}

func (s *TagSet) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}
	*s = NewTagSet(names...)
	return nil
}
