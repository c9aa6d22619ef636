package model

// AllowedFieldSet is the ordered whitelist of field names for one entity.
// Membership is exact: no trimming, no case folding.
type AllowedFieldSet struct {
	names []string
	index map[string]struct{}
}

// NewAllowedFieldSet keeps the first occurrence of each name and drops blanks.
func NewAllowedFieldSet(names ...string) AllowedFieldSet {
	set := AllowedFieldSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}

	for _, name := range names {
		if name == "" {
			continue
		}

		if _, seen := set.index[name]; seen {
			continue
		}

		set.index[name] = struct{}{}
		set.names = append(set.names, name)
	}

	return set
}

func (s AllowedFieldSet) Contains(name string) bool {
	_, ok := s.index[name]

	return ok
}

func (s AllowedFieldSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

func (s AllowedFieldSet) Len() int      { return len(s.names) }
func (s AllowedFieldSet) IsEmpty() bool { return len(s.names) == 0 }
