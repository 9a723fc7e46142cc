package selection

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Set is a set of selected resource ids. Operations in this package never
// modify a Set they receive.
type Set map[string]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy. Cloning a nil set yields an empty one.
func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}
	return maps.Clone(s)
}

// Equal reports whether both sets hold the same ids.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// IDs returns the selected ids sorted lexically.
func (s Set) IDs() []string {
	ids := slices.Collect(maps.Keys(s))
	slices.Sort(ids)
	return ids
}

func (s Set) MarshalJSON() ([]byte, error) {
	ids := s.IDs()
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("selection should be an array of ids: %w", err)
	}
	*s = NewSet(ids...)
	return nil
}
