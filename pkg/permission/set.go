package permission

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownPermission is returned by Validate for names outside the catalog.
var ErrUnknownPermission = errors.New("unknown permission")

// Set is a set of permission names. A nil Set is empty and read-only.
type Set map[string]struct{}

// NewSet returns a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Clone returns an independent copy. Cloning a nil set yields an empty one.
func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}
	return maps.Clone(s)
}

// Equal reports whether both sets hold the same names.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}

// Names returns the members with built-in permissions first, in declaration
// order, followed by any other names sorted lexically.
func (s Set) Names() []string {
	names := slices.Collect(maps.Keys(s))
	slices.SortFunc(names, func(a, b string) int {
		builtinA, builtinB := IsBuiltin(a), IsBuiltin(b)
		switch {
		case builtinA && builtinB:
			pa, _ := PermissionString(a)
			pb, _ := PermissionString(b)
			return cmp.Compare(pa, pb)
		case builtinA:
			return -1
		case builtinB:
			return 1
		}
		return cmp.Compare(a, b)
	})
	return names
}

func (s Set) MarshalJSON() ([]byte, error) {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("permission set should be an array of strings: %w", err)
	}
	*s = NewSet(names...)
	return nil
}

// Validate reports every name that is not in catalog.
func Validate(names []string, catalog []string) error {
	known := NewSet(catalog...)
	var unknown []string
	for _, name := range names {
		if !known.Has(name) && !slices.Contains(unknown, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownPermission, strings.Join(unknown, ", "))
	}
	return nil
}
