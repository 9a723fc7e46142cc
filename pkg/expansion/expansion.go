// Package expansion tracks which folders of a resource forest are expanded.
// A Map is a value: every operation returns a new map and leaves its input
// untouched. Absent entries are collapsed.
package expansion

import (
	"maps"

	"github.com/doodlesbykumbi/drive-console/pkg/tree"
)

// Map is folder id → expanded.
type Map map[string]bool

// IsExpanded reports whether id is expanded.
func (m Map) IsExpanded(id string) bool {
	return m[id]
}

// ExpandedIDs returns the ids whose entry is true, in no particular order.
func (m Map) ExpandedIDs() []string {
	ids := make([]string, 0, len(m))
	for id, open := range m {
		if open {
			ids = append(ids, id)
		}
	}
	return ids
}

// ToggleFolder flips the entry for id.
func ToggleFolder(id string, m Map) Map {
	next := clone(m)
	next[id] = !m[id]
	return next
}

// ExpandAll expands every folder in the forest, nested ones included.
func ExpandAll(forest tree.Forest) Map {
	m := Map{}
	for _, id := range forest.FolderIDs() {
		m[id] = true
	}
	return m
}

// CollapseAll returns the default, fully collapsed state.
func CollapseAll() Map {
	return Map{}
}

// Merge applies patch on top of base. Entries set in patch are expanded;
// nothing expanded in base is collapsed.
func Merge(base, patch Map) Map {
	next := clone(base)
	for id, open := range patch {
		if open {
			next[id] = true
		}
	}
	return next
}

func clone(m Map) Map {
	if m == nil {
		return Map{}
	}
	return maps.Clone(m)
}
