package permission

// ApplyToggle returns the permission set that results from checking or
// unchecking one permission. The same rule serves user and group editors.
//
//   - FULL_ACCESS checked grants the whole catalog; unchecked clears the set.
//   - Any other permission is added or removed. Removing one always drops
//     FULL_ACCESS.
//
// The result is then closed over the catalog: FULL_ACCESS is present exactly
// when every other catalog entry is. current is never modified.
func ApplyToggle(current Set, name string, checked bool, catalog []string) Set {
	master := FullAccess.String()

	var next Set
	switch {
	case name == master && checked:
		next = NewSet(catalog...)
	case name == master:
		return Set{}
	case checked:
		next = current.Clone()
		next[name] = struct{}{}
	default:
		next = current.Clone()
		delete(next, name)
		delete(next, master)
	}
	return closeOver(next, catalog)
}

// Close returns a copy of s with FULL_ACCESS made consistent with catalog.
// Use it on sets that did not come from ApplyToggle, such as stored grants.
func Close(s Set, catalog []string) Set {
	return closeOver(s.Clone(), catalog)
}

// closeOver adjusts s in place. A catalog without FULL_ACCESS never grants
// it. A catalog with nothing besides FULL_ACCESS is always complete, so only
// unchecking FULL_ACCESS itself yields a set without it.
func closeOver(s Set, catalog []string) Set {
	master := FullAccess.String()

	listed, complete := false, true
	for _, name := range catalog {
		if name == master {
			listed = true
			continue
		}
		if !s.Has(name) {
			complete = false
		}
	}

	switch {
	case !listed:
		delete(s, master)
	case complete:
		s[master] = struct{}{}
	default:
		delete(s, master)
	}
	return s
}
