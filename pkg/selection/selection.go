package selection

import (
	"github.com/doodlesbykumbi/drive-console/pkg/expansion"
	"github.com/doodlesbykumbi/drive-console/pkg/tree"
)

//go:generate go run github.com/dmarkham/enumer -type=TriState -trimprefix=TriState -transform=lower -json -output=tristate.gen.go

// TriState is the checkbox state shown for a node.
type TriState int

const (
	TriStateUnchecked TriState = iota
	TriStateChecked
	TriStateIndeterminate
)

// DescendantIDs returns the id of node followed by every descendant id in
// pre-order. A nil node yields nil.
func DescendantIDs(node *tree.Node) []string {
	if node == nil {
		return nil
	}
	var ids []string
	seen := map[string]bool{}
	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		ids = append(ids, n.ID)
		for _, child := range n.Children {
			visit(child)
		}
	}
	visit(node)
	return ids
}

// Toggle checks or unchecks node. For a folder the change cascades to every
// descendant. A nil node returns a copy of sel.
func Toggle(node *tree.Node, checked bool, sel Set) Set {
	next := sel.Clone()
	if node == nil {
		return next
	}
	for _, id := range DescendantIDs(node) {
		if checked {
			next[id] = struct{}{}
		} else {
			delete(next, id)
		}
	}
	return next
}

// IsSelected reports whether the node itself is selected.
func IsSelected(node *tree.Node, sel Set) bool {
	return node != nil && sel.Has(node.ID)
}

// IsIndeterminate reports whether node is not selected while at least one of
// its strict descendants is.
func IsIndeterminate(node *tree.Node, sel Set) bool {
	if node == nil || sel.Has(node.ID) {
		return false
	}
	for _, id := range DescendantIDs(node)[1:] {
		if sel.Has(id) {
			return true
		}
	}
	return false
}

// StateOf returns the checkbox state of node. Checked means the node and
// every descendant are selected. Any other partial coverage, including a
// selected folder that gained unselected children, is Indeterminate.
func StateOf(node *tree.Node, sel Set) TriState {
	if node == nil {
		return TriStateUnchecked
	}
	ids := DescendantIDs(node)
	selected := 0
	for _, id := range ids {
		if sel.Has(id) {
			selected++
		}
	}
	return stateFor(selected, len(ids))
}

// States returns the checkbox state of every node in the forest, computed in
// a single pass.
func States(forest tree.Forest, sel Set) map[string]TriState {
	states := make(map[string]TriState)
	var visit func(n *tree.Node) (selected, total int)
	visit = func(n *tree.Node) (int, int) {
		selected, total := 0, 1
		if sel.Has(n.ID) {
			selected = 1
		}
		for _, child := range n.Children {
			s, t := visit(child)
			selected += s
			total += t
		}
		states[n.ID] = stateFor(selected, total)
		return selected, total
	}
	for _, root := range forest {
		visit(root)
	}
	return states
}

func stateFor(selected, total int) TriState {
	switch {
	case selected == 0:
		return TriStateUnchecked
	case selected == total:
		return TriStateChecked
	default:
		return TriStateIndeterminate
	}
}

// SelectAll selects every id given. Pass Forest.IDs() to include nested
// nodes, not just roots.
func SelectAll(ids []string) Set {
	return NewSet(ids...)
}

// ClearAll returns an empty selection.
func ClearAll() Set {
	return Set{}
}

// AutoExpandAncestors returns an expansion patch opening every folder above a
// selected node. Merge it into the current state with expansion.Merge.
func AutoExpandAncestors(sel Set, index map[string]*tree.Node) expansion.Map {
	patch := expansion.Map{}
	for id := range sel {
		node, ok := index[id]
		if !ok {
			continue
		}
		parent := node.ParentID
		for steps := 0; parent != "" && steps < len(index); steps++ {
			p, ok := index[parent]
			if !ok || patch[p.ID] {
				break
			}
			if p.IsFolder {
				patch[p.ID] = true
			}
			parent = p.ParentID
		}
	}
	return patch
}

// Prune drops selected ids that are no longer in index, typically after the
// forest was rebuilt from a fresh listing.
func Prune(sel Set, index map[string]*tree.Node) Set {
	next := Set{}
	for id := range sel {
		if _, ok := index[id]; ok {
			next[id] = struct{}{}
		}
	}
	return next
}
