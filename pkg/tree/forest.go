package tree

// Walk visits every node in pre-order. Returning false from fn skips the
// node's children.
func (f Forest) Walk(fn func(n *Node, depth int) bool) {
	for _, root := range f {
		walk(root, 0, fn)
	}
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Index maps every node id to its node.
func (f Forest) Index() map[string]*Node {
	index := make(map[string]*Node)
	f.Walk(func(n *Node, _ int) bool {
		index[n.ID] = n
		return true
	})
	return index
}

// IDs returns every id in pre-order.
func (f Forest) IDs() []string {
	var ids []string
	f.Walk(func(n *Node, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// FolderIDs returns the id of every folder in pre-order.
func (f Forest) FolderIDs() []string {
	var ids []string
	f.Walk(func(n *Node, _ int) bool {
		if n.IsFolder {
			ids = append(ids, n.ID)
		}
		return true
	})
	return ids
}

// Find returns the node with the given id, or nil.
func (f Forest) Find(id string) *Node {
	var found *Node
	f.Walk(func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Len is the number of nodes across all trees.
func (f Forest) Len() int {
	count := 0
	f.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
