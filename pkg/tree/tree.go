package tree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/doodlesbykumbi/drive-console/pkg/resource"
)

// Repair records why a node sits at the root of the forest although its
// record named a parent.
type Repair int

const (
	RepairNone       Repair = iota
	RepairOrphan            // declared parent is not in the listing
	RepairFileParent        // declared parent is a file
	RepairCycle             // parent pointers loop back to the node
)

func (r Repair) String() string {
	switch r {
	case RepairOrphan:
		return "orphan"
	case RepairFileParent:
		return "file-parent"
	case RepairCycle:
		return "cycle"
	default:
		return "none"
	}
}

// MarshalText renders the repair reason for JSON output.
func (r Repair) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Node is a resource placed in the forest.
type Node struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"name"`
	IsFolder    bool    `json:"isFolder"`
	ParentID    string  `json:"parentId,omitempty"`
	Repair      Repair  `json:"repair,omitempty"`
	Children    []*Node `json:"children,omitempty"`
}

// HasChildren reports whether the node is a folder with at least one child.
func (n *Node) HasChildren() bool {
	return n != nil && n.IsFolder && len(n.Children) > 0
}

// Forest is an ordered list of root nodes.
type Forest []*Node

// FromRecords normalizes records and builds their forest.
func FromRecords(records []resource.Record) Forest {
	return Build(resource.Normalize(records))
}

// Build assembles normalized nodes into a sorted forest. Every distinct id
// appears exactly once. Nodes whose parent is missing, is a file, or lies on
// a cycle are promoted to roots and tagged with the reason.
func Build(nodes []resource.Node) Forest {
	b := &builder{
		byID:     make(map[string]resource.Node, len(nodes)),
		children: make(map[string][]string),
		placed:   make(map[string]bool, len(nodes)),
	}

	for _, n := range nodes {
		if _, ok := b.byID[n.ID]; ok {
			continue
		}
		b.byID[n.ID] = n
		b.order = append(b.order, n.ID)
	}

	type root struct {
		id     string
		repair Repair
	}
	var roots []root
	for _, id := range b.order {
		n := b.byID[id]
		if n.ParentID == "" {
			roots = append(roots, root{id, RepairNone})
			continue
		}
		parent, ok := b.byID[n.ParentID]
		switch {
		case !ok:
			roots = append(roots, root{id, RepairOrphan})
		case !parent.IsFolder:
			roots = append(roots, root{id, RepairFileParent})
		default:
			b.children[n.ParentID] = append(b.children[n.ParentID], id)
		}
	}

	slices.SortStableFunc(roots, func(x, y root) int { return b.compare(x.id, y.id) })

	forest := make(Forest, 0, len(roots))
	for _, r := range roots {
		forest = append(forest, b.descend(r.id, "", r.repair))
	}

	// Whatever is still unplaced hangs off a parent cycle.
	var stranded []string
	for _, id := range b.order {
		if !b.placed[id] {
			stranded = append(stranded, id)
		}
	}
	if len(stranded) == 0 {
		return forest
	}
	slices.SortStableFunc(stranded, b.compare)
	for _, id := range stranded {
		if b.placed[id] {
			continue
		}
		forest = append(forest, b.descend(b.cycleEntry(id), "", RepairCycle))
	}
	slices.SortStableFunc(forest, compareNodes)
	return forest
}

// cycleEntry follows parent pointers up from an unplaced id until one
// repeats and returns the lowest member of that loop in sort order. Nodes
// hanging below the loop keep their parent.
func (b *builder) cycleEntry(id string) string {
	pos := map[string]int{}
	var path []string
	for {
		if i, ok := pos[id]; ok {
			return slices.MinFunc(path[i:], b.compare)
		}
		if b.placed[id] {
			return path[len(path)-1]
		}
		pos[id] = len(path)
		path = append(path, id)
		id = b.byID[id].ParentID
	}
}

type builder struct {
	byID     map[string]resource.Node
	order    []string
	children map[string][]string
	placed   map[string]bool
}

// descend places id and its subtree. A node already placed (which includes
// every node on the current path) is never entered again.
func (b *builder) descend(id, parent string, repair Repair) *Node {
	src := b.byID[id]
	b.placed[id] = true

	node := &Node{
		ID:          src.ID,
		DisplayName: src.DisplayName,
		IsFolder:    src.IsFolder,
		ParentID:    parent,
		Repair:      repair,
	}
	if !src.IsFolder {
		return node
	}

	kids := b.children[id]
	if len(kids) == 0 {
		return node
	}
	kids = slices.Clone(kids)
	slices.SortStableFunc(kids, b.compare)
	for _, kid := range kids {
		if b.placed[kid] {
			continue
		}
		node.Children = append(node.Children, b.descend(kid, id, RepairNone))
	}
	return node
}

func (b *builder) compare(x, y string) int {
	nx, ny := b.byID[x], b.byID[y]
	return compareKeys(nx.IsFolder, nx.DisplayName, nx.ID, ny.IsFolder, ny.DisplayName, ny.ID)
}

func compareNodes(x, y *Node) int {
	return compareKeys(x.IsFolder, x.DisplayName, x.ID, y.IsFolder, y.DisplayName, y.ID)
}

// Folders first, then case-insensitive name, then exact name, then id.
func compareKeys(xFolder bool, xName, xID string, yFolder bool, yName, yID string) int {
	if xFolder != yFolder {
		if xFolder {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(strings.ToLower(xName), strings.ToLower(yName)); c != 0 {
		return c
	}
	if c := cmp.Compare(xName, yName); c != 0 {
		return c
	}
	return cmp.Compare(xID, yID)
}
