package resource

import (
	"strconv"
	"strings"
)

// FolderMimeType is the vendor mime type the storage backend uses for folders.
const FolderMimeType = "application/vnd.google-apps.folder"

// Node is a normalized record: parent resolved, folder flag derived.
// ParentID is empty for roots.
type Node struct {
	ID          string
	DisplayName string
	IsFolder    bool
	ParentID    string
}

// Classify reports whether a record is a folder. Clauses are evaluated in
// order and the first match wins:
//
//  1. type is "folder" (any case)
//  2. mimeType is FolderMimeType
//  3. a file-indicating field is set (fileName, fileExtension, type "file"
//     or any other mimeType): not a folder
//  4. otherwise: folder
//
// Malformed records are never folders.
func Classify(rec Record) bool {
	if rec.Malformed() {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(rec.Type.Value), "folder") {
		return true
	}
	if rec.MimeType.Value == FolderMimeType {
		return true
	}
	if rec.FileName.Value != "" || rec.FileExtension.Value != "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(rec.Type.Value), "file") || rec.MimeType.Value != "" {
		return false
	}
	return true
}

// ResolveParent returns the parent id of a record, or "" for a root.
// The first present field among parentId, parent_id and folderId decides;
// a present field holding null, "" or "null" means root.
func ResolveParent(rec Record) string {
	for _, f := range []Field{rec.ParentID, rec.ParentIDSnake, rec.FolderID} {
		if f.Present {
			return parentValue(f.Value)
		}
	}
	return ""
}

// DisplayName returns name, falling back to fileName and then to the id.
func DisplayName(rec Record) string {
	if rec.Name.Value != "" {
		return rec.Name.Value
	}
	if rec.FileName.Value != "" {
		return rec.FileName.Value
	}
	return rec.ID.Value
}

// Nested reports whether any top-level record carries a children array.
func Nested(records []Record) bool {
	for _, rec := range records {
		if rec.Children != nil {
			return true
		}
	}
	return false
}

// MissingIDPrefix starts the id given to a record that has none. The rest
// is the record's position in the listing, counted in walk order.
const MissingIDPrefix = "#"

// Normalize flattens records into nodes with resolved parents. The first
// occurrence of an id wins. Malformed records become root files; those
// without an id get a positional one so that none of them is dropped.
//
// When the listing is already nested, the supplied nesting is trusted:
// nested records take their container as parent and their own parent fields
// are ignored. Top-level records with an empty parent are walked first, then
// any remaining top-level records keep their declared parent.
func Normalize(records []Record) []Node {
	n := &normalizer{seen: make(map[string]bool, len(records))}

	if !Nested(records) {
		for _, rec := range records {
			n.add(rec, ResolveParent(rec))
		}
		return n.nodes
	}

	var rest []Record
	for _, rec := range records {
		if ResolveParent(rec) != "" {
			rest = append(rest, rec)
			continue
		}
		n.walk(rec, "")
	}
	for _, rec := range rest {
		n.walk(rec, ResolveParent(rec))
	}
	return n.nodes
}

type normalizer struct {
	seen  map[string]bool
	nodes []Node
	pos   int
}

// add appends rec and returns the id it was placed under, or "" when an
// earlier record already claimed the id.
func (n *normalizer) add(rec Record, parent string) string {
	pos := n.pos
	n.pos++

	id := rec.ID.Value
	name := DisplayName(rec)
	if rec.Malformed() {
		parent = ""
		if strings.TrimSpace(id) == "" {
			id = n.syntheticID(pos)
			if name == "" {
				name = id
			}
		}
	}
	if n.seen[id] {
		return ""
	}
	n.seen[id] = true
	n.nodes = append(n.nodes, Node{
		ID:          id,
		DisplayName: name,
		IsFolder:    Classify(rec),
		ParentID:    parent,
	})
	return id
}

func (n *normalizer) syntheticID(pos int) string {
	id := MissingIDPrefix + strconv.Itoa(pos)
	for n.seen[id] {
		id = MissingIDPrefix + id
	}
	return id
}

func (n *normalizer) walk(rec Record, parent string) {
	id := n.add(rec, parent)
	if id == "" {
		return
	}
	for _, child := range rec.Children {
		n.walk(child, id)
	}
}

func parentValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "null") {
		return ""
	}
	return v
}
