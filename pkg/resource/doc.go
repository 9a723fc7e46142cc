// Package resource turns raw file and folder records, as returned by the
// storage backend, into a flat list of nodes with a resolved parent and a
// folder flag.
//
// The backend is not consistent about its shapes. A record may name its
// parent with any of parentId, parent_id or folderId; ids may be numbers or
// strings; "no parent" may be absent, null, "" or the literal string "null";
// and some listings arrive already nested through children arrays. Every
// function in this package is total: unknown shapes degrade to a root,
// non-folder node named after its id instead of returning an error.
//
// # Usage
//
//	records, err := resource.DecodeRecords(body)
//	if err != nil {
//	    // body was not a JSON array
//	}
//	nodes := resource.Normalize(records)
//
// The nodes are usually handed to tree.Build to obtain a sorted forest.
package resource
