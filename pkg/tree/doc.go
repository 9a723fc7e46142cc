// Package tree assembles normalized resource nodes into a sorted forest.
//
// The builder works on an id-keyed arena: parents are referenced by id and the
// forest is constructed top-down with a placed-id guard, so malformed
// listings cannot make it loop or drop nodes. Every distinct input id appears
// exactly once in the result. Nodes that cannot hang under their declared
// parent become roots and carry a Repair reason:
//
//   - RepairOrphan: the parent id is not in the listing (often a folder the
//     caller cannot see)
//   - RepairFileParent: the parent is a file
//   - RepairCycle: the node is the lowest member, in sort order, of a loop of
//     parent pointers; nodes below the loop keep their parents
//
// Siblings are ordered folders first, then by case-insensitive display name,
// then by exact display name and finally by id.
package tree
