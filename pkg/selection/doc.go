// Package selection implements cascading checkbox selection over a resource
// forest.
//
// A Set is owned by the caller and passed in and out by value. Checking a
// folder selects the folder and all of its descendants; unchecking removes
// them again. Checkbox state is always derived from the live subtree, so a
// selection loaded from elsewhere, for example a saved grant made before new
// files arrived, still renders correctly:
//
//   - IsIndeterminate is the structural test: the node is unselected and some
//     descendant is selected.
//   - StateOf and States give the display state, where Checked is reserved
//     for a node whose whole subtree is selected.
//
// Children added to a selected folder are not selected implicitly. The
// folder shows as indeterminate until it is checked again.
package selection
