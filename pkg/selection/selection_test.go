package selection

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drive-console/pkg/expansion"
	"github.com/doodlesbykumbi/drive-console/pkg/resource"
	"github.com/doodlesbykumbi/drive-console/pkg/tree"
)

func chain(t *testing.T) tree.Forest {
	t.Helper()
	records, err := resource.DecodeRecords([]byte(`[
		{"id": 1, "name": "Root", "parentId": null, "type": "folder"},
		{"id": 2, "name": "Sub", "parentId": 1, "type": "folder"},
		{"id": 3, "name": "a.txt", "parentId": 2, "type": "file"}
	]`))
	require.NoError(t, err)
	return tree.FromRecords(records)
}

func TestRootChainSelection(t *testing.T) {
	forest := chain(t)
	root, sub := forest.Find("1"), forest.Find("2")

	assert.Equal(t, NewSet("1", "2", "3"), Toggle(root, true, Set{}))

	assert.True(t, IsIndeterminate(root, NewSet("3")))
	assert.True(t, IsIndeterminate(sub, NewSet("3")))
	assert.False(t, IsIndeterminate(root, NewSet("1", "2", "3")))
}

func TestToggle(t *testing.T) {
	forest := chain(t)
	root, file := forest.Find("1"), forest.Find("3")

	t.Run("unchecking a folder clears its subtree", func(t *testing.T) {
		sel := NewSet("1", "2", "3", "other")
		assert.Equal(t, NewSet("other"), Toggle(root, false, sel))
		assert.Len(t, sel, 4, "input must not change")
	})

	t.Run("files toggle alone", func(t *testing.T) {
		assert.Equal(t, NewSet("3"), Toggle(file, true, nil))
		assert.Empty(t, Toggle(file, false, NewSet("3")))
	})

	t.Run("nil node returns a copy", func(t *testing.T) {
		sel := NewSet("x")
		next := Toggle(nil, true, sel)
		assert.Equal(t, sel, next)
		next["y"] = struct{}{}
		assert.False(t, sel.Has("y"))
	})
}

func TestStateOf(t *testing.T) {
	forest := chain(t)
	root, sub, file := forest.Find("1"), forest.Find("2"), forest.Find("3")

	assert.Equal(t, TriStateUnchecked, StateOf(root, Set{}))
	assert.Equal(t, TriStateChecked, StateOf(root, NewSet("1", "2", "3")))
	assert.Equal(t, TriStateIndeterminate, StateOf(root, NewSet("3")))
	assert.Equal(t, TriStateChecked, StateOf(file, NewSet("3")))

	// A saved selection covering the folders but not a newer file.
	saved := NewSet("1", "2")
	assert.Equal(t, TriStateIndeterminate, StateOf(root, saved))
	assert.Equal(t, TriStateIndeterminate, StateOf(sub, saved))
	assert.False(t, IsIndeterminate(root, saved))
	assert.True(t, IsSelected(root, saved))

	assert.Equal(t, TriStateUnchecked, StateOf(nil, saved))
}

func TestStates(t *testing.T) {
	forest := tree.Build([]resource.Node{
		{ID: "r", DisplayName: "Root", IsFolder: true},
		{ID: "a", DisplayName: "A", IsFolder: true, ParentID: "r"},
		{ID: "a1", DisplayName: "a1", ParentID: "a"},
		{ID: "b", DisplayName: "B", IsFolder: true, ParentID: "r"},
		{ID: "b1", DisplayName: "b1", ParentID: "b"},
		{ID: "loose", DisplayName: "loose"},
	})
	sel := Toggle(forest.Find("a"), true, Set{})

	states := States(forest, sel)

	assert.Equal(t, map[string]TriState{
		"r":     TriStateIndeterminate,
		"a":     TriStateChecked,
		"a1":    TriStateChecked,
		"b":     TriStateUnchecked,
		"b1":    TriStateUnchecked,
		"loose": TriStateUnchecked,
	}, states)

	for id, state := range states {
		assert.Equal(t, StateOf(forest.Find(id), sel), state, id)
	}
	assert.Empty(t, States(nil, sel))
}

func TestDescendantIDs(t *testing.T) {
	forest := chain(t)
	assert.Equal(t, []string{"1", "2", "3"}, DescendantIDs(forest.Find("1")))
	assert.Equal(t, []string{"3"}, DescendantIDs(forest.Find("3")))
	assert.Nil(t, DescendantIDs(nil))
}

// Cascade and indeterminate checks over random forests and selections.
func TestSelectionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for round := 0; round < 100; round++ {
		size := 1 + rng.Intn(30)
		var nodes []resource.Node
		for i := 0; i < size; i++ {
			parent := ""
			if i > 0 && rng.Intn(4) > 0 {
				parent = fmt.Sprint(rng.Intn(i))
			}
			nodes = append(nodes, resource.Node{
				ID:          fmt.Sprint(i),
				DisplayName: fmt.Sprintf("n%d", i),
				IsFolder:    rng.Intn(3) > 0,
				ParentID:    parent,
			})
		}
		forest := tree.Build(nodes)

		sel := Set{}
		for _, id := range forest.IDs() {
			if rng.Intn(3) == 0 {
				sel[id] = struct{}{}
			}
		}

		forest.Walk(func(n *tree.Node, _ int) bool {
			covered := DescendantIDs(n)

			on := Toggle(n, true, sel)
			for _, id := range covered {
				assert.True(t, on.Has(id), "round %d: %s missing after check", round, id)
			}
			off := Toggle(n, false, on)
			for _, id := range covered {
				assert.False(t, off.Has(id), "round %d: %s left after uncheck", round, id)
			}

			want := false
			if !sel.Has(n.ID) {
				for _, id := range covered[1:] {
					want = want || sel.Has(id)
				}
			}
			assert.Equal(t, want, IsIndeterminate(n, sel), "round %d node %s", round, n.ID)
			return true
		})
	}
}

func TestSelectAllAndClearAll(t *testing.T) {
	forest := chain(t)
	assert.Equal(t, NewSet("1", "2", "3"), SelectAll(forest.IDs()))
	assert.Empty(t, SelectAll(nil))
	assert.Empty(t, ClearAll())
}

func TestAutoExpandAncestors(t *testing.T) {
	forest := tree.Build([]resource.Node{
		{ID: "r", DisplayName: "Root", IsFolder: true},
		{ID: "s", DisplayName: "Sub", IsFolder: true, ParentID: "r"},
		{ID: "f", DisplayName: "f.txt", ParentID: "s"},
		{ID: "o", DisplayName: "Other", IsFolder: true},
	})
	index := forest.Index()

	patch := AutoExpandAncestors(NewSet("f", "missing"), index)
	assert.Equal(t, expansion.Map{"r": true, "s": true}, patch)

	merged := expansion.Merge(expansion.Map{"o": true}, patch)
	assert.Equal(t, expansion.Map{"o": true, "r": true, "s": true}, merged)

	assert.Empty(t, AutoExpandAncestors(NewSet("r"), index))
	assert.Empty(t, AutoExpandAncestors(Set{}, nil))
}

func TestAutoExpandAncestorsOnHandBuiltLoop(t *testing.T) {
	a := &tree.Node{ID: "a", IsFolder: true, ParentID: "b"}
	b := &tree.Node{ID: "b", IsFolder: true, ParentID: "a"}
	index := map[string]*tree.Node{"a": a, "b": b}

	patch := AutoExpandAncestors(NewSet("a"), index)
	assert.Equal(t, expansion.Map{"a": true, "b": true}, patch)
}

func TestPrune(t *testing.T) {
	forest := chain(t)
	assert.Equal(t, NewSet("1", "3"), Prune(NewSet("1", "3", "gone"), forest.Index()))
}

func TestSetJSON(t *testing.T) {
	data, err := json.Marshal(NewSet("b", "a", "10"))
	require.NoError(t, err)
	assert.Equal(t, `["10","a","b"]`, string(data))

	data, err = json.Marshal(Set(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	var back Set
	require.NoError(t, json.Unmarshal([]byte(`["x","x","y"]`), &back))
	assert.Equal(t, NewSet("x", "y"), back)

	data, err = json.Marshal(map[string]TriState{"n": TriStateIndeterminate})
	require.NoError(t, err)
	assert.Equal(t, `{"n":"indeterminate"}`, string(data))
}
