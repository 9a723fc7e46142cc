package permission

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyToggleWalkthrough(t *testing.T) {
	catalog := []string{"FULL_ACCESS", "READ", "WRITE"}

	s := ApplyToggle(Set{}, "READ", true, catalog)
	assert.Equal(t, NewSet("READ"), s)

	s = ApplyToggle(s, "WRITE", true, catalog)
	assert.Equal(t, NewSet("READ", "WRITE", "FULL_ACCESS"), s)

	s = ApplyToggle(s, "READ", false, catalog)
	assert.Equal(t, NewSet("WRITE"), s)
}

func TestApplyToggleFullAccess(t *testing.T) {
	catalog := DefaultCatalog()

	all := ApplyToggle(NewSet("READ"), "FULL_ACCESS", true, catalog)
	assert.Len(t, all, len(catalog))
	for _, name := range catalog {
		assert.True(t, all.Has(name), name)
	}

	assert.Empty(t, ApplyToggle(all, "FULL_ACCESS", false, catalog))
}

func TestApplyToggleDoesNotModifyInput(t *testing.T) {
	catalog := []string{"FULL_ACCESS", "READ", "WRITE"}
	current := NewSet("READ", "WRITE", "FULL_ACCESS")

	ApplyToggle(current, "WRITE", false, catalog)

	assert.Equal(t, NewSet("READ", "WRITE", "FULL_ACCESS"), current)
}

func TestApplyToggleRepairsInconsistentInput(t *testing.T) {
	catalog := []string{"FULL_ACCESS", "READ", "WRITE"}

	// FULL_ACCESS without full coverage is dropped.
	s := ApplyToggle(NewSet("FULL_ACCESS"), "READ", true, catalog)
	assert.Equal(t, NewSet("READ"), s)

	// A catalog without FULL_ACCESS never grants it.
	s = ApplyToggle(Set{}, "FULL_ACCESS", true, []string{"READ"})
	assert.Equal(t, NewSet("READ"), s)
}

func TestApplyToggleUnknownNamesAreKept(t *testing.T) {
	catalog := []string{"FULL_ACCESS", "READ"}

	s := ApplyToggle(nil, "LEGACY", true, catalog)
	assert.Equal(t, NewSet("LEGACY"), s)

	s = ApplyToggle(s, "READ", true, catalog)
	assert.Equal(t, NewSet("LEGACY", "READ", "FULL_ACCESS"), s)
}

func TestClose(t *testing.T) {
	catalog := []string{"FULL_ACCESS", "READ", "WRITE"}

	assert.Equal(t, NewSet("READ", "WRITE", "FULL_ACCESS"), Close(NewSet("READ", "WRITE"), catalog))
	assert.Equal(t, NewSet("READ"), Close(NewSet("READ", "FULL_ACCESS"), catalog))
}

func TestApplyToggleCatalogOfOnlyFullAccess(t *testing.T) {
	catalog := []string{"FULL_ACCESS"}

	assert.Equal(t, NewSet("LEGACY", "FULL_ACCESS"), ApplyToggle(nil, "LEGACY", true, catalog))
	assert.Equal(t, NewSet("FULL_ACCESS"), ApplyToggle(NewSet("LEGACY"), "LEGACY", false, catalog))
	assert.Equal(t, NewSet("FULL_ACCESS"), ApplyToggle(nil, "FULL_ACCESS", true, catalog))
	assert.Empty(t, ApplyToggle(NewSet("FULL_ACCESS"), "FULL_ACCESS", false, catalog))
	assert.Equal(t, NewSet("FULL_ACCESS"), Close(Set{}, catalog))
}

// Closure and idempotence over random sets, names and catalogs.
func TestApplyToggleProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	names := append(DefaultCatalog(), "EXTRA")

	for round := 0; round < 500; round++ {
		catalog := DefaultCatalog()
		if rng.Intn(2) == 0 {
			catalog = Extend(catalog, "EXTRA")
		}

		current := Set{}
		for _, name := range names {
			if rng.Intn(2) == 0 {
				current[name] = struct{}{}
			}
		}
		name := names[rng.Intn(len(names))]
		checked := rng.Intn(2) == 0

		once := ApplyToggle(current, name, checked, catalog)
		twice := ApplyToggle(once, name, checked, catalog)
		assert.True(t, once.Equal(twice), "round %d: not idempotent for %s=%v", round, name, checked)

		others := true
		for _, c := range catalog {
			if c != "FULL_ACCESS" && !once.Has(c) {
				others = false
			}
		}
		assert.Equal(t, others, once.Has("FULL_ACCESS"), "round %d: closure broken for %s=%v", round, name, checked)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, "Master", cats[0].Name)
	assert.Equal(t, []string{"FULL_ACCESS"}, cats[0].Permissions)

	total := 0
	for _, c := range cats {
		total += len(c.Permissions)
	}
	assert.Equal(t, len(DefaultCatalog()), total)
	assert.Len(t, DefaultCatalog(), 21)
}

func TestExtend(t *testing.T) {
	base := []string{"FULL_ACCESS", "READ"}
	out := Extend(base, "ARCHIVE", "READ", "", "ARCHIVE")

	assert.Equal(t, []string{"FULL_ACCESS", "READ", "ARCHIVE"}, out)
	assert.Equal(t, []string{"FULL_ACCESS", "READ"}, base)
}

func TestValidate(t *testing.T) {
	catalog := DefaultCatalog()

	assert.NoError(t, Validate([]string{"READ", "EMPTY_TRASH"}, catalog))

	err := Validate([]string{"READ", "FLY", "read", "FLY"}, catalog)
	require.ErrorIs(t, err, ErrUnknownPermission)
	assert.Contains(t, err.Error(), "FLY, read")
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltin("VIEW_AUDIT_LOG"))
	assert.False(t, IsBuiltin("view_audit_log"))
	assert.False(t, IsBuiltin("ARCHIVE"))
}

func TestSetEncoding(t *testing.T) {
	s := NewSet("ZETA", "WRITE", "FULL_ACCESS", "ALPHA", "READ")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["FULL_ACCESS","READ","WRITE","ALPHA","ZETA"]`, string(data))

	var back Set
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, s.Equal(back))

	data, err = json.Marshal(Set(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"READ": true}`), &back))
}

func TestPermissionEnumYAML(t *testing.T) {
	var doc struct {
		Perms []Permission `yaml:"perms"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("perms: [READ, restore_from_trash]"), &doc))
	assert.Equal(t, []Permission{Read, RestoreFromTrash}, doc.Perms)

	_, err := PermissionString("NOPE")
	assert.Error(t, err)
}
