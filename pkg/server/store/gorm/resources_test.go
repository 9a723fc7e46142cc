package gorm

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

var resourceColumns = []string{
	"id", "organization_id", "name", "file_name", "type", "mime_type",
	"file_extension", "parent_id", "deleted_at", "created_at",
}

func TestResourcesStore_ListResources(t *testing.T) {
	t.Run("live resources", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewResourcesStore(db)

		now := time.Now()
		mock.ExpectQuery(`SELECT \* FROM "resources" WHERE organization_id = \$1 AND deleted_at IS NULL ORDER BY id`).
			WithArgs("acme").
			WillReturnRows(sqlmock.NewRows(resourceColumns).
				AddRow("d1", "acme", "Docs", nil, "folder", nil, nil, nil, nil, now).
				AddRow("f1", "acme", nil, "a.txt", nil, "text/plain", "txt", "d1", nil, now))

		rows, err := s.ListResources("acme", false, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Docs", *rows[0].Name)
		assert.Nil(t, rows[0].ParentID)
		assert.Equal(t, "d1", *rows[1].ParentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trashed resources with a limit", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewResourcesStore(db)

		deleted := time.Now()
		mock.ExpectQuery(`SELECT \* FROM "resources" WHERE organization_id = \$1 AND deleted_at IS NOT NULL ORDER BY id LIMIT`).
			WillReturnRows(sqlmock.NewRows(resourceColumns).
				AddRow("f9", "acme", "old.txt", nil, "file", nil, nil, "d1", deleted, deleted))

		rows, err := s.ListResources("acme", true, 50)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].IsTrashed())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewResourcesStore(db)

		mock.ExpectQuery(`SELECT \* FROM "resources"`).WillReturnError(errors.New("connection reset"))

		_, err := s.ListResources("acme", false, 0)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestResourcesStore_LookupResources(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewResourcesStore(db)

	mock.ExpectQuery(`SELECT \* FROM "resources" WHERE organization_id = \$1 AND id IN \(\$2,\$3\) AND deleted_at IS NULL`).
		WithArgs("acme", "d1", "nope").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("d1", "acme", "Docs", nil, "folder", nil, nil, nil, nil, time.Now()))

	rows, err := s.LookupResources("acme", []string{"d1", "nope"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "d1", rows[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	rows, err = s.LookupResources("acme", nil)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestResourcesStore_RestoreResource(t *testing.T) {
	t.Run("restores a trashed resource", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewResourcesStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "resources" SET "deleted_at"=\$1 WHERE organization_id = \$2 AND id = \$3 AND deleted_at IS NOT NULL`).
			WithArgs(sqlmock.AnyArg(), "acme", "f9").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, s.RestoreResource("acme", "f9"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to restore", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewResourcesStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "resources"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := s.RestoreResource("acme", "live-one")
		assert.ErrorIs(t, err, store.ErrResourceNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
