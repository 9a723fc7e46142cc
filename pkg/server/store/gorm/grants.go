package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

// Ensure GrantsStore implements store.GrantsStore
var _ store.GrantsStore = (*GrantsStore)(nil)

// GrantsStore implements store.GrantsStore using GORM
type GrantsStore struct {
	db *gorm.DB
}

// NewGrantsStore creates a new GrantsStore
func NewGrantsStore(db *gorm.DB) *GrantsStore {
	return &GrantsStore{db: db}
}

// CreateGrant stores a new grant
func (s *GrantsStore) CreateGrant(grant *model.Grant) error {
	return s.db.Create(grant).Error
}

// ListGrants returns the grants of a grantee, oldest first
func (s *GrantsStore) ListGrants(org, granteeID string) ([]model.Grant, error) {
	var grants []model.Grant
	err := s.db.
		Where("organization_id = ? AND grantee_id = ?", org, granteeID).
		Order("created_at").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// DeleteGrant removes a grant
func (s *GrantsStore) DeleteGrant(org, id string) error {
	tx := s.db.Where("organization_id = ? AND id = ?", org, id).Delete(&model.Grant{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrGrantNotFound
	}
	return nil
}
