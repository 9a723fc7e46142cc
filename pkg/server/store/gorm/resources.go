package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

// Ensure ResourcesStore implements store.ResourcesStore
var _ store.ResourcesStore = (*ResourcesStore)(nil)

// ResourcesStore implements store.ResourcesStore using GORM
type ResourcesStore struct {
	db *gorm.DB
}

// NewResourcesStore creates a new ResourcesStore
func NewResourcesStore(db *gorm.DB) *ResourcesStore {
	return &ResourcesStore{db: db}
}

// ListResources returns live or trashed resources of an organization
func (s *ResourcesStore) ListResources(org string, trashed bool, limit int) ([]model.Resource, error) {
	query := s.db.Where("organization_id = ?", org)
	if trashed {
		query = query.Where("deleted_at IS NOT NULL")
	} else {
		query = query.Where("deleted_at IS NULL")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.Resource
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LookupResources returns the live resources of org among ids
func (s *ResourcesStore) LookupResources(org string, ids []string) ([]model.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []model.Resource
	err := s.db.
		Where("organization_id = ? AND id IN ? AND deleted_at IS NULL", org, ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RestoreResource clears deleted_at on a trashed resource
func (s *ResourcesStore) RestoreResource(org, id string) error {
	tx := s.db.Model(&model.Resource{}).
		Where("organization_id = ? AND id = ? AND deleted_at IS NOT NULL", org, id).
		Update("deleted_at", nil)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrResourceNotFound
	}
	return nil
}
