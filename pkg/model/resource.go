package model

import (
	"time"

	"github.com/doodlesbykumbi/drive-console/pkg/resource"
)

// Resource is a file or folder row. Nullable columns stay nullable so that a
// row maps onto the same loosely-typed record the listing API returns.
type Resource struct {
	ID             string     `gorm:"column:id;primaryKey"`
	OrganizationID string     `gorm:"column:organization_id;not null"`
	Name           *string    `gorm:"column:name"`
	FileName       *string    `gorm:"column:file_name"`
	Type           *string    `gorm:"column:type"`
	MimeType       *string    `gorm:"column:mime_type"`
	FileExtension  *string    `gorm:"column:file_extension"`
	ParentID       *string    `gorm:"column:parent_id"`
	DeletedAt      *time.Time `gorm:"column:deleted_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Resource) TableName() string {
	return "resources"
}

// IsTrashed reports whether the resource sits in the trash
func (r *Resource) IsTrashed() bool {
	return r.DeletedAt != nil
}

// Record converts the row to a listing record for normalization
func (r *Resource) Record() resource.Record {
	return resource.Record{
		ID:            resource.Value(r.ID),
		Name:          field(r.Name),
		FileName:      field(r.FileName),
		Type:          field(r.Type),
		MimeType:      field(r.MimeType),
		FileExtension: field(r.FileExtension),
		ParentID:      field(r.ParentID),
	}
}

func field(v *string) resource.Field {
	if v == nil {
		return resource.Null()
	}
	return resource.Value(*v)
}
