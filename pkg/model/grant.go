package model

import (
	"time"

	"github.com/lib/pq"
)

// Grantee kinds
const (
	GranteeUser  = "user"
	GranteeGroup = "group"
)

// Resource type tags
const (
	ResourceTypeFile   = "file"
	ResourceTypeFolder = "folder"
	ResourceTypeMixed  = "mixed"
)

// Grant is a saved set of permissions given to a member or security group on
// a set of resources.
type Grant struct {
	ID             string         `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string         `gorm:"column:organization_id;not null" json:"organization"`
	GranteeID      string         `gorm:"column:grantee_id;not null" json:"grantee"`
	GranteeKind    string         `gorm:"column:grantee_kind;not null" json:"granteeKind"`
	ResourceType   string         `gorm:"column:resource_type;not null" json:"resourceType"`
	Permissions    pq.StringArray `gorm:"column:permissions;type:text[]" json:"permissions"`
	ResourceIDs    pq.StringArray `gorm:"column:resource_ids;type:text[]" json:"resources"`
	Inherit        bool           `gorm:"column:inherit" json:"inherit"`
	CreatedBy      string         `gorm:"column:created_by" json:"createdBy"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Grant) TableName() string {
	return "grants"
}

// ResourceTypeOf returns the tag for a grant over resources with the given
// folder flags: file, folder, or mixed when both occur.
func ResourceTypeOf(folders []bool) string {
	var sawFile, sawFolder bool
	for _, f := range folders {
		if f {
			sawFolder = true
		} else {
			sawFile = true
		}
	}
	switch {
	case sawFile && sawFolder:
		return ResourceTypeMixed
	case sawFolder:
		return ResourceTypeFolder
	default:
		return ResourceTypeFile
	}
}

// IsValidGranteeKind reports whether kind is user or group
func IsValidGranteeKind(kind string) bool {
	return kind == GranteeUser || kind == GranteeGroup
}
