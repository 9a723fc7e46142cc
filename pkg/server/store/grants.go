package store

import (
	"errors"

	"github.com/doodlesbykumbi/drive-console/pkg/model"
)

// ErrGrantNotFound is returned when a grant doesn't exist in the organization
var ErrGrantNotFound = errors.New("grant not found")

// GrantsStore abstracts permission grant persistence
type GrantsStore interface {
	// CreateGrant stores a new grant. The caller assigns the id.
	CreateGrant(grant *model.Grant) error

	// ListGrants returns the grants of a grantee, oldest first.
	ListGrants(org, granteeID string) ([]model.Grant, error)

	// DeleteGrant removes a grant.
	// Returns ErrGrantNotFound if the organization has no such grant.
	DeleteGrant(org, id string) error
}
