package store

import (
	"errors"

	"github.com/doodlesbykumbi/drive-console/pkg/model"
)

// ErrResourceNotFound is returned when a resource doesn't exist in the
// organization, or is not in the expected live/trashed state
var ErrResourceNotFound = errors.New("resource not found")

// ResourcesStore abstracts resource listing operations
type ResourcesStore interface {
	// ListResources returns the organization's live resources, or its
	// trashed ones when trashed is true. A limit of 0 means no limit.
	ListResources(org string, trashed bool, limit int) ([]model.Resource, error)

	// LookupResources returns the live resources of org among ids.
	// Unknown ids are skipped.
	LookupResources(org string, ids []string) ([]model.Resource, error)

	// RestoreResource moves a trashed resource back to the live listing.
	// Returns ErrResourceNotFound if no trashed resource has that id.
	RestoreResource(org, id string) error
}
