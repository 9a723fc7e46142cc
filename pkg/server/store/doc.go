// Package store provides storage abstractions for the drive console server.
//
// Endpoints depend on these interfaces only; the GORM implementations live
// in the gorm subpackage and tests use testify mocks.
//
// # Available Stores
//
//   - ResourcesStore: file and folder listings, trash restore
//   - GrantsStore: saved permission grants
//   - HealthStore: database connectivity
//
// # Usage
//
//	grants := gorm.NewGrantsStore(db)
//	if err := grants.DeleteGrant(org, id); err != nil {
//	    if errors.Is(err, store.ErrGrantNotFound) {
//	        // Handle not found
//	    }
//	}
package store
