// Package permission holds the permission catalog and the single rule that
// keeps the synthetic FULL_ACCESS permission in step with the rest of it.
//
// The built-in catalog is the Permission enum. Deployments may append extra
// names from configuration with Extend, so the functions in this package take
// the catalog as a plain list of names and sets travel as strings.
//
// # Aggregation rule
//
// ApplyToggle is used for both individual members and security groups:
//
//	catalog := permission.DefaultCatalog()
//	perms := permission.ApplyToggle(nil, "READ", true, catalog)
//	perms = permission.ApplyToggle(perms, "FULL_ACCESS", true, catalog)
//
// For any input, FULL_ACCESS is in the result if and only if every other
// catalog entry is, and applying the same toggle twice changes nothing.
package permission
