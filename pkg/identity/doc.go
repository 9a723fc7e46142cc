// Package identity provides authenticated identity management for drive
// console requests.
//
// This package separates the concept of an authenticated identity from the
// raw bearer token. An Identity combines token claims (organization, login,
// timestamps) with request-specific context (remote IP).
//
// # Basic Usage
//
//	// Create identity from verified claims
//	id := identity.FromClaims(claims)
//
//	// Add request context
//	id.WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// # Identity vs Token
//
// The middleware package handles parsing and verifying the signed token.
// The identity package builds on that to provide what handlers need: the
// role id used in audit events and the organization the caller may act on.
package identity
