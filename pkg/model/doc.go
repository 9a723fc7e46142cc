// Package model defines the database models for the drive console.
//
// # Models
//
//   - Resource: a file or folder owned by an organization; trashed rows
//     carry deleted_at
//   - Grant: permissions saved for a member or security group over a set of
//     resources
//
// # Database Schema
//
// The schema lives in db/migrations and is applied with `drivectl db
// migrate`:
//
//   - resources: listing rows, parent_id referencing another row by id
//   - grants: permission names and resource ids as text[] columns
//   - messages: audit events (see pkg/audit)
package model
