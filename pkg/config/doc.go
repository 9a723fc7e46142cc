// Package config provides configuration management for the drive console.
//
// Settings are read from drive.yml in $DRIVE_CONFIG_PATH (default
// /etc/drive-console/config) and then overridden by DRIVE_* environment
// variables. Every attribute remembers whether its value came from the
// default, the file or the environment, which `drivectl configuration show`
// prints.
//
// # Key Configuration Options
//
//   - DRIVE_ALLOWED_ORIGINS: CORS origins for the browser console
//   - DRIVE_EXTRA_PERMISSIONS: names appended to the permission catalog
//   - DRIVE_AUDIT_ENABLED: audit logging of grants and restores
//   - DRIVE_TRASH_ENABLED: trash listing and restore
//   - DRIVE_TOKEN_ISSUER, DRIVE_TOKEN_TTL: bearer token settings
//
// Secrets never live in the file: DATABASE_URL and DRIVE_TOKEN_SECRET are
// read from the environment only.
package config
