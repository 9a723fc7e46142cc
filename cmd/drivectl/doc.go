// Command drivectl runs the drive console API and its tooling.
//
// The drive console lets administrators pick files and folders from an
// organization's resource listing and grant members or security groups a set
// of permissions over them.
//
// # Architecture
//
//   - pkg/resource: record normalization and folder classification
//   - pkg/tree: forest building with repair of orphans, file parents and cycles
//   - pkg/selection: recursive tri-state selection
//   - pkg/expansion: folder expansion state
//   - pkg/permission: permission catalog and the FULL_ACCESS toggle rule
//   - pkg/server: HTTP server, endpoints, middleware and stores
//   - pkg/audit: audit logging of grants, revokes and restores
//   - pkg/config: configuration management
//
// # Quick Start
//
//	export DATABASE_URL=postgres://localhost/drive?sslmode=disable
//	export DRIVE_TOKEN_SECRET=$(openssl rand -hex 32)
//
//	# Run database migrations
//	drivectl db migrate
//
//	# Mint a token and start the server
//	drivectl token issue --org acme --login alice
//	drivectl server
//
//	# Inspect a listing offline
//	drivectl tree render listing.json --select d1 --expand-all
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - DRIVE_TOKEN_SECRET: HS256 secret for bearer tokens
//   - DRIVE_CONFIG_PATH: directory holding drive.yml
//   - DRIVE_LOG_LEVEL: set to debug for SQL logging
//   - PORT, BIND_ADDRESS: server listen address
package main
