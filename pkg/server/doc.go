// Package server provides the HTTP server for the drive console API.
//
// It uses gorilla/mux for routing and wraps the router with gorilla/handlers
// for access logging and CORS. Allowed browser origins come from the
// allowed_origins configuration attribute.
//
// # Server Setup
//
//	jwt := middleware.NewJWTAuthenticator(secret, cfg.TokenIssuer)
//	srv := server.NewServer(db, cfg, jwt, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Config: drive console configuration
//   - ResourcesStore, GrantsStore, HealthStore: gorm-backed stores
//   - JWTMiddleware: bearer token validation
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage. They cover the
// resource tree, selection, permission toggling and grant persistence:
//
//   - /status - database connectivity
//   - /resources/{org}/tree - organization forest
//   - /grants/{org} - saved grants
package server
