package endpoints

import (
	"github.com/doodlesbykumbi/drive-console/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterCatalogEndpoints(srv)
	RegisterResourcesEndpoints(srv)
	RegisterTreeEndpoints(srv)
	RegisterPermissionsEndpoints(srv)
	RegisterGrantsEndpoints(srv)
}
