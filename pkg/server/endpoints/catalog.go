package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/permission"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
)

// CatalogResponse lists the permissions that can be granted
type CatalogResponse struct {
	Categories  []permission.Category `json:"categories"`
	Permissions []string              `json:"permissions"`
}

// RegisterCatalogEndpoints registers GET /catalog
func RegisterCatalogEndpoints(s *server.Server) {
	catalogRouter := s.Router.PathPrefix("/catalog").Subrouter()
	catalogRouter.Use(s.JWTMiddleware.Middleware)

	catalogRouter.HandleFunc("", handleCatalog(s.Config)).Methods("GET")
}

func handleCatalog(cfg *config.DriveConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, catalogOf(cfg))
	}
}

func catalogOf(cfg *config.DriveConfig) CatalogResponse {
	return CatalogResponse{
		Categories:  cfg.Categories(),
		Permissions: cfg.Catalog(),
	}
}
