package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/permission"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
)

// ToggleRequest flips one permission in a member's or group's set
type ToggleRequest struct {
	Current    permission.Set `json:"current"`
	Permission string         `json:"permission"`
	Checked    bool           `json:"checked"`
}

// ToggleResponse is the set after the toggle
type ToggleResponse struct {
	Permissions permission.Set `json:"permissions"`
}

// RegisterPermissionsEndpoints registers POST /permissions/toggle. User and
// group editors share it.
func RegisterPermissionsEndpoints(s *server.Server) {
	permissionsRouter := s.Router.PathPrefix("/permissions").Subrouter()
	permissionsRouter.Use(s.JWTMiddleware.Middleware)

	permissionsRouter.HandleFunc("/toggle", handleTogglePermission(s.Config)).Methods("POST")
}

func handleTogglePermission(cfg *config.DriveConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ToggleRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		catalog := cfg.Catalog()
		if err := permission.Validate([]string{req.Permission}, catalog); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, ToggleResponse{
			Permissions: permission.ApplyToggle(req.Current, req.Permission, req.Checked, catalog),
		})
	}
}
