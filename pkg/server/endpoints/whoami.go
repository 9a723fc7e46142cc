package endpoints

import (
	"net/http"
	"time"

	"github.com/doodlesbykumbi/drive-console/pkg/identity"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	Organization string    `json:"organization"`
	Username     string    `json:"username"`
	RoleID       string    `json:"roleId"`
	ClientIP     string    `json:"clientIp,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.JWTMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			Organization: id.Organization,
			Username:     id.Login,
			RoleID:       id.RoleID,
			ClientIP:     id.ClientIP(),
			ExpiresAt:    id.ExpiresAt,
		})
	}
}
