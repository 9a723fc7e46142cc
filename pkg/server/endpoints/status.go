package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

// StatusResponse represents the response from /status
type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the health endpoint. It needs no token.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus(s.HealthStore)).Methods("GET")
}

func handleStatus(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}
}
