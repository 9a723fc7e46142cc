package endpoints

import (
	"io"
	"net/http"

	"github.com/doodlesbykumbi/drive-console/pkg/resource"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/tree"
)

// RegisterTreeEndpoints registers POST /tree/normalize, which builds a forest
// from a raw listing supplied by the caller.
func RegisterTreeEndpoints(s *server.Server) {
	treeRouter := s.Router.PathPrefix("/tree").Subrouter()
	treeRouter.Use(s.JWTMiddleware.Middleware)

	treeRouter.HandleFunc("/normalize", handleNormalize()).Methods("POST")
}

func handleNormalize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		records, err := resource.DecodeRecords(body)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, treeResponse("", false, tree.FromRecords(records)))
	}
}
