package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/doodlesbykumbi/drive-console/pkg/identity"
)

// maxBodyBytes bounds request bodies, including raw resource listings.
const maxBodyBytes = 8 << 20

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// decodeJSON reads a JSON request body into v. It writes a 400 and returns
// false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// requireOrganization returns the caller's identity if it belongs to org.
// Otherwise it writes a 403 and returns false.
func requireOrganization(w http.ResponseWriter, r *http.Request, org string) (*identity.Identity, bool) {
	id, ok := identity.Get(r.Context())
	if !ok || !id.CanAccess(org) {
		respondWithError(w, http.StatusForbidden, "Forbidden")
		return nil, false
	}
	return id, true
}
