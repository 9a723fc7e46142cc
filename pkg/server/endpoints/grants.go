package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"

	"github.com/doodlesbykumbi/drive-console/pkg/audit"
	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/identity"
	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/permission"
	"github.com/doodlesbykumbi/drive-console/pkg/resource"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

// GrantRequest is the body of POST /grants/{org}
type GrantRequest struct {
	Grantee     string   `json:"grantee"`
	GranteeKind string   `json:"granteeKind"`
	Permissions []string `json:"permissions"`
	Resources   []string `json:"resources"`
	Inherit     bool     `json:"inherit"`
}

func RegisterGrantsEndpoints(s *server.Server) {
	grantsStore := s.GrantsStore
	resourcesStore := s.ResourcesStore
	cfg := s.Config

	grantsRouter := s.Router.PathPrefix("/grants").Subrouter()
	grantsRouter.Use(s.JWTMiddleware.Middleware)

	// POST /grants/{org} - Save a grant
	grantsRouter.HandleFunc("/{org}", handleCreateGrant(grantsStore, resourcesStore, cfg)).Methods("POST")

	// GET /grants/{org}/{grantee} - List a grantee's grants
	grantsRouter.HandleFunc("/{org}/{grantee}", handleListGrants(grantsStore)).Methods("GET")

	// DELETE /grants/{org}/{id} - Revoke a grant
	grantsRouter.HandleFunc("/{org}/{id}", handleDeleteGrant(grantsStore)).Methods("DELETE")
}

func (req GrantRequest) validate(catalog []string) error {
	if strings.TrimSpace(req.Grantee) == "" {
		return errors.New("grantee is required")
	}
	if !model.IsValidGranteeKind(req.GranteeKind) {
		return fmt.Errorf("granteeKind must be %q or %q", model.GranteeUser, model.GranteeGroup)
	}
	if len(req.Permissions) == 0 {
		return errors.New("at least one permission is required")
	}
	if len(req.Resources) == 0 {
		return errors.New("at least one resource is required")
	}
	return permission.Validate(req.Permissions, catalog)
}

func handleCreateGrant(grantsStore store.GrantsStore, resourcesStore store.ResourcesStore, cfg *config.DriveConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		org := mux.Vars(r)["org"]
		id, ok := requireOrganization(w, r, org)
		if !ok {
			return
		}

		var req GrantRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		catalog := cfg.Catalog()
		if err := req.validate(catalog); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		resourceIDs := slices.Compact(slices.Sorted(slices.Values(req.Resources)))
		rows, err := resourcesStore.LookupResources(org, resourceIDs)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if missing := missingResources(resourceIDs, rows); len(missing) > 0 {
			respondWithError(w, http.StatusNotFound, "resources not found: "+strings.Join(missing, ", "))
			return
		}

		folders := make([]bool, 0, len(rows))
		for i := range rows {
			folders = append(folders, resource.Classify(rows[i].Record()))
		}

		grant := &model.Grant{
			ID:             uuid.NewString(),
			OrganizationID: org,
			GranteeID:      req.Grantee,
			GranteeKind:    req.GranteeKind,
			ResourceType:   model.ResourceTypeOf(folders),
			Permissions:    pq.StringArray(permission.Close(permission.NewSet(req.Permissions...), catalog).Names()),
			ResourceIDs:    pq.StringArray(resourceIDs),
			Inherit:        req.Inherit,
			CreatedBy:      id.RoleID,
		}

		event := grantEvent(id, grant)
		if err := grantsStore.CreateGrant(grant); err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		event.Success = true
		audit.Log(event)

		respondWithJSON(w, http.StatusCreated, grant)
	}
}

func missingResources(ids []string, rows []model.Resource) []string {
	found := make(map[string]bool, len(rows))
	for _, row := range rows {
		found[row.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func grantEvent(id *identity.Identity, grant *model.Grant) audit.GrantEvent {
	return audit.GrantEvent{
		UserID:       id.RoleID,
		ClientIP:     id.ClientIP(),
		Organization: grant.OrganizationID,
		GrantID:      grant.ID,
		GranteeID:    grant.GranteeID,
		GranteeKind:  grant.GranteeKind,
		ResourceType: grant.ResourceType,
		Permissions:  grant.Permissions,
		Resources:    grant.ResourceIDs,
		Inherit:      grant.Inherit,
	}
}

func handleListGrants(grantsStore store.GrantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		org := vars["org"]
		if _, ok := requireOrganization(w, r, org); !ok {
			return
		}

		grants, err := grantsStore.ListGrants(org, vars["grantee"])
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if grants == nil {
			grants = []model.Grant{}
		}

		respondWithJSON(w, http.StatusOK, grants)
	}
}

func handleDeleteGrant(grantsStore store.GrantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		org := vars["org"]
		id, ok := requireOrganization(w, r, org)
		if !ok {
			return
		}

		grantID, err := uuid.Parse(vars["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid grant id: "+vars["id"])
			return
		}

		event := audit.RevokeEvent{
			UserID:       id.RoleID,
			ClientIP:     id.ClientIP(),
			Organization: org,
			GrantID:      grantID.String(),
		}

		if err := grantsStore.DeleteGrant(org, grantID.String()); err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			if errors.Is(err, store.ErrGrantNotFound) {
				respondWithError(w, http.StatusNotFound, "grant not found: "+grantID.String())
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		event.Success = true
		audit.Log(event)

		w.WriteHeader(http.StatusNoContent)
	}
}

