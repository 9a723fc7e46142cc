package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/drive-console/pkg/audit"
	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/expansion"
	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/resource"
	"github.com/doodlesbykumbi/drive-console/pkg/selection"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
	"github.com/doodlesbykumbi/drive-console/pkg/tree"
)

// TreeResponse is an organization's forest
type TreeResponse struct {
	Organization string        `json:"organization,omitempty"`
	Trashed      bool          `json:"trashed,omitempty"`
	Count        int           `json:"count"`
	Tree         tree.Forest   `json:"tree"`
	Expanded     expansion.Map `json:"expanded,omitempty"`
}

// SelectionRequest toggles one node against the caller's current selection
type SelectionRequest struct {
	Selection selection.Set `json:"selection"`
	Node      string        `json:"node"`
	Checked   bool          `json:"checked"`
}

// SelectionResponse carries the new selection, the display state of every
// node, and the folders that should be opened to show it
type SelectionResponse struct {
	Selection selection.Set                 `json:"selection"`
	States    map[string]selection.TriState `json:"states"`
	Expand    expansion.Map                 `json:"expand"`
}

func RegisterResourcesEndpoints(s *server.Server) {
	resourcesStore := s.ResourcesStore
	cfg := s.Config

	resourcesRouter := s.Router.PathPrefix("/resources").Subrouter()
	resourcesRouter.Use(s.JWTMiddleware.Middleware)

	// GET /resources/{org}/tree[?trash=true][&expand=all]
	resourcesRouter.HandleFunc("/{org}/tree", handleResourceTree(resourcesStore, cfg)).Methods("GET")

	// POST /resources/{org}/selection
	resourcesRouter.HandleFunc("/{org}/selection", handleSelection(resourcesStore, cfg)).Methods("POST")

	// POST /resources/{org}/{id}/restore
	resourcesRouter.HandleFunc("/{org}/{id}/restore", handleRestoreResource(resourcesStore, cfg)).Methods("POST")
}

// errListingTooLarge is returned when an organization holds more resources
// than api_resource_list_limit_max. No forest is built from a partial
// listing.
var errListingTooLarge = errors.New("resource listing exceeds api_resource_list_limit_max")

// loadForest reads the organization's listing and builds its forest. One
// row past the limit is requested to tell a full listing from a cut one.
func loadForest(resourcesStore store.ResourcesStore, cfg *config.DriveConfig, org string, trashed bool) (tree.Forest, error) {
	limit := cfg.APIResourceListLimitMax
	query := limit
	if limit > 0 {
		query = limit + 1
	}

	rows, err := resourcesStore.ListResources(org, trashed, query)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		return nil, fmt.Errorf("%w (%d)", errListingTooLarge, limit)
	}
	return tree.FromRecords(recordsOf(rows)), nil
}

// respondWithLoadError maps a loadForest failure to a response.
func respondWithLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, errListingTooLarge) {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, err.Error())
}

func recordsOf(rows []model.Resource) []resource.Record {
	records := make([]resource.Record, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].Record())
	}
	return records
}

func treeResponse(org string, trashed bool, forest tree.Forest) TreeResponse {
	if forest == nil {
		forest = tree.Forest{}
	}
	return TreeResponse{
		Organization: org,
		Trashed:      trashed,
		Count:        forest.Len(),
		Tree:         forest,
	}
}

func handleResourceTree(resourcesStore store.ResourcesStore, cfg *config.DriveConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		org := mux.Vars(r)["org"]
		if _, ok := requireOrganization(w, r, org); !ok {
			return
		}

		trashed := r.URL.Query().Get("trash") == "true"
		if trashed && !cfg.TrashEnabled {
			respondWithError(w, http.StatusNotFound, "trash is disabled")
			return
		}

		forest, err := loadForest(resourcesStore, cfg, org, trashed)
		if err != nil {
			respondWithLoadError(w, err)
			return
		}

		resp := treeResponse(org, trashed, forest)
		if r.URL.Query().Get("expand") == "all" {
			resp.Expanded = expansion.ExpandAll(forest)
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func handleSelection(resourcesStore store.ResourcesStore, cfg *config.DriveConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		org := mux.Vars(r)["org"]
		if _, ok := requireOrganization(w, r, org); !ok {
			return
		}

		var req SelectionRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Node == "" {
			respondWithError(w, http.StatusBadRequest, "node is required")
			return
		}

		forest, err := loadForest(resourcesStore, cfg, org, false)
		if err != nil {
			respondWithLoadError(w, err)
			return
		}

		index := forest.Index()
		node, ok := index[req.Node]
		if !ok {
			respondWithError(w, http.StatusNotFound, "resource not found: "+req.Node)
			return
		}

		sel := selection.Toggle(node, req.Checked, selection.Prune(req.Selection, index))

		respondWithJSON(w, http.StatusOK, SelectionResponse{
			Selection: sel,
			States:    selection.States(forest, sel),
			Expand:    selection.AutoExpandAncestors(sel, index),
		})
	}
}

func handleRestoreResource(resourcesStore store.ResourcesStore, cfg *config.DriveConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		org := vars["org"]
		resourceID, err := url.PathUnescape(vars["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		id, ok := requireOrganization(w, r, org)
		if !ok {
			return
		}

		if !cfg.TrashEnabled {
			respondWithError(w, http.StatusNotFound, "trash is disabled")
			return
		}

		event := audit.RestoreEvent{
			UserID:       id.RoleID,
			ClientIP:     id.ClientIP(),
			Organization: org,
			ResourceID:   resourceID,
		}

		if err := resourcesStore.RestoreResource(org, resourceID); err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			if errors.Is(err, store.ErrResourceNotFound) {
				respondWithError(w, http.StatusNotFound, "trashed resource not found: "+resourceID)
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		event.Success = true
		audit.Log(event)

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"id":       resourceID,
			"restored": true,
		})
	}
}
