package endpoints

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/permission"
	"github.com/doodlesbykumbi/drive-console/pkg/server/store"
)

func TestCreateGrantEndpoint(t *testing.T) {
	t.Run("saves a mixed grant", func(t *testing.T) {
		env := newTestEnv(t)
		env.resources.On("LookupResources", testOrg, []string{"d1", "f1"}).
			Return([]model.Resource{folderRow("d1", "Docs", ""), fileRow("f1", "q1.pdf", "d2")}, nil)
		env.grants.On("CreateGrant", mock.MatchedBy(func(g *model.Grant) bool {
			_, err := uuid.Parse(g.ID)
			return err == nil &&
				g.OrganizationID == testOrg &&
				g.GranteeID == "bob" &&
				g.ResourceType == model.ResourceTypeMixed &&
				g.CreatedBy == "acme:user:alice"
		})).Return(nil)

		w := env.do(t, "POST", "/grants/acme", GrantRequest{
			Grantee:     "bob",
			GranteeKind: "user",
			Permissions: []string{"WRITE", "READ"},
			Resources:   []string{"f1", "d1", "f1"},
			Inherit:     true,
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var grant model.Grant
		decode(t, w, &grant)
		assert.Equal(t, pq.StringArray{"READ", "WRITE"}, grant.Permissions)
		assert.Equal(t, pq.StringArray{"d1", "f1"}, grant.ResourceIDs)
		assert.Equal(t, "mixed", grant.ResourceType)
		assert.True(t, grant.Inherit)
		assert.Contains(t, env.auditLog.String(), "acme:user:alice granted READ,WRITE to user bob on 2 mixed resource(s)")
		env.grants.AssertExpectations(t)
	})

	t.Run("every permission implies full access", func(t *testing.T) {
		env := newTestEnv(t)
		var others []string
		for _, name := range permission.DefaultCatalog() {
			if name != "FULL_ACCESS" {
				others = append(others, name)
			}
		}
		env.resources.On("LookupResources", testOrg, []string{"d1"}).
			Return([]model.Resource{folderRow("d1", "Docs", "")}, nil)
		env.grants.On("CreateGrant", mock.MatchedBy(func(g *model.Grant) bool {
			return len(g.Permissions) == len(permission.DefaultCatalog()) &&
				g.Permissions[0] == "FULL_ACCESS" &&
				g.ResourceType == model.ResourceTypeFolder
		})).Return(nil)

		w := env.do(t, "POST", "/grants/acme", GrantRequest{
			Grantee:     "editors",
			GranteeKind: "group",
			Permissions: others,
			Resources:   []string{"d1"},
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		env.grants.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  GrantRequest
			want string
		}{
			{
				name: "no grantee",
				req:  GrantRequest{GranteeKind: "user", Permissions: []string{"READ"}, Resources: []string{"d1"}},
				want: "grantee is required",
			},
			{
				name: "bad kind",
				req:  GrantRequest{Grantee: "bob", GranteeKind: "host", Permissions: []string{"READ"}, Resources: []string{"d1"}},
				want: "granteeKind",
			},
			{
				name: "no permissions",
				req:  GrantRequest{Grantee: "bob", GranteeKind: "user", Resources: []string{"d1"}},
				want: "permission",
			},
			{
				name: "no resources",
				req:  GrantRequest{Grantee: "bob", GranteeKind: "user", Permissions: []string{"READ"}},
				want: "resource",
			},
			{
				name: "unknown permission",
				req:  GrantRequest{Grantee: "bob", GranteeKind: "user", Permissions: []string{"READ", "FLY"}, Resources: []string{"d1"}},
				want: "FLY",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				env := newTestEnv(t)

				w := env.do(t, "POST", "/grants/acme", tt.req)

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
				assert.Contains(t, w.Body.String(), tt.want)
				env.grants.AssertNotCalled(t, "CreateGrant", mock.Anything)
			})
		}
	})

	t.Run("unknown resources", func(t *testing.T) {
		env := newTestEnv(t)
		env.resources.On("LookupResources", testOrg, []string{"d1", "gone"}).
			Return([]model.Resource{folderRow("d1", "Docs", "")}, nil)

		w := env.do(t, "POST", "/grants/acme", GrantRequest{
			Grantee:     "bob",
			GranteeKind: "user",
			Permissions: []string{"READ"},
			Resources:   []string{"gone", "d1"},
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "gone")
		env.grants.AssertNotCalled(t, "CreateGrant", mock.Anything)
	})

	t.Run("store failure is audited", func(t *testing.T) {
		env := newTestEnv(t)
		env.resources.On("LookupResources", testOrg, []string{"f1"}).
			Return([]model.Resource{fileRow("f1", "q1.pdf", "")}, nil)
		env.grants.On("CreateGrant", mock.Anything).Return(errors.New("unique violation"))

		w := env.do(t, "POST", "/grants/acme", GrantRequest{
			Grantee:     "bob",
			GranteeKind: "user",
			Permissions: []string{"READ"},
			Resources:   []string{"f1"},
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, env.auditLog.String(), "tried to grant READ to user bob on 1 file resource(s): unique violation")
	})

	t.Run("other organization", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, "POST", "/grants/globex", GrantRequest{})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListGrantsEndpoint(t *testing.T) {
	t.Run("lists grants", func(t *testing.T) {
		env := newTestEnv(t)
		env.grants.On("ListGrants", testOrg, "bob").Return([]model.Grant{{
			ID:           "5f0c6f0e-8d55-4c55-9b4e-0f1f3f0d2a11",
			GranteeID:    "bob",
			GranteeKind:  "user",
			ResourceType: "file",
			Permissions:  pq.StringArray{"READ"},
			ResourceIDs:  pq.StringArray{"f1"},
		}}, nil)

		w := env.do(t, "GET", "/grants/acme/bob", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var grants []model.Grant
		decode(t, w, &grants)
		require.Len(t, grants, 1)
		assert.Equal(t, pq.StringArray{"READ"}, grants[0].Permissions)
	})

	t.Run("no grants", func(t *testing.T) {
		env := newTestEnv(t)
		env.grants.On("ListGrants", testOrg, "carol").Return(nil, nil)

		w := env.do(t, "GET", "/grants/acme/carol", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestDeleteGrantEndpoint(t *testing.T) {
	const grantID = "5f0c6f0e-8d55-4c55-9b4e-0f1f3f0d2a11"

	t.Run("revokes and audits", func(t *testing.T) {
		env := newTestEnv(t)
		env.grants.On("DeleteGrant", testOrg, grantID).Return(nil)

		w := env.do(t, "DELETE", "/grants/acme/"+grantID, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, env.auditLog.String(), "acme:user:alice revoked grant "+grantID)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.grants.On("DeleteGrant", testOrg, grantID).Return(store.ErrGrantNotFound)

		w := env.do(t, "DELETE", "/grants/acme/"+grantID, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, "DELETE", "/grants/acme/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.grants.AssertNotCalled(t, "DeleteGrant", mock.Anything, mock.Anything)
	})
}
