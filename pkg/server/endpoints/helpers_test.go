package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/drive-console/pkg/audit"
	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/model"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/server/middleware"
)

const (
	testOrg    = "acme"
	testIssuer = "drive-console"
)

var testSecret = []byte("endpoint-test-secret-0123456789ab")

type testEnv struct {
	server    *server.Server
	resources *MockResourcesStore
	grants    *MockGrantsStore
	health    *MockHealthStore
	auditLog  *bytes.Buffer
	token     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.DriveConfig{
		APIResourceListLimitMax: 10000,
		TokenIssuer:             testIssuer,
		TokenTTL:                480,
		AuditEnabled:            true,
		TrashEnabled:            true,
	}
	jwt := middleware.NewJWTAuthenticator(testSecret, testIssuer)
	s := server.NewServer(nil, cfg, jwt, "127.0.0.1", "0")

	env := &testEnv{
		server:    s,
		resources: &MockResourcesStore{},
		grants:    &MockGrantsStore{},
		health:    &MockHealthStore{},
		auditLog:  &bytes.Buffer{},
	}
	s.ResourcesStore = env.resources
	s.GrantsStore = env.grants
	s.HealthStore = env.health

	audit.SetEnabled(true)
	audit.DefaultLogger.SetWriter(env.auditLog)

	RegisterAll(s)

	token, err := middleware.IssueToken(testSecret, testIssuer, "alice", testOrg, time.Minute)
	require.NoError(t, err)
	env.token = token

	return env
}

// do sends a request with the test token; body may be a string or a value
// to encode as JSON.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+e.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	e.server.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func ptr(s string) *string { return &s }

func folderRow(id, name, parent string) model.Resource {
	row := model.Resource{ID: id, OrganizationID: testOrg, Name: ptr(name), Type: ptr("folder")}
	if parent != "" {
		row.ParentID = ptr(parent)
	}
	return row
}

func fileRow(id, name, parent string) model.Resource {
	row := model.Resource{ID: id, OrganizationID: testOrg, FileName: ptr(name), MimeType: ptr("text/plain")}
	if parent != "" {
		row.ParentID = ptr(parent)
	}
	return row
}

// sampleRows is Docs/{Reports/{q1.pdf}, notes.txt} plus a root file.
func sampleRows() []model.Resource {
	return []model.Resource{
		folderRow("d1", "Docs", ""),
		folderRow("d2", "Reports", "d1"),
		fileRow("f1", "q1.pdf", "d2"),
		fileRow("f2", "notes.txt", "d1"),
		fileRow("f3", "readme.md", ""),
	}
}
