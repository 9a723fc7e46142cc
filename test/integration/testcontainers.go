//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	migrations "github.com/doodlesbykumbi/drive-console/db"
	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/db"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/server/endpoints"
	"github.com/doodlesbykumbi/drive-console/pkg/server/middleware"
)

const (
	testIssuer = "drive-console"
	testOrg    = "acme"
)

var testSecret = []byte("integration-test-secret-0123456789")

// TestContext holds the database container and an in-process server
// connected to it.
type TestContext struct {
	DB          *gorm.DB
	Container   testcontainers.Container
	DatabaseURL string
	Server      *server.Server
	HTTP        *httptest.Server
}

// NewTestContext starts PostgreSQL, applies the embedded migrations and
// serves the API from an httptest server.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("drive_test"),
		tcpostgres.WithUsername("drive"),
		tcpostgres.WithPassword("drive"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err := applyMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	database, err := db.Connect(db.Config{URL: connStr})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	cfg := &config.DriveConfig{
		APIResourceListLimitMax: 10000,
		TokenIssuer:             testIssuer,
		TokenTTL:                480,
		TrashEnabled:            true,
	}
	s := server.NewServer(database, cfg, middleware.NewJWTAuthenticator(testSecret, testIssuer), "127.0.0.1", "0")
	endpoints.RegisterAll(s)

	return &TestContext{
		DB:          database,
		Container:   pgContainer,
		DatabaseURL: connStr,
		Server:      s,
		HTTP:        httptest.NewServer(s.Handler()),
	}, nil
}

func applyMigrations(databaseURL string) error {
	m, err := migrations.NewMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Token issues a bearer token for login in the test organization.
func (tc *TestContext) Token(login string) (string, error) {
	return middleware.IssueToken(testSecret, testIssuer, login, testOrg, time.Hour)
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.HTTP != nil {
		tc.HTTP.Close()
	}
	if sqlDB, err := tc.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
