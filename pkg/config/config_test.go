package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0o600))
	t.Setenv("DRIVE_CONFIG_PATH", dir)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DRIVE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.APIResourceListLimitMax)
	assert.True(t, cfg.AuditEnabled)
	assert.True(t, cfg.TrashEnabled)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnvironment(t *testing.T) {
	writeConfig(t, `
allowed_origins: [https://console.example.com]
token_ttl: 60
audit_enabled: false
extra_permissions: [ARCHIVE]
`)
	t.Setenv("DRIVE_TOKEN_TTL", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://console.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "file", cfg.Source("allowed_origins"))
	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "file", cfg.Source("audit_enabled"))
	assert.Equal(t, 120, cfg.TokenTTL)
	assert.Equal(t, "environment", cfg.Source("token_ttl"))
	assert.Equal(t, "default", cfg.Source("trash_enabled"))

	catalog := cfg.Catalog()
	assert.Equal(t, "FULL_ACCESS", catalog[0])
	assert.Equal(t, "ARCHIVE", catalog[len(catalog)-1])
}

func TestLoadBadFile(t *testing.T) {
	writeConfig(t, "token_ttl: [not a number")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DriveConfig)
		wantErr string
	}{
		{"wildcard origin", func(c *DriveConfig) { c.AllowedOrigins = []string{"*"} }, ""},
		{"bad origin", func(c *DriveConfig) { c.AllowedOrigins = []string{"console.example.com"} }, "allowed_origins"},
		{"zero limit", func(c *DriveConfig) { c.APIResourceListLimitMax = 0 }, "api_resource_list_limit_max"},
		{"zero ttl", func(c *DriveConfig) { c.TokenTTL = 0 }, "token_ttl"},
		{"lowercase extra", func(c *DriveConfig) { c.ExtraPermissions = []string{"archive"} }, "extra_permissions"},
		{"built-in extra", func(c *DriveConfig) { c.ExtraPermissions = []string{"READ"} }, "already built in"},
		{"good extra", func(c *DriveConfig) { c.ExtraPermissions = []string{"ARCHIVE_V2"} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIsOriginAllowed(t *testing.T) {
	cfg := newDefault()
	assert.False(t, cfg.IsOriginAllowed("https://a.example.com"))

	cfg.AllowedOrigins = []string{"https://a.example.com"}
	assert.True(t, cfg.IsOriginAllowed("https://A.example.com"))
	assert.False(t, cfg.IsOriginAllowed("https://b.example.com"))

	cfg.AllowedOrigins = []string{"*"}
	assert.True(t, cfg.IsOriginAllowed("https://b.example.com"))
}

func TestFormat(t *testing.T) {
	t.Setenv("DRIVE_CONFIG_PATH", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	assert.Contains(t, text, "allowed_origins")
	assert.Contains(t, text, "(not set)")

	out, err := cfg.FormatJSON()
	require.NoError(t, err)
	var parsed struct {
		ConfigFile string      `json:"config_file"`
		Attributes []Attribute `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, cfg.ConfigFilePath(), parsed.ConfigFile)
	assert.Len(t, parsed.Attributes, len(attributeNames()))
}

func TestCategoriesAndCatalog(t *testing.T) {
	cfg := newDefault()
	assert.Len(t, cfg.Categories(), 5)
	assert.Len(t, cfg.Catalog(), 21)

	cfg.ExtraPermissions = []string{"LEGAL_HOLD"}
	categories := cfg.Categories()
	require.Len(t, categories, 6)
	assert.Equal(t, "Extra", categories[5].Name)
	assert.Equal(t, []string{"LEGAL_HOLD"}, categories[5].Permissions)
	assert.Equal(t, "LEGAL_HOLD", cfg.Catalog()[21])
}
