package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/drive-console/pkg/permission"
)

const (
	DefaultConfigPath = "/etc/drive-console/config"
	ConfigFileName    = "drive.yml"
)

var permissionName = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)

// DriveConfig holds all drive console settings
type DriveConfig struct {
	// AllowedOrigins lists the origins allowed to call the API from a browser
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`

	// APIResourceListLimitMax is the maximum number of resources read for one tree
	APIResourceListLimitMax int `yaml:"api_resource_list_limit_max" json:"api_resource_list_limit_max"`

	// TokenIssuer is the expected iss claim of bearer tokens
	TokenIssuer string `yaml:"token_issuer" json:"token_issuer"`

	// TokenTTL is the lifetime of tokens minted by drivectl, in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// ExtraPermissions are appended to the built-in permission catalog
	ExtraPermissions []string `yaml:"extra_permissions" json:"extra_permissions"`

	// AuditEnabled turns audit logging of grants and restores on or off
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// TrashEnabled exposes trashed resources and the restore operation
	TrashEnabled bool `yaml:"trash_enabled" json:"trash_enabled"`

	// set holds the attributes present in the parsed file
	set map[string]bool

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *DriveConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *DriveConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *DriveConfig {
	return &DriveConfig{
		AllowedOrigins:          []string{},
		APIResourceListLimitMax: 10000,
		TokenIssuer:             "drive-console",
		TokenTTL:                480,
		ExtraPermissions:        []string{},
		AuditEnabled:            true,
		TrashEnabled:            true,
		sources:                 make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*DriveConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("DRIVE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		fileConfig, err := parseFile(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

// parseFile decodes a config document and records which keys it sets, so
// that an explicit false or 0 in the file still counts as a file value.
func parseFile(data []byte) (*DriveConfig, error) {
	var fileConfig DriveConfig
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, err
	}
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	fileConfig.set = make(map[string]bool, len(keys))
	for key := range keys {
		fileConfig.set[key] = true
	}
	return &fileConfig, nil
}

func attributeNames() []string {
	return []string{
		"allowed_origins", "api_resource_list_limit_max",
		"token_issuer", "token_ttl", "extra_permissions",
		"audit_enabled", "trash_enabled",
	}
}

func (c *DriveConfig) applyFileConfig(file *DriveConfig) {
	if file.set["allowed_origins"] {
		c.AllowedOrigins = file.AllowedOrigins
		c.sources["allowed_origins"] = "file"
	}
	if file.set["api_resource_list_limit_max"] {
		c.APIResourceListLimitMax = file.APIResourceListLimitMax
		c.sources["api_resource_list_limit_max"] = "file"
	}
	if file.set["token_issuer"] {
		c.TokenIssuer = file.TokenIssuer
		c.sources["token_issuer"] = "file"
	}
	if file.set["token_ttl"] {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.set["extra_permissions"] {
		c.ExtraPermissions = file.ExtraPermissions
		c.sources["extra_permissions"] = "file"
	}
	if file.set["audit_enabled"] {
		c.AuditEnabled = file.AuditEnabled
		c.sources["audit_enabled"] = "file"
	}
	if file.set["trash_enabled"] {
		c.TrashEnabled = file.TrashEnabled
		c.sources["trash_enabled"] = "file"
	}
}

func (c *DriveConfig) applyEnvConfig() {
	if val := os.Getenv("DRIVE_ALLOWED_ORIGINS"); val != "" {
		c.AllowedOrigins = splitAndTrim(val)
		c.sources["allowed_origins"] = "environment"
	}
	if val := os.Getenv("DRIVE_API_RESOURCE_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIResourceListLimitMax = i
			c.sources["api_resource_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("DRIVE_TOKEN_ISSUER"); val != "" {
		c.TokenIssuer = val
		c.sources["token_issuer"] = "environment"
	}
	if val := os.Getenv("DRIVE_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("DRIVE_EXTRA_PERMISSIONS"); val != "" {
		c.ExtraPermissions = splitAndTrim(val)
		c.sources["extra_permissions"] = "environment"
	}
	if val := os.Getenv("DRIVE_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = "environment"
	}
	if val := os.Getenv("DRIVE_TRASH_ENABLED"); val != "" {
		c.TrashEnabled = val == "true" || val == "1"
		c.sources["trash_enabled"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *DriveConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *DriveConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenLifetime returns the token TTL as a duration
func (c *DriveConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// Catalog returns the built-in permission catalog followed by the
// configured extra permissions.
func (c *DriveConfig) Catalog() []string {
	return permission.Extend(permission.DefaultCatalog(), c.ExtraPermissions...)
}

// Categories returns the built-in permission groups, plus an "Extra" group
// holding the configured extensions when there are any.
func (c *DriveConfig) Categories() []permission.Category {
	categories := permission.Categories()
	if len(c.ExtraPermissions) > 0 {
		categories = append(categories, permission.Category{
			Name:        "Extra",
			Permissions: slices.Clone(c.ExtraPermissions),
		})
	}
	return categories
}

// IsOriginAllowed reports whether a browser origin may call the API
func (c *DriveConfig) IsOriginAllowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *DriveConfig) Validate() error {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid allowed_origins value: %s", origin)
		}
	}

	if c.APIResourceListLimitMax <= 0 {
		return fmt.Errorf("invalid api_resource_list_limit_max value: %d", c.APIResourceListLimitMax)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid token_ttl value: %d", c.TokenTTL)
	}

	for _, name := range c.ExtraPermissions {
		if !permissionName.MatchString(name) {
			return fmt.Errorf("invalid extra_permissions value: %s", name)
		}
		if permission.IsBuiltin(name) {
			return fmt.Errorf("extra permission %s is already built in", name)
		}
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *DriveConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "allowed_origins", Value: strings.Join(c.AllowedOrigins, ","), Source: c.Source("allowed_origins")},
		{Name: "api_resource_list_limit_max", Value: strconv.Itoa(c.APIResourceListLimitMax), Source: c.Source("api_resource_list_limit_max")},
		{Name: "token_issuer", Value: c.TokenIssuer, Source: c.Source("token_issuer")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "extra_permissions", Value: strings.Join(c.ExtraPermissions, ","), Source: c.Source("extra_permissions")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "trash_enabled", Value: strconv.FormatBool(c.TrashEnabled), Source: c.Source("trash_enabled")},
	}
}

// FormatText returns a text representation of the configuration
func (c *DriveConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-32s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-32s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-32s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *DriveConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
