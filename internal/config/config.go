// Package config provides configuration loading and management for the descriptor registry.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/descriptor-registry-server/internal/telemetry"
)

const (
	// EnvPrefix is the prefix of every environment variable read by the registry
	EnvPrefix = "DESCRIPTOR_REGISTRY"

	// PasswordEnvVar holds the database password when no password file is configured
	PasswordEnvVar = EnvPrefix + "_DATABASE_PASSWORD"
)

const (
	// StorageTypeMemory keeps descriptors in process memory
	StorageTypeMemory = "memory"

	// StorageTypeDatabase keeps descriptors in PostgreSQL
	StorageTypeDatabase = "database"
)

const (
	// IdentifierEncodingBase64URL expects base64url-encoded identifiers in request paths
	IdentifierEncodingBase64URL = "base64url"

	// IdentifierEncodingPlain takes identifiers in request paths as they are
	IdentifierEncodingPlain = "plain"
)

var sslModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) && !filepath.IsLocal(realPath) {
			return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// RegistryName identifies this registry instance in logs and telemetry
	RegistryName string `yaml:"registryName,omitempty"`

	// IdentifierEncoding is the transport encoding of identifiers in request paths.
	// Defaults to base64url.
	IdentifierEncoding string `yaml:"identifierEncoding,omitempty"`

	// Database selects the durable store. Mutually exclusive with Memory.
	Database *DatabaseConfig `yaml:"database,omitempty"`

	// Memory configures the volatile store, used when no database is configured
	Memory *MemoryConfig `yaml:"memory,omitempty"`

	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// MemoryConfig defines the volatile store configuration
type MemoryConfig struct {
	// SeedFile is an optional YAML or JSON document with the descriptors the
	// store starts with
	SeedFile string `yaml:"seedFile,omitempty"`
}

// DatabaseConfig defines the PostgreSQL connection configuration
type DatabaseConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the password.
	// When unset, the password is read from DESCRIPTOR_REGISTRY_DATABASE_PASSWORD.
	PasswordFile string `yaml:"passwordFile,omitempty"`

	Database string `yaml:"database"`

	// SSLMode defaults to "require"
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxOpenConns bounds the pool size
	MaxOpenConns int32 `yaml:"maxOpenConns,omitempty"`

	// MaxIdleConns is the number of connections the pool keeps open when idle
	MaxIdleConns int32 `yaml:"maxIdleConns,omitempty"`

	// ConnMaxLifetime is a Go duration string such as "30m"
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from the DESCRIPTOR_REGISTRY_DATABASE_PASSWORD environment variable
//
// The password from file will have leading/trailing whitespace trimmed.
func (d *DatabaseConfig) GetPassword() (string, error) {
	if d.PasswordFile != "" {
		data, err := os.ReadFile(filepath.Clean(d.PasswordFile))
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", d.PasswordFile, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if envPassword := os.Getenv(PasswordEnvVar); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf("no database password configured: set passwordFile or %s environment variable", PasswordEnvVar)
}

// GetSSLMode returns the SSL mode, using "require" if not specified
func (d *DatabaseConfig) GetSSLMode() string {
	if d.SSLMode == "" {
		return "require"
	}
	return d.SSLMode
}

// GetConnMaxLifetime returns the parsed connection lifetime, or zero when unset
func (d *DatabaseConfig) GetConnMaxLifetime() (time.Duration, error) {
	if d.ConnMaxLifetime == "" {
		return 0, nil
	}
	lifetime, err := time.ParseDuration(d.ConnMaxLifetime)
	if err != nil {
		return 0, fmt.Errorf("invalid connMaxLifetime: %w", err)
	}
	return lifetime, nil
}

// GetConnectionString builds a PostgreSQL connection URL. The password is escaped
// so that special characters survive.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: url.Values{"sslmode": []string{d.GetSSLMode()}}.Encode(),
	}
	return u.String(), nil
}

// String describes the target database without the password
func (d *DatabaseConfig) String() string {
	return fmt.Sprintf("%s@%s:%d/%s", d.User, d.Host, d.Port, d.Database)
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetRegistryName returns the registry name, using "default" if not specified
func (c *Config) GetRegistryName() string {
	if c.RegistryName == "" {
		return "default"
	}
	return c.RegistryName
}

// GetIdentifierEncoding returns the identifier encoding, using base64url if not specified
func (c *Config) GetIdentifierEncoding() string {
	if c.IdentifierEncoding == "" {
		return IdentifierEncodingBase64URL
	}
	return c.IdentifierEncoding
}

// GetStorageType returns StorageTypeDatabase when a database is configured and
// StorageTypeMemory otherwise
func (c *Config) GetStorageType() string {
	if c.Database != nil {
		return StorageTypeDatabase
	}
	return StorageTypeMemory
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var errs []error

	switch c.IdentifierEncoding {
	case "", IdentifierEncodingBase64URL, IdentifierEncodingPlain:
	default:
		errs = append(errs, fmt.Errorf("identifierEncoding: unsupported value %q (supported: %s, %s)",
			c.IdentifierEncoding, IdentifierEncodingBase64URL, IdentifierEncodingPlain))
	}

	if c.Database != nil && c.Memory != nil {
		errs = append(errs, fmt.Errorf("database and memory storage are mutually exclusive"))
	}

	if c.Database != nil {
		if err := c.Database.validate(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	if err := c.Telemetry.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("telemetry: %w", err))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Host == "" {
		errs = append(errs, fmt.Errorf("host is required"))
	}
	if d.Port <= 0 || d.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, fmt.Errorf("user is required"))
	}
	if d.Database == "" {
		errs = append(errs, fmt.Errorf("database name is required"))
	}
	if d.SSLMode != "" && !slices.Contains(sslModes, d.SSLMode) {
		errs = append(errs, fmt.Errorf("unsupported sslMode %q", d.SSLMode))
	}
	if d.MaxOpenConns < 0 || d.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("connection limits must not be negative"))
	}
	if d.MaxOpenConns > 0 && d.MaxIdleConns > d.MaxOpenConns {
		errs = append(errs, fmt.Errorf("maxIdleConns (%d) exceeds maxOpenConns (%d)", d.MaxIdleConns, d.MaxOpenConns))
	}
	if _, err := d.GetConnMaxLifetime(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
