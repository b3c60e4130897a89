package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets from the config file.
const (
	EnvDBPassword = "BRIDGE_DB_PASSWORD"
	EnvJWTSecret  = "BRIDGE_JWT_SECRET"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config represents the bridge daemon configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Database   DatabaseConfig   `yaml:"database"`
	Bridge     BridgeConfig     `yaml:"bridge"`
	Messaging  MessagingConfig  `yaml:"messaging"`
	Auth       AuthConfig       `yaml:"auth"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// StorageConfig selects the ledger backend
type StorageConfig struct {
	Driver string `yaml:"driver" default:"memory" validate:"oneof=memory postgres"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user" default:"postgres"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"bridge"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// BridgeConfig contains the transfer engine settings
type BridgeConfig struct {
	// Mode is "wrapped" (lock/release a pre-existing token) or "canonical" (burn/mint).
	Mode        string `yaml:"mode" default:"canonical" validate:"oneof=wrapped canonical"`
	ProgramID   string `yaml:"program_id" validate:"required"`
	HomeChainID uint64 `yaml:"home_chain_id" default:"1" validate:"min=1"`
	DustPolicy  string `yaml:"dust_policy" default:"accept" validate:"oneof=accept reject"`

	// WrappedToken creates the pre-existing token at startup when wrapped
	// mode runs against a fresh ledger.
	WrappedToken *WrappedTokenConfig `yaml:"wrapped_token"`
}

// WrappedTokenConfig describes the home token a wrapped bridge takes custody of
type WrappedTokenConfig struct {
	Address   string `yaml:"address" validate:"required"`
	Authority string `yaml:"authority" validate:"required"`
	Decimals  uint8  `yaml:"decimals" default:"9"`
	MaxSupply uint64 `yaml:"max_supply"`
}

// MessagingConfig contains the messaging core settings
type MessagingConfig struct {
	ProgramID string `yaml:"program_id" validate:"required"`
	Fee       uint64 `yaml:"fee"`
}

// AuthConfig holds caller authentication settings
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" validate:"required,min=16"`
	Issuer    string `yaml:"issuer" default:"cat-bridge"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads configuration from a YAML file, applies defaults and
// environment overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Bridge.WrappedToken != nil {
		if err := defaults.Set(cfg.Bridge.WrappedToken); err != nil {
			return nil, fmt.Errorf("failed to set wrapped token defaults: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		cfg.Auth.JWTSecret = v
	}
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Storage.Driver == StoragePostgres && cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required for the postgres storage driver")
	}
	if cfg.Bridge.WrappedToken != nil && cfg.Bridge.Mode != "wrapped" {
		return fmt.Errorf("bridge.wrapped_token is only valid in wrapped mode")
	}
	return nil
}
