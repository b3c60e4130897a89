package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const minimalYAML = `
bridge:
  program_id: "0x0a"
messaging:
  program_id: "0x0b"
auth:
  jwt_secret: "0123456789abcdef0123"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, StorageMemory, cfg.Storage.Driver)
	require.Equal(t, "canonical", cfg.Bridge.Mode)
	require.Equal(t, uint64(1), cfg.Bridge.HomeChainID)
	require.Equal(t, "accept", cfg.Bridge.DustPolicy)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Nil(t, cfg.Bridge.WrappedToken)
}

func TestParse_WrappedToken(t *testing.T) {
	doc := `
storage:
  driver: postgres
database:
  host: db
bridge:
  mode: wrapped
  program_id: "0x0a"
  wrapped_token:
    address: "0x11"
    authority: "0x12"
messaging:
  program_id: "0x0b"
auth:
  jwt_secret: "0123456789abcdef0123"
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, cfg.Bridge.WrappedToken)
	require.Equal(t, uint8(9), cfg.Bridge.WrappedToken.Decimals)
	require.Equal(t, StoragePostgres, cfg.Storage.Driver)
	require.Equal(t, "db", cfg.Database.Host)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing program id", "messaging:\n  program_id: \"0x0b\"\nauth:\n  jwt_secret: \"0123456789abcdef0123\"\n"},
		{"short secret", "bridge:\n  program_id: \"0x0a\"\nmessaging:\n  program_id: \"0x0b\"\nauth:\n  jwt_secret: short\n"},
		{"bad storage driver", minimalYAML + "storage:\n  driver: redis\n"},
		{"bad mode", "bridge:\n  mode: hybrid\n  program_id: \"0x0a\"\nmessaging:\n  program_id: \"0x0b\"\nauth:\n  jwt_secret: \"0123456789abcdef0123\"\n"},
		{"bad dust policy", "bridge:\n  dust_policy: keep\n  program_id: \"0x0a\"\nmessaging:\n  program_id: \"0x0b\"\nauth:\n  jwt_secret: \"0123456789abcdef0123\"\n"},
		{"malformed yaml", "bridge: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Fatalf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestParse_WrappedTokenRequiresWrappedMode(t *testing.T) {
	doc := `
bridge:
  mode: canonical
  program_id: "0x0a"
  wrapped_token:
    address: "0x11"
    authority: "0x12"
messaging:
  program_id: "0x0b"
auth:
  jwt_secret: "0123456789abcdef0123"
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvJWTSecret, "an-env-secret-of-enough-length")

	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Database.Password)
	require.Equal(t, "an-env-secret-of-enough-length", cfg.Auth.JWTSecret)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0x0a", cfg.Bridge.ProgramID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
