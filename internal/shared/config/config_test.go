package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# service configuration
database:
  host: ${TEST_DB_HOST:-localhost}
  port: 5432
  user: postgres
  password: ${TEST_DB_PASSWORD:-postgres}
  database: agriconnect

rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest

server:
  port: ${TEST_PORT:-3000}

ai:
  endpoint: ${TEST_AI_ENDPOINT:-https://generativelanguage.googleapis.com}
  api_key: ${TEST_AI_KEY:-}
  model: gemini-2.0-flash

geocode:
  endpoint: https://nominatim.openstreetmap.org
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeSample(t))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "agriconnect", cfg.Database.Database)
	assert.Equal(t, "guest", cfg.RabbitMQ.User)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.AI.Endpoint)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocode.Endpoint)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_AI_KEY", "secret")

	cfg, err := LoadConfig(writeSample(t))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.AI.APIKey)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
