package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Address())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, SourceFile, cfg.Data.Source)
	assert.Equal(t, "q-vercel-python.json", cfg.Data.Path)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.False(t, cfg.DB.Migrate)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, []string{"GET"}, cfg.CORS.AllowMethods)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowHeaders)
	assert.Equal(t, 600, cfg.CORS.MaxAge)
}

func TestLoadFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9090
  mode: debug
data:
  source: postgres
db:
  host: db.internal
  name: school
  migrate: true
cors:
  allow_origins: ["https://example.com"]
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, SourcePostgres, cfg.Data.Source)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "school", cfg.DB.Name)
	assert.Equal(t, "postgres", cfg.DB.User)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, []string{"GET"}, cfg.CORS.AllowMethods)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("MARKS_SERVER_PORT", "9100")
	t.Setenv("MARKS_DATA_PATH", "/srv/marks.json")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "/srv/marks.json", cfg.Data.Path)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedError string
	}{
		{
			name:          "PortOutOfRange",
			content:       "server:\n  port: 70000\n",
			expectedError: "invalid server port: 70000",
		},
		{
			name:          "UnknownMode",
			content:       "server:\n  mode: turbo\n",
			expectedError: `unknown server mode: "turbo"`,
		},
		{
			name:          "UnknownSource",
			content:       "data:\n  source: redis\n",
			expectedError: `unknown data source: "redis"`,
		},
		{
			name:          "EmptyPath",
			content:       "data:\n  path: \"\"\n",
			expectedError: "data.path is required when data.source is file",
		},
		{
			name:          "NoCORSOrigins",
			content:       "cors:\n  allow_origins: []\n",
			expectedError: "cors.allow_origins must not be empty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.content))
			assert.Nil(t, cfg)
			assert.EqualError(t, err, tc.expectedError)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server: [unterminated\n"))
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to read config")
}
