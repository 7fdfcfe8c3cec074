package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ping", cfg.PingMessage)
	assert.Equal(t, "https://localhost:7129/api/v2/", cfg.FormDesign.BaseURL)
	assert.False(t, cfg.FormDesign.VerifyTLS)
	assert.Equal(t, 15*time.Second, cfg.FormDesign.Timeout)
	assert.Equal(t, "v2", cfg.FormDesign.Adapter)
	assert.Equal(t, 300*time.Millisecond, cfg.Mock.TypesDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Mock.DesignsDelay)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("PING_MESSAGE", "pong")
	t.Setenv("FORMDESIGN_API_BASE", "https://formdesign.internal/api/v2")
	t.Setenv("FORMDESIGN_VERIFY_TLS", "true")
	t.Setenv("MOCK_DESIGNS_DELAY", "0s")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "pong", cfg.PingMessage)
	assert.Equal(t, "https://formdesign.internal/api/v2/", cfg.FormDesign.BaseURL)
	assert.True(t, cfg.FormDesign.VerifyTLS)
	assert.Equal(t, time.Duration(0), cfg.Mock.DesignsDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOriginList())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "PORT", "http"},
		{"unknown environment", "ENVIRONMENT", "staging"},
		{"bad base url", "FORMDESIGN_API_BASE", "not a url"},
		{"bad timeout", "FORMDESIGN_TIMEOUT", "soon"},
		{"negative delay", "MOCK_TYPES_DELAY", "-1s"},
		{"bad metrics path", "METRICS_PATH", "metrics"},
		{"no log files kept", "LOG_MAX_FILES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSetupLogFile_Rotation(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{
		"server-2024-01-01T00-00-00.log",
		"server-2024-01-02T00-00-00.log",
		"server-2024-01-03T00-00-00.log",
		"dms-2024-01-01T00-00-00.log",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	f, err := SetupLogFile(dir, "server", 2)
	require.NoError(t, err)
	defer f.Close()

	servers, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	require.NoError(t, err)
	assert.Len(t, servers, 2)
	assert.Contains(t, servers, f.Name())
	assert.NotContains(t, servers, filepath.Join(dir, "server-2024-01-01T00-00-00.log"))

	// Other prefixes are left alone
	assert.FileExists(t, filepath.Join(dir, "dms-2024-01-01T00-00-00.log"))
}
