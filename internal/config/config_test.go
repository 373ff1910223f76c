package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"REDDIT_CLIENT_ID",
	"REDDIT_CLIENT_SECRET",
	"PORT",
	"REDDIT_USER_AGENT",
	"UPSTREAM_TIMEOUT",
}

// isolateConfigEnv saves and unsets all config env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("REDDIT_CLIENT_ID", "client-id")
	t.Setenv("REDDIT_CLIENT_SECRET", "client-secret")
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	setCredentials(t)
	t.Setenv("PORT", "8080")
	t.Setenv("REDDIT_USER_AGENT", "test-agent/2.0")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "client-id", cfg.Credentials.ClientID)
	assert.Equal(t, "client-secret", cfg.Credentials.ClientSecret)
	assert.Equal(t, uint16(8080), cfg.Port)
	assert.Equal(t, "test-agent/2.0", cfg.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	setCredentials(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, uint16(3000), cfg.Port)
	assert.Equal(t, "hotmeme/1.0 (by hotmeme)", cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.ListenAddr())
}

func TestLoad_MissingClientID(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("REDDIT_CLIENT_SECRET", "client-secret")

	cfg, err := Load()

	assert.Nil(t, cfg)
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "REDDIT_CLIENT_ID", cfgErr.Key)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestLoad_MissingClientSecret(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("REDDIT_CLIENT_ID", "client-id")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDDIT_CLIENT_SECRET")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestLoad_EmptyClientIDIsMissing(t *testing.T) {
	isolateConfigEnv(t)
	setCredentials(t)
	t.Setenv("REDDIT_CLIENT_ID", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissing)
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "not a number", port: "http"},
		{name: "negative", port: "-1"},
		{name: "too large", port: "65536"},
		{name: "empty", port: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			setCredentials(t)
			t.Setenv("PORT", tt.port)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PORT")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MaxPort(t *testing.T) {
	isolateConfigEnv(t)
	setCredentials(t)
	t.Setenv("PORT", "65535")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, uint16(65535), cfg.Port)
}

func TestLoad_EmptyUserAgent(t *testing.T) {
	isolateConfigEnv(t)
	setCredentials(t)
	t.Setenv("REDDIT_USER_AGENT", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "REDDIT_USER_AGENT")
}

func TestLoad_InvalidUpstreamTimeout(t *testing.T) {
	for _, v := range []string{"soon", "0s", "-5s"} {
		t.Run(v, func(t *testing.T) {
			isolateConfigEnv(t)
			setCredentials(t)
			t.Setenv("UPSTREAM_TIMEOUT", v)

			cfg, err := Load()

			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))

	assert.NoError(t, err)
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("REDDIT_CLIENT_ID", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REDDIT_CLIENT_ID=from-file\nREDDIT_CLIENT_SECRET=file-secret\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Credentials.ClientID)
	assert.Equal(t, "file-secret", cfg.Credentials.ClientSecret)
}
