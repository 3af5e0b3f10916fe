package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutDotenv(t *testing.T) {
	t.Helper()
	orig := dotenvFiles
	dotenvFiles = nil
	t.Cleanup(func() { dotenvFiles = orig })
}

func Test_parseEnv_OverlaysPrefixedVars(t *testing.T) {
	withoutDotenv(t)
	t.Setenv("WH_API_BASE", "http://env:8000")
	t.Setenv("WH_REQUEST_TIMEOUT", "7s")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://env:8000", cfg.APIBase)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "portal.db", cfg.DBPath, "unset variables keep defaults")
}

func Test_parseEnv_BadDuration(t *testing.T) {
	withoutDotenv(t)
	t.Setenv("WH_LOGOUT_TIMEOUT", "later")

	cfg := &Config{}
	require.Error(t, parseEnv(cfg))
}

func Test_parseEnv_LoadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WH_LOG_LEVEL=debug\n"), 0o600))

	orig := dotenvFiles
	dotenvFiles = []string{path}
	t.Cleanup(func() {
		dotenvFiles = orig
		_ = os.Unsetenv("WH_LOG_LEVEL")
	})

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_parseEnv_MissingDotenvIsIgnored(t *testing.T) {
	orig := dotenvFiles
	dotenvFiles = []string{filepath.Join(t.TempDir(), "absent.env")}
	t.Cleanup(func() { dotenvFiles = orig })

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))
}
