package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes the variables for the duration of the test. godotenv never
// overrides a variable that is set, even to an empty value.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "FIN_ACCOUNTS_FILE", "FIN_CURRENCY", "FIN_LOG_LEVEL")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.AccountsFile)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FIN_ACCOUNTS_FILE", "/tmp/accounts.json")
	t.Setenv("FIN_CURRENCY", "EUR")
	t.Setenv("FIN_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/accounts.json", cfg.AccountsFile)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	// godotenv does not override variables already set.
	unsetenv(t, "FIN_ACCOUNTS_FILE", "FIN_LOG_LEVEL")
	t.Setenv("FIN_CURRENCY", "GBP")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("FIN_ACCOUNTS_FILE=home.json\nFIN_CURRENCY=JPY\n"), 0o644))

	cfg, err := Load(env)
	require.NoError(t, err)
	assert.Equal(t, "home.json", cfg.AccountsFile)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnreadableDotEnv(t *testing.T) {
	unsetenv(t, "FIN_ACCOUNTS_FILE", "FIN_CURRENCY", "FIN_LOG_LEVEL")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("FIN_CURRENCY=CHF\n"), 0o644))

	// a directory cannot be read as a .env file, the next file is still read.
	cfg, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.env"), env)
	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
}
