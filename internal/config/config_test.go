package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shipped config file carries ${VAR} placeholders for secrets; Load must
// never let one of them through as a live credential.
const placeholderYAML = `
server:
  port: 8000
database:
  password: "${DB_PASSWORD}"
jwt:
  secret: "${JWT_SECRET}"
pairing:
  password: "${PAIR_PASSWORD}"
`

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func writeConfigFile(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(yaml), 0o644))
	chdir(t, dir)
}

func TestLoadUnresolvedPlaceholdersFallBack(t *testing.T) {
	writeConfigFile(t, placeholderYAML)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PAIR_PASSWORD", "")
	t.Setenv("DB_PASSWORD", "")

	cfg := Load()

	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "IMC-MOBILE", cfg.Pairing.Password)
	assert.Equal(t, "", cfg.Database.Password)
}

func TestLoadEnvironmentFillsPlaceholders(t *testing.T) {
	writeConfigFile(t, placeholderYAML)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PAIR_PASSWORD", "shop-floor")
	t.Setenv("DB_PASSWORD", "pg-pass")

	cfg := Load()

	assert.Equal(t, "shop-floor", cfg.Pairing.Password)
	assert.Equal(t, "pg-pass", cfg.Database.Password)
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PAIR_PASSWORD", "")

	cfg := Load()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "sync-backend", cfg.JWT.Issuer)
	assert.Equal(t, "IMC-MOBILE", cfg.Pairing.Password)
}
