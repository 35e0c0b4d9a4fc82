package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/autorent/pkg/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSampleConfig(t *testing.T) {
	c, err := config.Load(
		"../../../configs/sample-config.yaml",
		filepath.Join(t.TempDir(), "missing.env"),
	)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Address)
	require.NotNil(t, c.Usecases.Catalog.GridPageSize)
	assert.Equal(t, 6, *c.Usecases.Catalog.GridPageSize)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(
		cfgPath, []byte("versions:\n  config: 1.0.0\n"), 0o600,
	))
	require.NoError(t, os.WriteFile(
		envPath, []byte("ARWEB_LOG_FORMAT=json\n"), 0o600,
	))
	t.Cleanup(func() { os.Unsetenv("ARWEB_LOG_FORMAT") })
	c, err := config.Load(cfgPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoadRejectsOtherMajorVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(
		path, []byte("versions:\n  config: 2.0.0\n"), 0o600,
	))
	_, err := config.Load(path, filepath.Join(t.TempDir(), "none.env"))
	assert.ErrorContains(t, err, "incompatible major version: 2")
}
