package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	type testConfig struct {
		Name     string `json:"name"`
		Interval uint64 `json:"interval"`
	}

	testDir, err := os.MkdirTemp("", "load-config")
	require.NoError(t, err)

	defer os.RemoveAll(testDir)

	filePath := filepath.Join(testDir, "relayer_config.json")

	require.NoError(t, os.WriteFile(filePath, []byte(`{"name": "relayer", "interval": 5000}`), 0600))

	config, err := LoadConfig[testConfig](filePath, "relayer")
	require.NoError(t, err)
	require.Equal(t, "relayer", config.Name)
	require.Equal(t, uint64(5000), config.Interval)

	_, err = LoadConfig[testConfig](filepath.Join(testDir, "missing.json"), "")
	require.ErrorContains(t, err, "failed to open")

	require.NoError(t, os.WriteFile(filePath, []byte(`{"name": `), 0600))

	_, err = LoadJSON[testConfig](filePath)
	require.ErrorContains(t, err, "failed to decode")
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	testDir, err := os.MkdirTemp("", "create-dir")
	require.NoError(t, err)

	defer os.RemoveAll(testDir)

	dirPath := filepath.Join(testDir, "a", "b")

	require.NoError(t, CreateDirectoryIfNotExists(dirPath, 0770))
	require.DirExists(t, dirPath)
	require.NoError(t, CreateDirectoryIfNotExists(dirPath, 0770))
}
