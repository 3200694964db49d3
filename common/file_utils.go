package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func CreateDirectoryIfNotExists(dirPath string, perm os.FileMode) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, perm)
	}

	return nil
}

func LoadJSON[TReturn any](path string) (*TReturn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v. error: %w", path, err)
	}

	defer f.Close()

	var value TReturn

	if err := json.NewDecoder(f).Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode %v. error: %w", path, err)
	}

	return &value, nil
}

// LoadConfig loads config from defined path or from the executable directory.
// Default file name is (prefix)_config.json
func LoadConfig[TReturn any](configPath string, configPrefix string) (*TReturn, error) {
	if configPath == "" {
		ex, err := os.Executable()
		if err != nil {
			return nil, err
		}

		fileName := "config.json"
		if strings.TrimSpace(configPrefix) != "" {
			fileName = strings.Join([]string{configPrefix, fileName}, "_")
		}

		configPath = filepath.Join(filepath.Dir(ex), fileName)
	}

	return LoadJSON[TReturn](configPath)
}
