package common

import (
	"errors"
	"fmt"

	secretsInfra "github.com/Ethernal-Tech/cardano-infrastructure/secrets"
	secretsInfraHelper "github.com/Ethernal-Tech/cardano-infrastructure/secrets/helper"
)

var ErrSecretsLocationMissing = errors.New("neither secrets data directory nor secrets config is specified")

// GetSecretsManager opens the secrets manager described by configPath,
// or the local file system one rooted at dataDir when no config is given
func GetSecretsManager(dataDir, configPath string) (secretsInfra.SecretsManager, error) {
	switch {
	case configPath != "":
		secretsConfig, err := secretsInfra.ReadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid secrets configuration: %w", err)
		}

		return secretsInfraHelper.CreateSecretsManager(secretsConfig)
	case dataDir != "":
		return secretsInfraHelper.CreateSecretsManager(&secretsInfra.SecretsManagerConfig{
			Path: dataDir,
			Type: secretsInfra.Local,
		})
	default:
		return nil, ErrSecretsLocationMissing
	}
}
