package common

import (
	"path/filepath"
	"testing"

	secretsInfra "github.com/Ethernal-Tech/cardano-infrastructure/secrets"
	"github.com/stretchr/testify/require"
)

func TestGetSecretsManager(t *testing.T) {
	t.Run("no location", func(t *testing.T) {
		_, err := GetSecretsManager("", "")
		require.ErrorIs(t, err, ErrSecretsLocationMissing)
	})

	t.Run("local data dir", func(t *testing.T) {
		secretsManager, err := GetSecretsManager(t.TempDir(), "")
		require.NoError(t, err)

		keyName := secretsInfra.CardanoKeyLocalPrefix + "test_key"

		require.NoError(t, secretsManager.SetSecret(keyName, []byte("value")))

		value, err := secretsManager.GetSecret(keyName)
		require.NoError(t, err)
		require.Equal(t, []byte("value"), value)
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := GetSecretsManager("", filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorContains(t, err, "invalid secrets configuration")
	})
}
