package clirelayerkey

import (
	"path/filepath"
	"testing"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRelayerKey(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "secrets")

	imported, err := ethtxhelper.GenerateNewEthTxWallet()
	require.NoError(t, err)

	t.Run("validation", func(t *testing.T) {
		require.ErrorContains(t, (&createRelayerKeyParams{}).validateFlags(), "specify at least one of")
		require.ErrorContains(t, (&createRelayerKeyParams{
			relayerDataDir: dataDir,
			privateKey:     "xyz",
		}).validateFlags(), "invalid --private-key")
	})

	t.Run("import", func(t *testing.T) {
		params := &createRelayerKeyParams{
			relayerDataDir: dataDir,
			privateKey:     imported.GetPrivateKeyHex(),
		}
		require.NoError(t, params.validateFlags())

		result, err := params.Execute(nil)
		require.NoError(t, err)

		cmdResult, ok := result.(*CmdResult)
		require.True(t, ok)
		assert.Equal(t, imported.GetAddressHex(), cmdResult.Address)
		assert.Empty(t, cmdResult.PrivateKey)
		assert.Contains(t, cmdResult.GetOutput(), imported.GetAddressHex())
	})

	t.Run("existing key is kept", func(t *testing.T) {
		result, err := (&createRelayerKeyParams{relayerDataDir: dataDir, showPrivateKey: true}).Execute(nil)
		require.NoError(t, err)

		cmdResult, _ := result.(*CmdResult)
		assert.Equal(t, imported.GetAddressHex(), cmdResult.Address)
		assert.Equal(t, imported.GetPrivateKeyHex(), cmdResult.PrivateKey)
	})

	t.Run("force regenerate", func(t *testing.T) {
		result, err := (&createRelayerKeyParams{relayerDataDir: dataDir, forceRegenerate: true}).Execute(nil)
		require.NoError(t, err)

		cmdResult, _ := result.(*CmdResult)
		assert.NotEqual(t, imported.GetAddressHex(), cmdResult.Address)

		secretsManager, err := common.GetSecretsManager(dataDir, "")
		require.NoError(t, err)

		stored, err := eth.GetRelayerEVMPrivateKey(secretsManager)
		require.NoError(t, err)
		assert.Equal(t, cmdResult.Address, stored.GetAddressHex())
	})
}
