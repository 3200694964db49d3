package relayer_manager

import (
	"context"
	"encoding/json"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ethernal-Tech/cardano-infrastructure/secrets"
	secretsHelper "github.com/Ethernal-Tech/cardano-infrastructure/secrets/helper"
	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, l1URL, l2URL string) *core.RelayerConfiguration {
	t.Helper()

	config := &core.RelayerConfiguration{
		L1: core.L1Config{
			NodeURL:                     l1URL,
			StateCommitmentChainAddress: "0xdc64a140aa3e981100a9beca4e685f962f0cf6c9",
			CrossDomainMessengerAddress: "0x8a791620dd6260079bf849dc5567adc3f2fdc318",
		},
		L2: core.L2Config{
			NodeURL:                     l2URL,
			CrossDomainMessengerAddress: eth.L2CrossDomainMessengerAddress.String(),
		},
		PollingIntervalMs: 20,
		DbsPath:           filepath.Join(t.TempDir(), "db"),
	}

	config.SetDefaults()

	require.NoError(t, config.Validate())

	return config
}

func TestRelayerManager(t *testing.T) {
	sccAbi, err := contractbinding.StateCommitmentChainMetaData.GetAbi()
	require.NoError(t, err)

	l1Server := ethtxhelper.NewTestRPCServer()
	defer l1Server.Close()

	l2Server := ethtxhelper.NewTestRPCServer()
	defer l2Server.Close()

	l1Server.HandleResult("eth_chainId", (*hexutil.Big)(big.NewInt(1)))
	l2Server.HandleResult("eth_chainId", (*hexutil.Big)(big.NewInt(10)))
	l1Server.Handle("eth_call", func([]json.RawMessage) (interface{}, error) {
		out, err := sccAbi.Methods["getTotalBatches"].Outputs.Pack(big.NewInt(0))

		return hexutil.Bytes(out), err
	})

	wallet, err := ethtxhelper.GenerateNewEthTxWallet()
	require.NoError(t, err)

	config := newTestConfig(t, l1Server.URL(), l2Server.URL())

	manager, err := NewRelayerManager(config, wallet, hclog.NewNullLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- manager.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return l1Server.Calls("eth_call") >= 2
	}, 20*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, l2Server.Calls("eth_chainId"))

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("relayer manager did not stop")
	}

	// database is closed and can be opened again
	reopened, err := NewRelayerManager(config, wallet, hclog.NewNullLogger())
	require.NoError(t, err)
	require.NoError(t, reopened.close())
}

func TestRelayerManagerWaitsForNodes(t *testing.T) {
	l1Server := ethtxhelper.NewTestRPCServer()
	defer l1Server.Close()

	l2Server := ethtxhelper.NewTestRPCServer()
	defer l2Server.Close()

	l1Server.HandleResult("eth_chainId", (*hexutil.Big)(big.NewInt(1)))

	config := newTestConfig(t, l1Server.URL(), l2Server.URL())

	manager, err := NewRelayerManager(config, nil, hclog.NewNullLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- manager.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return l2Server.Calls("eth_chainId") >= 3
	}, 10*time.Second, 10*time.Millisecond)

	cancel()

	require.NoError(t, <-errCh)
	require.Equal(t, 0, l1Server.Calls("eth_call"))
}

func TestLoadRelayerWallet(t *testing.T) {
	t.Run("private key", func(t *testing.T) {
		generated, err := ethtxhelper.GenerateNewEthTxWallet()
		require.NoError(t, err)

		wallet, err := LoadRelayerWallet(&core.RelayerConfiguration{}, generated.GetPrivateKeyHex())

		require.NoError(t, err)
		require.Equal(t, generated.GetAddress(), wallet.GetAddress())
	})

	t.Run("no source", func(t *testing.T) {
		_, err := LoadRelayerWallet(&core.RelayerConfiguration{}, "")
		require.ErrorContains(t, err, "not provided")
	})

	t.Run("secrets manager", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "secrets")

		secretsManager, err := secretsHelper.CreateSecretsManager(&secrets.SecretsManagerConfig{
			Path: dataDir,
			Type: secrets.Local,
		})
		require.NoError(t, err)

		stored, err := eth.CreateAndSaveRelayerEVMPrivateKey(secretsManager, "", false)
		require.NoError(t, err)

		wallet, err := LoadRelayerWallet(&core.RelayerConfiguration{RelayerDataDir: dataDir}, "")

		require.NoError(t, err)
		require.Equal(t, stored.GetAddress(), wallet.GetAddress())
	})
}

func TestL1TxHelperOptions(t *testing.T) {
	server := ethtxhelper.NewTestRPCServer()
	defer server.Close()

	server.HandleResult("eth_chainId", hexutil.EncodeUint64(1))

	newHelper := func(config core.L1Config) *ethtxhelper.EthTxHelperImpl {
		opts := append(l1TxHelperOptions(config), ethtxhelper.WithNodeURL(server.URL()))

		txHelper, err := ethtxhelper.NewEThTxHelper(opts...)
		require.NoError(t, err)

		return txHelper
	}

	t.Run("configured chain id", func(t *testing.T) {
		chainID, err := newHelper(core.L1Config{ChainID: 31337}).GetChainID(context.Background())

		require.NoError(t, err)
		assert.Equal(t, big.NewInt(31337), chainID)
		assert.Equal(t, 0, server.Calls("eth_chainId"))
	})

	t.Run("chain id from node", func(t *testing.T) {
		chainID, err := newHelper(core.L1Config{}).GetChainID(context.Background())

		require.NoError(t, err)
		assert.Equal(t, big.NewInt(1), chainID)
		assert.Equal(t, 1, server.Calls("eth_chainId"))
	})

	t.Run("zero gas price and relay gas cap", func(t *testing.T) {
		txHelper := newHelper(core.L1Config{ChainID: 31337, ZeroGasPrice: true, MaxRelayGasLimit: 4_000_000})

		txOpts := bind.TransactOpts{Nonce: big.NewInt(0)}

		require.NoError(t, txHelper.PopulateTxOpts(context.Background(), common.Address{}, &txOpts))
		assert.Equal(t, uint64(4_000_000), txOpts.GasLimit)
		assert.Equal(t, big.NewInt(0), txOpts.GasPrice)
	})
}
