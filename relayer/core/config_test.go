package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *RelayerConfiguration {
	config := &RelayerConfiguration{
		L1: L1Config{
			NodeURL:                     "http://localhost:8545",
			StateCommitmentChainAddress: "0xdc64a140aa3e981100a9beca4e685f962f0cf6c9",
			CrossDomainMessengerAddress: "0x5fbdb2315678afecb367f032d93f642f64180aa3",
		},
		L2: L2Config{
			NodeURL:                     "http://localhost:8546",
			CrossDomainMessengerAddress: "0x4200000000000000000000000000000000000007",
		},
		DbsPath: "/tmp/relayer",
	}

	config.SetDefaults()

	return config
}

func TestRelayerConfiguration_SetDefaults(t *testing.T) {
	config := &RelayerConfiguration{}
	config.SetDefaults()

	assert.Equal(t, uint64(DefaultPollingIntervalMs), config.PollingIntervalMs)
	assert.Equal(t, 5*time.Second, config.PollingInterval())
	assert.Equal(t, uint64(DefaultNumL2GenesisBlocks), config.L2.NumGenesisBlocks)
	assert.Equal(t, DefaultGasLimitMultiplier, config.L1.GasLimitMultiplier)
	assert.Equal(t, uint64(DefaultMinRelayGasLimit), config.L1.MinRelayGasLimit)
	assert.Equal(t, uint64(DefaultMaxRelayGasLimit), config.L1.MaxRelayGasLimit)

	config = &RelayerConfiguration{PollingIntervalMs: 100, L1: L1Config{MinRelayGasLimit: 8_000_000}}
	config.SetDefaults()

	assert.Equal(t, uint64(100), config.PollingIntervalMs)
	assert.Equal(t, uint64(8_000_000), config.L1.MaxRelayGasLimit)
}

func TestRelayerConfiguration_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("invalid urls and addresses", func(t *testing.T) {
		config := validConfig()
		config.L1.NodeURL = "localhost"
		config.L2.NodeURL = ""
		config.L1.StateCommitmentChainAddress = "0x123"
		config.L2.CrossDomainMessengerAddress = "not an address"

		err := config.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid l1 node url")
		assert.ErrorContains(t, err, "invalid l2 node url")
		assert.ErrorContains(t, err, "invalid state commitment chain address")
		assert.ErrorContains(t, err, "invalid l2 cross domain messenger address")
		assert.NotContains(t, err.Error(), "invalid l1 cross domain messenger address")
	})

	t.Run("invalid numbers", func(t *testing.T) {
		config := validConfig()
		config.PollingIntervalMs = 0
		config.MaxRelaysPerSecond = -1
		config.L1.GasLimitMultiplier = 0.5
		config.L1.MinRelayGasLimit = 10
		config.L1.MaxRelayGasLimit = 5
		config.L1.NonceStrategy = "unknown"
		config.DbsPath = ""

		err := config.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "polling interval must be greater than zero")
		assert.ErrorContains(t, err, "max relays per second must not be negative")
		assert.ErrorContains(t, err, "gas limit multiplier must be at least 1")
		assert.ErrorContains(t, err, "min relay gas limit 10 is greater than max 5")
		assert.ErrorContains(t, err, "unknown nonce strategy")
		assert.ErrorContains(t, err, "database path not specified")
	})
}
