package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ethernal-Tech/cardano-infrastructure/logger"
	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/Ethernal-Tech/ovm-message-relayer/telemetry"
)

const (
	DefaultPollingIntervalMs  = 5000
	DefaultNumL2GenesisBlocks = 1
	DefaultGasLimitMultiplier = 1.2
	DefaultMinRelayGasLimit   = 1_000_000
	DefaultMaxRelayGasLimit   = 5_000_000
	DefaultRelayGasLimitSteps = 4
)

type L1Config struct {
	NodeURL                     string  `json:"nodeUrl"`
	StateCommitmentChainAddress string  `json:"stateCommitmentChain"`
	CrossDomainMessengerAddress string  `json:"l1CrossDomainMessenger"`
	StartBlock                  uint64  `json:"startBlock"`
	DynamicTx                   bool    `json:"dynamicTx"`
	GasFeeMultiplier            uint64  `json:"gasFeeMultiplier"`
	GasLimitMultiplier          float64 `json:"gasLimitMultiplier"`
	MinRelayGasLimit            uint64  `json:"minRelayGasLimit"`
	MaxRelayGasLimit            uint64  `json:"maxRelayGasLimit"`
	RelayGasLimitSteps          uint64  `json:"relayGasLimitSteps"`
	NonceStrategy               string  `json:"nonceStrategy"`
	// ChainID zero means the chain id is queried from the node
	ChainID                     uint64  `json:"chainId"`
	ZeroGasPrice                bool    `json:"zeroGasPrice"`
	ReceiptRetries              uint64  `json:"receiptRetries"`
	ReceiptWaitTimeMs           uint64  `json:"receiptWaitTimeMs"`
}

type L2Config struct {
	NodeURL                     string `json:"nodeUrl"`
	CrossDomainMessengerAddress string `json:"l2CrossDomainMessenger"`
	NumGenesisBlocks            uint64 `json:"numGenesisBlocks"`
}

type RelayerConfiguration struct {
	L1                  L1Config                  `json:"l1"`
	L2                  L2Config                  `json:"l2"`
	PollingIntervalMs   uint64                    `json:"pollingIntervalMs"`
	StartingBatchIndex  uint64                    `json:"startingBatchIndex"`
	RetryFailedMessages bool                      `json:"retryFailedMessages"`
	MaxRelaysPerSecond  float64                   `json:"maxRelaysPerSecond"`
	DbsPath             string                    `json:"dbsPath"`
	RelayerDataDir      string                    `json:"relayerDataDir"`
	RelayerConfigPath   string                    `json:"relayerConfigPath"`
	Logger              logger.LoggerConfig       `json:"logger"`
	Telemetry           telemetry.TelemetryConfig `json:"telemetry"`
}

// SetDefaults fills options that were not provided with their default values
func (c *RelayerConfiguration) SetDefaults() {
	if c.PollingIntervalMs == 0 {
		c.PollingIntervalMs = DefaultPollingIntervalMs
	}

	if c.L2.NumGenesisBlocks == 0 {
		c.L2.NumGenesisBlocks = DefaultNumL2GenesisBlocks
	}

	if c.L1.GasLimitMultiplier == 0 {
		c.L1.GasLimitMultiplier = DefaultGasLimitMultiplier
	}

	if c.L1.MinRelayGasLimit == 0 {
		c.L1.MinRelayGasLimit = DefaultMinRelayGasLimit
	}

	if c.L1.MaxRelayGasLimit == 0 {
		c.L1.MaxRelayGasLimit = max(DefaultMaxRelayGasLimit, c.L1.MinRelayGasLimit)
	}

	if c.L1.RelayGasLimitSteps == 0 {
		c.L1.RelayGasLimitSteps = DefaultRelayGasLimitSteps
	}
}

// Validate reports every configuration problem that must stop the relayer from starting
func (c *RelayerConfiguration) Validate() error {
	var errs []error

	if !common.IsValidURL(c.L1.NodeURL) {
		errs = append(errs, fmt.Errorf("invalid l1 node url: %s", c.L1.NodeURL))
	}

	if !common.IsValidURL(c.L2.NodeURL) {
		errs = append(errs, fmt.Errorf("invalid l2 node url: %s", c.L2.NodeURL))
	}

	for name, addr := range map[string]string{
		"state commitment chain":    c.L1.StateCommitmentChainAddress,
		"l1 cross domain messenger": c.L1.CrossDomainMessengerAddress,
		"l2 cross domain messenger": c.L2.CrossDomainMessengerAddress,
	} {
		if !common.IsValidHexAddress(addr) {
			errs = append(errs, fmt.Errorf("invalid %s address: %s", name, addr))
		}
	}

	if c.PollingIntervalMs == 0 {
		errs = append(errs, errors.New("polling interval must be greater than zero"))
	}

	if c.MaxRelaysPerSecond < 0 {
		errs = append(errs, errors.New("max relays per second must not be negative"))
	}

	if c.L1.GasLimitMultiplier < 1 {
		errs = append(errs, errors.New("gas limit multiplier must be at least 1"))
	}

	if c.L1.MinRelayGasLimit > c.L1.MaxRelayGasLimit {
		errs = append(errs, fmt.Errorf("min relay gas limit %d is greater than max %d",
			c.L1.MinRelayGasLimit, c.L1.MaxRelayGasLimit))
	}

	if _, err := ethtxhelper.ParseNonceStrategyType(c.L1.NonceStrategy); err != nil {
		errs = append(errs, err)
	}

	if c.DbsPath == "" {
		errs = append(errs, errors.New("database path not specified"))
	}

	return errors.Join(errs...)
}

func (c *RelayerConfiguration) PollingInterval() time.Duration {
	return time.Duration(c.PollingIntervalMs) * time.Millisecond
}
