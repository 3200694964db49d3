package relayer_manager

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/bridge"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	databaseaccess "github.com/Ethernal-Tech/ovm-message-relayer/relayer/database_access"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/proof"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/relayer"
	"github.com/Ethernal-Tech/ovm-message-relayer/telemetry"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

const telemetryShutdownTimeout = 5 * time.Second

type RelayerManagerImpl struct {
	config    *core.RelayerConfiguration
	relayer   core.Relayer
	db        core.Database
	telemetry *telemetry.Telemetry
	l1Helper  *eth.EthHelperWrapper
	l2Helper  *eth.EthHelperWrapper
	logger    hclog.Logger
}

var _ core.RelayerManager = (*RelayerManagerImpl)(nil)

func NewRelayerManager(
	config *core.RelayerConfiguration, wallet ethtxhelper.IEthTxWallet, logger hclog.Logger,
) (*RelayerManagerImpl, error) {
	nonceStrategy, err := ethtxhelper.ParseNonceStrategyType(config.L1.NonceStrategy)
	if err != nil {
		return nil, err
	}

	db, err := databaseaccess.NewDatabase(config.DbsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	l1Opts := []ethtxhelper.TxRelayerOption{
		ethtxhelper.WithNodeURL(config.L1.NodeURL),
		ethtxhelper.WithDynamicTx(config.L1.DynamicTx),
		ethtxhelper.WithNonceStrategyType(nonceStrategy),
	}

	l1Opts = append(l1Opts, l1TxHelperOptions(config.L1)...)

	l1Helper := eth.NewEthHelperWrapperWithWallet(wallet, logger.Named("l1_helper"), l1Opts...)
	l2Helper := eth.NewEthHelperWrapper(logger.Named("l2_helper"), ethtxhelper.WithNodeURL(config.L2.NodeURL))

	stateCommitmentChain := eth.NewStateCommitmentChainSmartContract(
		config.L1.StateCommitmentChainAddress, config.L1.StartBlock, l1Helper)
	l1Messenger := eth.NewL1MessengerSmartContract(
		config.L1.CrossDomainMessengerAddress, l1Helper, config.L1.GasLimitMultiplier,
		eth.NewRelayGasLimitHolder(config.L1.MinRelayGasLimit, config.L1.MaxRelayGasLimit, config.L1.RelayGasLimitSteps),
		logger.Named("l1_messenger"))
	l2Messenger := eth.NewL2MessengerSmartContract(config.L2.CrossDomainMessengerAddress, l2Helper)

	return &RelayerManagerImpl{
		config: config,
		relayer: relayer.NewRelayer(
			config,
			bridge.NewBatchLocator(stateCommitmentChain, logger.Named("batch_locator")),
			bridge.NewFinalityGate(stateCommitmentChain),
			bridge.NewMessageScanner(l2Messenger),
			proof.NewProofBuilder(
				l2Messenger, eth.NewL2StateReader(l2Helper), config.L2.NumGenesisBlocks, logger.Named("proof_builder")),
			bridge.NewRelaySubmitter(
				l1Messenger, logger.Named("relay_submitter"), bridge.WithMaxRelaysPerSecond(config.MaxRelaysPerSecond)),
			db,
			logger.Named("relayer"),
		),
		db:        db,
		telemetry: telemetry.NewTelemetry(config.Telemetry, logger.Named("telemetry")),
		l1Helper:  l1Helper,
		l2Helper:  l2Helper,
		logger:    logger,
	}, nil
}

func l1TxHelperOptions(config core.L1Config) []ethtxhelper.TxRelayerOption {
	opts := []ethtxhelper.TxRelayerOption{
		ethtxhelper.WithZeroGasPrice(config.ZeroGasPrice),
		// transactions sent without an explicit limit never exceed the relay one
		ethtxhelper.WithDefaultGasLimit(config.MaxRelayGasLimit),
	}

	if config.GasFeeMultiplier > 0 {
		opts = append(opts, ethtxhelper.WithGasFeeMultiplier(config.GasFeeMultiplier))
	}

	if config.ChainID > 0 {
		opts = append(opts, ethtxhelper.WithChainID(new(big.Int).SetUint64(config.ChainID)))
	}

	if config.ReceiptRetries > 0 && config.ReceiptWaitTimeMs > 0 {
		opts = append(opts, ethtxhelper.WithReceiptRetryConfig(
			config.ReceiptRetries, time.Duration(config.ReceiptWaitTimeMs)*time.Millisecond))
	}

	return opts
}

// Start blocks until the context is done or startup fails
func (rm *RelayerManagerImpl) Start(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, rm.close())
	}()

	if err := rm.telemetry.Start(); err != nil {
		return fmt.Errorf("failed to start telemetry: %w", err)
	}

	if err := rm.waitForNodes(ctx); err != nil {
		if common.IsContextDoneErr(err) {
			return nil
		}

		return err
	}

	rm.logger.Info("Relayer manager started",
		"stateCommitmentChain", rm.config.L1.StateCommitmentChainAddress,
		"l1CrossDomainMessenger", rm.config.L1.CrossDomainMessengerAddress,
		"l2CrossDomainMessenger", rm.config.L2.CrossDomainMessengerAddress)

	rm.relayer.Start(ctx)

	return nil
}

// waitForNodes retries until both nodes report their chain id
func (rm *RelayerManagerImpl) waitForNodes(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for name, ethHelper := range map[string]*eth.EthHelperWrapper{
		"l1": rm.l1Helper,
		"l2": rm.l2Helper,
	} {
		name, ethHelper := name, ethHelper

		group.Go(func() error {
			return common.RetryForever(groupCtx, rm.config.PollingInterval(), func(ctx context.Context) error {
				ethTxHelper, err := ethHelper.GetEthHelper()
				if err != nil {
					rm.logger.Warn("Failed to connect to node", "node", name, "err", err)

					return err
				}

				chainID, err := ethTxHelper.GetChainID(ctx)
				if err != nil {
					rm.logger.Warn("Node is not available", "node", name, "err", err)

					return ethHelper.ProcessError(err)
				}

				rm.logger.Info("Connected to node", "node", name, "chainID", chainID)

				return nil
			})
		})
	}

	return group.Wait()
}

func (rm *RelayerManagerImpl) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	defer cancel()

	return errors.Join(rm.telemetry.Close(ctx), rm.db.Close())
}

// LoadRelayerWallet returns wallet from privateKey when provided, otherwise from the secrets manager
func LoadRelayerWallet(config *core.RelayerConfiguration, privateKey string) (*ethtxhelper.EthTxWallet, error) {
	if privateKey != "" {
		return ethtxhelper.NewEthTxWallet(privateKey)
	}

	secretsManager, err := common.GetSecretsManager(config.RelayerDataDir, config.RelayerConfigPath)
	if errors.Is(err, common.ErrSecretsLocationMissing) {
		return nil, fmt.Errorf("relayer private key is not provided: %w", err)
	} else if err != nil {
		return nil, fmt.Errorf("failed to create secrets manager: %w", err)
	}

	wallet, err := eth.GetRelayerEVMPrivateKey(secretsManager)
	if err != nil {
		return nil, fmt.Errorf("failed to load relayer wallet: %w", err)
	}

	return wallet, nil
}
