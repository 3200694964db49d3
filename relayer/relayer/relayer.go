package relayer

import (
	"context"
	"fmt"
	"time"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/proof"
	"github.com/Ethernal-Tech/ovm-message-relayer/telemetry"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
)

type RelayerImpl struct {
	config         *core.RelayerConfiguration
	cursorKey      string
	batchLocator   core.BatchLocator
	finalityGate   core.FinalityGate
	messageScanner core.MessageScanner
	proofBuilder   core.ProofBuilder
	relaySubmitter core.RelaySubmitter
	db             core.Database
	logger         hclog.Logger

	wait func(ctx context.Context, d time.Duration) error
}

var _ core.Relayer = (*RelayerImpl)(nil)

func NewRelayer(
	config *core.RelayerConfiguration,
	batchLocator core.BatchLocator,
	finalityGate core.FinalityGate,
	messageScanner core.MessageScanner,
	proofBuilder core.ProofBuilder,
	relaySubmitter core.RelaySubmitter,
	db core.Database,
	logger hclog.Logger,
) *RelayerImpl {
	return &RelayerImpl{
		config:         config,
		cursorKey:      ethcommon.HexToAddress(config.L1.StateCommitmentChainAddress).Hex(),
		batchLocator:   batchLocator,
		finalityGate:   finalityGate,
		messageScanner: messageScanner,
		proofBuilder:   proofBuilder,
		relaySubmitter: relaySubmitter,
		db:             db,
		logger:         logger,
		wait:           common.WaitForDuration,
	}
}

func (r *RelayerImpl) Start(ctx context.Context) {
	r.logger.Debug("Relayer started", "pollingInterval", r.config.PollingInterval())

	for {
		advanced, err := r.execute(ctx)
		if err != nil && ctx.Err() == nil {
			r.logger.Error("execute failed", "err", err)
		}

		if ctx.Err() != nil {
			break
		}

		if advanced {
			continue
		}

		if err := r.wait(ctx, r.config.PollingInterval()); err != nil {
			break
		}
	}

	r.logger.Debug("Relayer stopped")
}

// execute processes at most one batch. It returns true when the cursor has been advanced
func (r *RelayerImpl) execute(ctx context.Context) (bool, error) {
	batchIndex, err := r.getNextUnsyncedBatchIndex()
	if err != nil {
		return false, err
	}

	batch, err := r.batchLocator.LocateBatch(ctx, batchIndex)
	if err != nil {
		return false, fmt.Errorf("failed to locate batch %d: %w", batchIndex, err)
	}

	if batch == nil {
		r.logger.Debug("Batch not published yet", "batchIndex", batchIndex)

		return false, nil
	}

	isFinal, err := r.finalityGate.IsFinal(ctx, batch.Header)
	if err != nil {
		return false, err
	}

	if !isFinal {
		r.logger.Debug("Batch still inside the fraud proof window", "batchIndex", batchIndex)

		return false, nil
	}

	r.logger.Info("found next finalized transaction batch",
		"batchIndex", batchIndex, "prevTotalElements", batch.Header.PrevTotalElements,
		"batchSize", batch.Header.BatchSize)

	start, end := batch.Header.BlockRange(r.config.L2.NumGenesisBlocks)

	events, err := r.messageScanner.ScanMessages(ctx, start, end)
	if err != nil {
		return false, err
	}

	failedCnt, err := r.processMessages(ctx, batch, events)
	if err != nil {
		return false, err
	}

	// messages interrupted by shutdown must be attempted again
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if failedCnt > 0 && r.config.RetryFailedMessages {
		return false, fmt.Errorf("%d messages of batch %d failed, batch will be retried", failedCnt, batchIndex)
	}

	if err := r.db.SetNextUnsyncedBatchIndex(r.cursorKey, batchIndex+1); err != nil {
		return false, fmt.Errorf("failed to persist next unsynced batch index %d: %w", batchIndex+1, err)
	}

	telemetry.UpdateRelayerBatchesProcessedCounter(1)
	telemetry.UpdateRelayerNextUnsyncedBatch(batchIndex + 1)

	return true, nil
}

// processMessages relays messages of every batch transaction which sent at least one.
// It returns number of messages which could not be relayed
func (r *RelayerImpl) processMessages(
	ctx context.Context, batch *core.StateRootBatch, events []core.SentMessageEvent,
) (int, error) {
	failedCnt := 0
	processedTxs := make(map[ethcommon.Hash]bool, len(events))

	for _, event := range events {
		// proofs are built for all messages of the transaction at once
		if processedTxs[event.TransactionHash] {
			continue
		}

		processedTxs[event.TransactionHash] = true

		r.logger.Info("generating proof data for message",
			"batchIndex", batch.Header.BatchIndex, "transactionHash", event.TransactionHash)

		proofs, err := r.proofBuilder.BuildProofs(ctx, batch, event.TransactionHash)
		if err != nil {
			return failedCnt, fmt.Errorf("failed to build proofs for transaction %s: %w", event.TransactionHash, err)
		}

		for _, messageProof := range proofs {
			if ctx.Err() != nil {
				return failedCnt, ctx.Err()
			}

			if !r.relayMessage(ctx, batch.Header.BatchIndex, event.TransactionHash, messageProof) {
				failedCnt++
			}
		}
	}

	return failedCnt, nil
}

func (r *RelayerImpl) relayMessage(
	ctx context.Context, batchIndex core.BatchIndex, txHash ethcommon.Hash, messageProof core.MessageProof,
) bool {
	messageHash, err := proof.GetCrossDomainMessageHash(messageProof.Message)
	if err != nil {
		telemetry.UpdateRelayerMessagesFailedCounter(1)

		r.logger.Error("failed to compute message hash",
			"batchIndex", batchIndex, "transactionHash", txHash, "err", err)

		return false
	}

	r.logger.Info("relaying message", "batchIndex", batchIndex, "transactionHash", txHash,
		"messageHash", messageHash, "nonce", messageProof.Message.MessageNonce)

	outcome := r.relaySubmitter.Submit(ctx, messageProof)

	switch outcome.Status {
	case core.RelayStatusRelayed:
		telemetry.UpdateRelayerMessagesRelayedCounter(1)

		r.logger.Info("relayed message successfully",
			"batchIndex", batchIndex, "messageHash", outcome.MessageHash, "relayTransactionHash", outcome.RelayTxHash)

		return true
	case core.RelayStatusAlreadyRelayed:
		telemetry.UpdateRelayerMessagesAlreadyRelayedCounter(1)

		r.logger.Info("message was already relayed", "batchIndex", batchIndex, "messageHash", outcome.MessageHash)

		return true
	default:
		telemetry.UpdateRelayerMessagesFailedCounter(1)

		r.logger.Error("caught an error while relaying a message",
			"batchIndex", batchIndex, "messageHash", outcome.MessageHash, "transactionHash", txHash,
			"err", outcome.Err)

		return false
	}
}

func (r *RelayerImpl) getNextUnsyncedBatchIndex() (core.BatchIndex, error) {
	batchIndex, err := r.db.GetNextUnsyncedBatchIndex(r.cursorKey)
	if err != nil {
		return 0, fmt.Errorf("failed to get next unsynced batch index from db: %w", err)
	}

	if batchIndex == nil {
		return r.config.StartingBatchIndex, nil
	}

	return *batchIndex, nil
}
