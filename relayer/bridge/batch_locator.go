package bridge

import (
	"context"
	"fmt"

	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/hashicorp/go-hclog"
)

type BatchLocatorImpl struct {
	stateCommitmentChain eth.IStateCommitmentChainSmartContract
	logger               hclog.Logger
}

var _ core.BatchLocator = (*BatchLocatorImpl)(nil)

func NewBatchLocator(
	stateCommitmentChain eth.IStateCommitmentChainSmartContract, logger hclog.Logger,
) *BatchLocatorImpl {
	return &BatchLocatorImpl{
		stateCommitmentChain: stateCommitmentChain,
		logger:               logger,
	}
}

func (l *BatchLocatorImpl) LocateBatch(
	ctx context.Context, batchIndex core.BatchIndex,
) (*core.StateRootBatch, error) {
	totalBatches, err := l.stateCommitmentChain.GetTotalBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve total batches: %w", err)
	}

	if batchIndex >= totalBatches {
		return nil, nil
	}

	event, err := l.stateCommitmentChain.GetStateBatchAppended(ctx, batchIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve batch %d: %w", batchIndex, err)
	}

	if event == nil {
		// appended but the log is not visible yet
		l.logger.Debug("Batch counted but event not found", "batch", batchIndex, "total", totalBatches)

		return nil, nil
	}

	stateRoots, err := l.stateCommitmentChain.GetAppendedStateRoots(ctx, event.TransactionHash)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve state roots of batch %d from tx %s: %w",
			batchIndex, event.TransactionHash, err)
	}

	if uint64(len(stateRoots)) != event.BatchSize {
		return nil, fmt.Errorf("batch %d has size %d but transaction %s appended %d state roots",
			batchIndex, event.BatchSize, event.TransactionHash, len(stateRoots))
	}

	return &core.StateRootBatch{
		Header: core.NewBatchHeader(
			event.BatchIndex, event.BatchRoot, event.BatchSize, event.PrevTotalElements, event.ExtraData),
		StateRoots:      stateRoots,
		TransactionHash: event.TransactionHash,
	}, nil
}
