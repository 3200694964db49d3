package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type RelayerManager interface {
	Start(ctx context.Context) error
}

type Relayer interface {
	Start(ctx context.Context)
}

type Database interface {
	Init(filePath string) error
	Close() error
	// GetNextUnsyncedBatchIndex returns nil when nothing has been persisted yet
	GetNextUnsyncedBatchIndex(key string) (*BatchIndex, error)
	SetNextUnsyncedBatchIndex(key string, batchIndex BatchIndex) error
}

type BatchLocator interface {
	// LocateBatch returns nil, nil when the batch has not been published yet
	LocateBatch(ctx context.Context, batchIndex BatchIndex) (*StateRootBatch, error)
}

type FinalityGate interface {
	IsFinal(ctx context.Context, header BatchHeader) (bool, error)
}

type MessageScanner interface {
	// ScanMessages returns sent messages from blocks [start, end) ordered by block number and log index
	ScanMessages(ctx context.Context, start, end uint64) ([]SentMessageEvent, error)
}

type ProofBuilder interface {
	BuildProofs(ctx context.Context, batch *StateRootBatch, txHash common.Hash) ([]MessageProof, error)
}

type RelaySubmitter interface {
	Submit(ctx context.Context, proof MessageProof) RelayOutcome
}
