package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type BatchLocatorMock struct {
	mock.Mock
}

var _ BatchLocator = (*BatchLocatorMock)(nil)

func (m *BatchLocatorMock) LocateBatch(ctx context.Context, batchIndex BatchIndex) (*StateRootBatch, error) {
	args := m.Called(ctx, batchIndex)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).(*StateRootBatch)

	return arg0, args.Error(1)
}

type FinalityGateMock struct {
	mock.Mock
}

var _ FinalityGate = (*FinalityGateMock)(nil)

func (m *FinalityGateMock) IsFinal(ctx context.Context, header BatchHeader) (bool, error) {
	args := m.Called(ctx, header)
	arg0, _ := args.Get(0).(bool)

	return arg0, args.Error(1)
}

type MessageScannerMock struct {
	mock.Mock
}

var _ MessageScanner = (*MessageScannerMock)(nil)

func (m *MessageScannerMock) ScanMessages(ctx context.Context, start, end uint64) ([]SentMessageEvent, error) {
	args := m.Called(ctx, start, end)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).([]SentMessageEvent)

	return arg0, args.Error(1)
}

type ProofBuilderMock struct {
	mock.Mock
}

var _ ProofBuilder = (*ProofBuilderMock)(nil)

func (m *ProofBuilderMock) BuildProofs(
	ctx context.Context, batch *StateRootBatch, txHash common.Hash,
) ([]MessageProof, error) {
	args := m.Called(ctx, batch, txHash)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).([]MessageProof)

	return arg0, args.Error(1)
}

type RelaySubmitterMock struct {
	mock.Mock
}

var _ RelaySubmitter = (*RelaySubmitterMock)(nil)

func (m *RelaySubmitterMock) Submit(ctx context.Context, proof MessageProof) RelayOutcome {
	args := m.Called(ctx, proof)
	arg0, _ := args.Get(0).(RelayOutcome)

	return arg0
}

type DatabaseMock struct {
	mock.Mock
}

var _ Database = (*DatabaseMock)(nil)

func (m *DatabaseMock) Init(filePath string) error {
	return m.Called(filePath).Error(0)
}

func (m *DatabaseMock) Close() error {
	return m.Called().Error(0)
}

func (m *DatabaseMock) GetNextUnsyncedBatchIndex(key string) (*BatchIndex, error) {
	args := m.Called(key)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).(*BatchIndex)

	return arg0, args.Error(1)
}

func (m *DatabaseMock) SetNextUnsyncedBatchIndex(key string, batchIndex BatchIndex) error {
	return m.Called(key, batchIndex).Error(0)
}
