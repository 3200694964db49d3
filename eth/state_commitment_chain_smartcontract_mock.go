package eth

import (
	"context"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type StateCommitmentChainSmartContractMock struct {
	mock.Mock
}

var _ IStateCommitmentChainSmartContract = (*StateCommitmentChainSmartContractMock)(nil)

func (m *StateCommitmentChainSmartContractMock) GetTotalBatches(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	arg0, _ := args.Get(0).(uint64)

	return arg0, args.Error(1)
}

func (m *StateCommitmentChainSmartContractMock) GetStateBatchAppended(
	ctx context.Context, batchIndex uint64,
) (*StateBatchAppendedEvent, error) {
	args := m.Called(ctx, batchIndex)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).(*StateBatchAppendedEvent)

	return arg0, args.Error(1)
}

func (m *StateCommitmentChainSmartContractMock) GetAppendedStateRoots(
	ctx context.Context, txHash common.Hash,
) ([]common.Hash, error) {
	args := m.Called(ctx, txHash)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).([]common.Hash)

	return arg0, args.Error(1)
}

func (m *StateCommitmentChainSmartContractMock) InsideFraudProofWindow(
	ctx context.Context, header contractbinding.LibOVMCodecChainBatchHeader,
) (bool, error) {
	args := m.Called(ctx, header)
	arg0, _ := args.Get(0).(bool)

	return arg0, args.Error(1)
}
