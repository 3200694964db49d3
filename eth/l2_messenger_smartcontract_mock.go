package eth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type L2MessengerSmartContractMock struct {
	mock.Mock
}

var _ IL2MessengerSmartContract = (*L2MessengerSmartContractMock)(nil)

func (m *L2MessengerSmartContractMock) GetAddress() common.Address {
	args := m.Called()
	arg0, _ := args.Get(0).(common.Address)

	return arg0
}

func (m *L2MessengerSmartContractMock) FilterSentMessages(
	ctx context.Context, fromBlock, toBlock uint64,
) ([]SentMessageLog, error) {
	args := m.Called(ctx, fromBlock, toBlock)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).([]SentMessageLog)

	return arg0, args.Error(1)
}

func (m *L2MessengerSmartContractMock) GetSentMessagesByTransaction(
	ctx context.Context, txHash common.Hash,
) ([]SentMessageLog, error) {
	args := m.Called(ctx, txHash)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).([]SentMessageLog)

	return arg0, args.Error(1)
}
