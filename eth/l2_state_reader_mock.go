package eth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/stretchr/testify/mock"
)

type L2StateReaderMock struct {
	mock.Mock
}

var _ IL2StateReader = (*L2StateReaderMock)(nil)

func (m *L2StateReaderMock) GetStorageProof(
	ctx context.Context, account common.Address, slots []common.Hash, blockNumber uint64,
) (*gethclient.AccountResult, error) {
	args := m.Called(ctx, account, slots, blockNumber)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	arg0, _ := args.Get(0).(*gethclient.AccountResult)

	return arg0, args.Error(1)
}
