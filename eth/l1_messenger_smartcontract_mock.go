package eth

import (
	"context"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

type L1MessengerSmartContractMock struct {
	mock.Mock
}

var _ IL1MessengerSmartContract = (*L1MessengerSmartContractMock)(nil)

func (m *L1MessengerSmartContractMock) RelayMessage(
	ctx context.Context, args RelayMessageArgs,
	proof contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof,
) (*types.Receipt, error) {
	callArgs := m.Called(ctx, args, proof)

	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}

	arg0, _ := callArgs.Get(0).(*types.Receipt)

	return arg0, callArgs.Error(1)
}

func (m *L1MessengerSmartContractMock) SuccessfulMessages(ctx context.Context, messageHash common.Hash) (bool, error) {
	args := m.Called(ctx, messageHash)
	arg0, _ := args.Get(0).(bool)

	return arg0, args.Error(1)
}
