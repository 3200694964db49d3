package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBatchLocator(t *testing.T) {
	ctx := context.Background()
	txHash := common.HexToHash("0xfe")
	event := &eth.StateBatchAppendedEvent{
		BatchIndex:        5,
		BatchRoot:         common.HexToHash("0x55"),
		BatchSize:         2,
		PrevTotalElements: 40,
		TransactionHash:   txHash,
		BlockNumber:       900,
	}
	stateRoots := []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")}

	t.Run("not published yet", func(t *testing.T) {
		sccMock := &eth.StateCommitmentChainSmartContractMock{}
		sccMock.On("GetTotalBatches", ctx).Return(uint64(5), nil)

		batch, err := NewBatchLocator(sccMock, hclog.NewNullLogger()).LocateBatch(ctx, 5)

		require.NoError(t, err)
		require.Nil(t, batch)
		sccMock.AssertNotCalled(t, "GetStateBatchAppended", mock.Anything, mock.Anything)
	})

	t.Run("event not visible yet", func(t *testing.T) {
		sccMock := &eth.StateCommitmentChainSmartContractMock{}
		sccMock.On("GetTotalBatches", ctx).Return(uint64(6), nil)
		sccMock.On("GetStateBatchAppended", ctx, uint64(5)).Return(nil, nil)

		batch, err := NewBatchLocator(sccMock, hclog.NewNullLogger()).LocateBatch(ctx, 5)

		require.NoError(t, err)
		require.Nil(t, batch)
	})

	t.Run("found", func(t *testing.T) {
		sccMock := &eth.StateCommitmentChainSmartContractMock{}
		sccMock.On("GetTotalBatches", ctx).Return(uint64(6), nil)
		sccMock.On("GetStateBatchAppended", ctx, uint64(5)).Return(event, nil)
		sccMock.On("GetAppendedStateRoots", ctx, txHash).Return(stateRoots, nil)

		batch, err := NewBatchLocator(sccMock, hclog.NewNullLogger()).LocateBatch(ctx, 5)

		require.NoError(t, err)
		require.Equal(t, &core.StateRootBatch{
			Header:          core.NewBatchHeader(5, event.BatchRoot, 2, 40, nil),
			StateRoots:      stateRoots,
			TransactionHash: txHash,
		}, batch)
	})

	t.Run("size mismatch", func(t *testing.T) {
		sccMock := &eth.StateCommitmentChainSmartContractMock{}
		sccMock.On("GetTotalBatches", ctx).Return(uint64(6), nil)
		sccMock.On("GetStateBatchAppended", ctx, uint64(5)).Return(event, nil)
		sccMock.On("GetAppendedStateRoots", ctx, txHash).Return(stateRoots[:1], nil)

		_, err := NewBatchLocator(sccMock, hclog.NewNullLogger()).LocateBatch(ctx, 5)

		require.ErrorContains(t, err, "appended 1 state roots")
	})

	t.Run("rpc errors", func(t *testing.T) {
		sccMock := &eth.StateCommitmentChainSmartContractMock{}
		sccMock.On("GetTotalBatches", ctx).Return(uint64(0), errors.New("total err")).Once()

		_, err := NewBatchLocator(sccMock, hclog.NewNullLogger()).LocateBatch(ctx, 5)
		require.ErrorContains(t, err, "total err")

		sccMock.On("GetTotalBatches", ctx).Return(uint64(6), nil)
		sccMock.On("GetStateBatchAppended", ctx, uint64(5)).Return(nil, errors.New("logs err"))

		_, err = NewBatchLocator(sccMock, hclog.NewNullLogger()).LocateBatch(ctx, 5)
		require.ErrorContains(t, err, "logs err")
	})
}

func TestFinalityGate(t *testing.T) {
	ctx := context.Background()
	header := core.NewBatchHeader(1, common.HexToHash("0x11"), 3, 9, nil)

	sccMock := &eth.StateCommitmentChainSmartContractMock{}
	sccMock.On("InsideFraudProofWindow", ctx, header.ToContract()).Return(true, nil).Once()
	sccMock.On("InsideFraudProofWindow", ctx, header.ToContract()).Return(false, nil).Once()
	sccMock.On("InsideFraudProofWindow", ctx, header.ToContract()).Return(false, errors.New("call err")).Once()

	gate := NewFinalityGate(sccMock)

	final, err := gate.IsFinal(ctx, header)
	require.NoError(t, err)
	require.False(t, final)

	final, err = gate.IsFinal(ctx, header)
	require.NoError(t, err)
	require.True(t, final)

	_, err = gate.IsFinal(ctx, header)
	require.ErrorContains(t, err, "call err")
}
