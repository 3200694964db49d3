package eth

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sccAddress = common.HexToAddress("0xdc64a140aa3e981100a9beca4e685f962f0cf6c9")

func TestDecodeAppendStateBatchInput(t *testing.T) {
	parsed, err := contractbinding.StateCommitmentChainMetaData.GetAbi()
	require.NoError(t, err)

	roots := [][32]byte{common.HexToHash("0x01"), common.HexToHash("0x02"), common.HexToHash("0x03")}

	input, err := parsed.Pack(appendStateBatchMethod, roots, big.NewInt(10))
	require.NoError(t, err)

	decoded, err := DecodeAppendStateBatchInput(input)
	require.NoError(t, err)
	assert.Equal(t, []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02"), common.HexToHash("0x03")}, decoded)

	_, err = DecodeAppendStateBatchInput([]byte{1, 2})
	require.ErrorContains(t, err, "is not appendStateBatch call")

	otherInput, err := parsed.Pack("getTotalBatches")
	require.NoError(t, err)

	_, err = DecodeAppendStateBatchInput(otherInput)
	require.ErrorContains(t, err, "is not appendStateBatch call")
}

func TestStateCommitmentChainSmartContract(t *testing.T) {
	parsed, err := contractbinding.StateCommitmentChainMetaData.GetAbi()
	require.NoError(t, err)

	server := ethtxhelper.NewTestRPCServer()
	defer server.Close()

	ethHelper := NewEthHelperWrapper(hclog.NewNullLogger(), ethtxhelper.WithNodeURL(server.URL()))
	sc := NewStateCommitmentChainSmartContract(sccAddress.String(), 100, ethHelper)
	ctx := context.Background()

	batchAppendedLog := func(
		batchIndex uint64, txHash common.Hash, batchRoot common.Hash, blockNumber uint64, logIndex uint,
	) *types.Log {
		event := parsed.Events["StateBatchAppended"]

		data, err := event.Inputs.NonIndexed().Pack(batchRoot, big.NewInt(4), big.NewInt(1000), []byte{0xaa})
		require.NoError(t, err)

		return &types.Log{
			Address:     sccAddress,
			Topics:      []common.Hash{event.ID, common.BigToHash(new(big.Int).SetUint64(batchIndex))},
			Data:        data,
			BlockNumber: blockNumber,
			Index:       logIndex,
			TxHash:      txHash,
			BlockHash:   common.HexToHash("0x1234"),
		}
	}

	t.Run("GetTotalBatches", func(t *testing.T) {
		server.Handle("eth_call", func([]json.RawMessage) (interface{}, error) {
			out, err := parsed.Methods["getTotalBatches"].Outputs.Pack(big.NewInt(42))

			return hexutil.Bytes(out), err
		})

		total, err := sc.GetTotalBatches(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), total)
	})

	t.Run("InsideFraudProofWindow", func(t *testing.T) {
		server.Handle("eth_call", func([]json.RawMessage) (interface{}, error) {
			out, err := parsed.Methods["insideFraudProofWindow"].Outputs.Pack(true)

			return hexutil.Bytes(out), err
		})

		inside, err := sc.InsideFraudProofWindow(ctx, contractbinding.LibOVMCodecChainBatchHeader{
			BatchIndex:        big.NewInt(1),
			BatchSize:         big.NewInt(4),
			PrevTotalElements: big.NewInt(1000),
			ExtraData:         []byte{},
		})
		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("GetStateBatchAppended not published", func(t *testing.T) {
		server.HandleResult("eth_getLogs", []*types.Log{})

		event, err := sc.GetStateBatchAppended(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, event)
	})

	t.Run("GetStateBatchAppended found", func(t *testing.T) {
		txHash := common.HexToHash("0xfeed")

		server.HandleResult("eth_getLogs", []*types.Log{batchAppendedLog(7, txHash, common.HexToHash("0xbeef"), 150, 0)})

		event, err := sc.GetStateBatchAppended(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, &StateBatchAppendedEvent{
			BatchIndex:        7,
			BatchRoot:         common.HexToHash("0xbeef"),
			BatchSize:         4,
			PrevTotalElements: 1000,
			ExtraData:         []byte{0xaa},
			TransactionHash:   txHash,
			BlockNumber:       150,
		}, event)
	})

	t.Run("GetStateBatchAppended appended again after deletion", func(t *testing.T) {
		server.HandleResult("eth_getLogs", []*types.Log{
			batchAppendedLog(7, common.HexToHash("0x03"), common.HexToHash("0xc3"), 170, 1),
			batchAppendedLog(7, common.HexToHash("0x01"), common.HexToHash("0xc1"), 150, 4),
			batchAppendedLog(7, common.HexToHash("0x02"), common.HexToHash("0xc2"), 170, 0),
		})

		for i := 0; i < 3; i++ {
			event, err := sc.GetStateBatchAppended(ctx, 7)
			require.NoError(t, err)
			require.NotNil(t, event)
			assert.Equal(t, common.HexToHash("0x03"), event.TransactionHash)
			assert.Equal(t, common.HexToHash("0xc3"), event.BatchRoot)
			assert.Equal(t, uint64(170), event.BlockNumber)
		}
	})

	t.Run("GetAppendedStateRoots", func(t *testing.T) {
		roots := [][32]byte{common.HexToHash("0xa1"), common.HexToHash("0xa2")}

		input, err := parsed.Pack(appendStateBatchMethod, roots, big.NewInt(1000))
		require.NoError(t, err)

		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		tx, err := types.SignTx(types.NewTransaction(0, sccAddress, big.NewInt(0), 100000, big.NewInt(1), input),
			types.HomesteadSigner{}, key)
		require.NoError(t, err)

		server.HandleResult("eth_getTransactionByHash", tx)

		result, err := sc.GetAppendedStateRoots(ctx, tx.Hash())
		require.NoError(t, err)
		assert.Equal(t, []common.Hash{common.HexToHash("0xa1"), common.HexToHash("0xa2")}, result)
	})

	t.Run("rpc error", func(t *testing.T) {
		server.Handle("eth_call", func([]json.RawMessage) (interface{}, error) {
			return nil, assert.AnError
		})

		_, err := sc.GetTotalBatches(ctx)
		require.Error(t, err)
	})
}

func TestStateCommitmentChainSmartContract_ABI(t *testing.T) {
	parsed, err := contractbinding.StateCommitmentChainMetaData.GetAbi()
	require.NoError(t, err)

	assert.Equal(t,
		common.HexToHash("0x16be4c5129a4e03cf3350262e181dc02ddfb4a6008d925368c0899fcd97ca9c5"),
		parsed.Events["StateBatchAppended"].ID)
	assert.Len(t, parsed.Methods["insideFraudProofWindow"].Outputs, 1)
}
