package ethtxhelper

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dummyPk = "61deed8dda92a396e8e9dbcbb5a058bee274de1adc57b2067975691dacdd55c7"

func TestTxHelper_PopulateTxOpts(t *testing.T) {
	server := NewTestRPCServer()
	defer server.Close()

	server.HandleResult("eth_getTransactionCount", "0x5")
	server.HandleResult("eth_gasPrice", "0x64")
	server.HandleResult("eth_maxPriorityFeePerGas", "0x2")
	server.HandleResult("eth_feeHistory", map[string]interface{}{
		"oldestBlock":   "0x1",
		"baseFeePerGas": []string{"0xa", "0xc"},
		"gasUsedRatio":  []float64{0.5},
	})

	from := common.HexToAddress("0x1111111111111111111111111111111111111111")

	t.Run("legacy with zero gas price", func(t *testing.T) {
		txHelper, err := NewEThTxHelper(WithNodeURL(server.URL()), WithZeroGasPrice(true))
		require.NoError(t, err)

		txOpts := &bind.TransactOpts{}

		require.NoError(t, txHelper.PopulateTxOpts(context.Background(), from, txOpts))
		assert.Equal(t, from, txOpts.From)
		assert.Equal(t, uint64(5), txOpts.Nonce.Uint64())
		assert.Equal(t, defaultGasLimit, txOpts.GasLimit)
		assert.Equal(t, int64(0), txOpts.GasPrice.Int64())
	})

	t.Run("legacy with suggested gas price", func(t *testing.T) {
		txHelper, err := NewEThTxHelper(
			WithNodeURL(server.URL()), WithGasFeeMultiplier(150), WithDefaultGasLimit(21000))
		require.NoError(t, err)

		txOpts := &bind.TransactOpts{Nonce: big.NewInt(9)}

		require.NoError(t, txHelper.PopulateTxOpts(context.Background(), from, txOpts))
		assert.Equal(t, uint64(9), txOpts.Nonce.Uint64())
		assert.Equal(t, uint64(21000), txOpts.GasLimit)
		assert.Equal(t, int64(150), txOpts.GasPrice.Int64())
	})

	t.Run("dynamic fee", func(t *testing.T) {
		txHelper, err := NewEThTxHelper(
			WithNodeURL(server.URL()), WithDynamicTx(true), WithGasFeeMultiplier(150))
		require.NoError(t, err)

		txOpts := &bind.TransactOpts{}

		require.NoError(t, txHelper.PopulateTxOpts(context.Background(), from, txOpts))
		assert.Nil(t, txOpts.GasPrice)
		assert.Equal(t, int64(3), txOpts.GasTipCap.Int64())
		assert.Equal(t, int64(21), txOpts.GasFeeCap.Int64())
	})
}

func TestTxHelper_WaitForReceipt(t *testing.T) {
	txHash := common.HexToHash("0xabcdef")

	t.Run("receipt appears after a few polls", func(t *testing.T) {
		server := NewTestRPCServer()
		defer server.Close()

		cnt := 0

		server.Handle("eth_getTransactionReceipt", func([]json.RawMessage) (interface{}, error) {
			cnt++
			if cnt < 3 {
				return nil, nil
			}

			return &types.Receipt{
				Status:            types.ReceiptStatusSuccessful,
				CumulativeGasUsed: 21000,
				GasUsed:           21000,
				Logs:              []*types.Log{},
				TxHash:            txHash,
				BlockNumber:       big.NewInt(16),
			}, nil
		})

		txHelper, err := NewEThTxHelper(
			WithNodeURL(server.URL()), WithReceiptRetryConfig(5, time.Millisecond))
		require.NoError(t, err)

		receipt, err := txHelper.WaitForReceipt(context.Background(), txHash.String())
		require.NoError(t, err)
		assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
		assert.Equal(t, uint64(16), receipt.BlockNumber.Uint64())
		assert.Equal(t, 3, server.Calls("eth_getTransactionReceipt"))
	})

	t.Run("timeout", func(t *testing.T) {
		server := NewTestRPCServer()
		defer server.Close()

		server.HandleResult("eth_getTransactionReceipt", nil)

		txHelper, err := NewEThTxHelper(
			WithNodeURL(server.URL()), WithReceiptRetryConfig(2, time.Millisecond))
		require.NoError(t, err)

		_, err = txHelper.WaitForReceipt(context.Background(), txHash.String())
		require.ErrorContains(t, err, "timeout while waiting for transaction")
		assert.Equal(t, 3, server.Calls("eth_getTransactionReceipt"))
	})
}

func TestTxHelper_SendTx(t *testing.T) {
	server := NewTestRPCServer()
	defer server.Close()

	server.HandleResult("eth_getTransactionCount", "0x7")

	wallet, err := NewEthTxWallet(dummyPk)
	require.NoError(t, err)

	txHelper, err := NewEThTxHelper(
		WithNodeURL(server.URL()), WithChainID(big.NewInt(31337)),
		WithZeroGasPrice(true), WithNonceStrategyType(NonceInMemoryStrategy))
	require.NoError(t, err)

	nonces := []uint64(nil)
	handler := func(failWith error) SendTxFunc {
		return func(opts *bind.TransactOpts) (*types.Transaction, error) {
			nonces = append(nonces, opts.Nonce.Uint64())

			if failWith != nil {
				return nil, failWith
			}

			assert.Equal(t, wallet.GetAddress(), opts.From)

			return types.NewTx(&types.LegacyTx{Nonce: opts.Nonce.Uint64(), GasPrice: opts.GasPrice}), nil
		}
	}

	_, err = txHelper.SendTx(context.Background(), wallet, bind.TransactOpts{}, handler(nil))
	require.NoError(t, err)

	_, err = txHelper.SendTx(context.Background(), wallet, bind.TransactOpts{}, handler(nil))
	require.NoError(t, err)

	_, err = txHelper.SendTx(context.Background(), wallet, bind.TransactOpts{}, handler(errors.New("rejected")))
	require.ErrorContains(t, err, "rejected")

	_, err = txHelper.SendTx(context.Background(), wallet, bind.TransactOpts{}, handler(nil))
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 8, 9, 7}, nonces)
	assert.Equal(t, 2, server.Calls("eth_getTransactionCount"))
	assert.Equal(t, 0, server.Calls("eth_chainId"))
}

func TestTxHelper_GetChainID(t *testing.T) {
	server := NewTestRPCServer()
	defer server.Close()

	server.HandleResult("eth_chainId", "0x7a69")

	txHelper, err := NewEThTxHelper(WithNodeURL(server.URL()))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		chainID, err := txHelper.GetChainID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(31337), chainID.Int64())
	}

	assert.Equal(t, 1, server.Calls("eth_chainId"))
}
