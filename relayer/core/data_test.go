package core

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchHeader(t *testing.T) {
	t.Run("BlockRange", func(t *testing.T) {
		header := NewBatchHeader(5, common.Hash{}, 50, 999, nil)

		start, end := header.BlockRange(1)
		assert.Equal(t, uint64(1000), start)
		assert.Equal(t, uint64(1050), end)

		start, end = NewBatchHeader(0, common.Hash{}, 0, 10, nil).BlockRange(1)
		assert.Equal(t, start, end)
	})

	t.Run("timestamp from extra data", func(t *testing.T) {
		extraData, err := extraDataArguments.Pack(
			big.NewInt(1_620_000_000), common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
		require.NoError(t, err)

		header := NewBatchHeader(1, common.HexToHash("0x01"), 1, 0, extraData)
		assert.Equal(t, uint64(1_620_000_000), header.Timestamp)

		assert.Equal(t, uint64(0), NewBatchHeader(1, common.Hash{}, 1, 0, []byte{1, 2, 3}).Timestamp)
		assert.Equal(t, uint64(0), NewBatchHeader(1, common.Hash{}, 1, 0, nil).Timestamp)
	})

	t.Run("ToContract", func(t *testing.T) {
		header := NewBatchHeader(3, common.HexToHash("0xaa"), 4, 100, nil)
		contractHeader := header.ToContract()

		assert.Equal(t, int64(3), contractHeader.BatchIndex.Int64())
		assert.Equal(t, [32]byte(common.HexToHash("0xaa")), contractHeader.BatchRoot)
		assert.Equal(t, int64(4), contractHeader.BatchSize.Int64())
		assert.Equal(t, int64(100), contractHeader.PrevTotalElements.Int64())
		assert.Equal(t, []byte{}, contractHeader.ExtraData)
	})
}

func TestRelayStatus_String(t *testing.T) {
	assert.Equal(t, "relayed", RelayStatusRelayed.String())
	assert.Equal(t, "already relayed", RelayStatusAlreadyRelayed.String())
	assert.Equal(t, "failed", RelayStatusFailed.String())
	assert.Equal(t, "unknown(9)", RelayStatus(9).String())

	outcome := RelayOutcome{Status: RelayStatusFailed, Err: errors.New("boom")}
	assert.EqualError(t, outcome.Err, "boom")
}
