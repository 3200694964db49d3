package proof

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProofBuilder(t *testing.T) {
	ctx := context.Background()
	txHash := common.HexToHash("0xabcd")
	l2Messenger := eth.L2CrossDomainMessengerAddress
	messagePasser := eth.L2ToL1MessagePasserAddress

	stateRoots := testLeaves(3)
	batchRoot, err := GetMerkleRoot(stateRoots)
	require.NoError(t, err)

	batch := &core.StateRootBatch{
		Header:     core.NewBatchHeader(4, batchRoot, 3, 10, nil),
		StateRoots: stateRoots,
	}

	sentMessage := eth.SentMessageLog{
		TransactionHash: txHash,
		BlockNumber:     12, // genesis 1 + prev 10 => index 1
		Target:          common.HexToAddress("0x01"),
		Sender:          common.HexToAddress("0x02"),
		Message:         []byte{0x0a, 0x0b},
		MessageNonce:    big.NewInt(3),
	}

	message := core.CrossDomainMessage{
		Target:       sentMessage.Target,
		Sender:       sentMessage.Sender,
		Message:      sentMessage.Message,
		MessageNonce: sentMessage.MessageNonce,
	}

	encoded, err := EncodeCrossDomainMessage(message)
	require.NoError(t, err)

	slot := GetMessageStorageSlot(encoded, l2Messenger)
	storageRoot, storageNodes := singleLeafTrie(t, slot.Bytes(), []byte{0x01})
	accountNode := []byte{0xc0}

	accountResult := &gethclient.AccountResult{
		AccountProof: []string{hexutil.Encode(accountNode)},
		StorageHash:  storageRoot,
		StorageProof: []gethclient.StorageResult{{
			Key:   slot.Hex(),
			Value: big.NewInt(1),
			Proof: []string{hexutil.Encode(storageNodes[0])},
		}},
	}

	newMocks := func() (*eth.L2MessengerSmartContractMock, *eth.L2StateReaderMock) {
		messengerMock := &eth.L2MessengerSmartContractMock{}
		messengerMock.On("GetAddress").Return(l2Messenger)

		return messengerMock, &eth.L2StateReaderMock{}
	}

	t.Run("valid", func(t *testing.T) {
		messengerMock, stateMock := newMocks()
		messengerMock.On("GetSentMessagesByTransaction", ctx, txHash).Return([]eth.SentMessageLog{sentMessage}, nil)
		stateMock.On("GetStorageProof", ctx, messagePasser, []common.Hash{slot}, uint64(12)).Return(accountResult, nil)

		proofs, err := NewProofBuilder(messengerMock, stateMock, 1, hclog.NewNullLogger()).BuildProofs(ctx, batch, txHash)

		require.NoError(t, err)
		require.Len(t, proofs, 1)

		proof := proofs[0].Proof
		assert.Equal(t, message, proofs[0].Message)
		assert.Equal(t, [32]byte(stateRoots[1]), proof.StateRoot)
		assert.Equal(t, batch.Header.ToContract(), proof.StateRootBatchHeader)
		assert.Equal(t, big.NewInt(1), proof.StateRootProof.Index)
		require.Len(t, proof.StateRootProof.Siblings, 2)

		siblings := []common.Hash{proof.StateRootProof.Siblings[0], proof.StateRootProof.Siblings[1]}
		assert.True(t, VerifyMerkleProof(batchRoot, stateRoots[1], 1, siblings))

		expectedStateWitness, _ := EncodeWitness([][]byte{accountNode})
		expectedStorageWitness, _ := EncodeWitness(storageNodes)

		assert.Equal(t, expectedStateWitness, proof.StateTrieWitness)
		assert.Equal(t, expectedStorageWitness, proof.StorageTrieWitness)
	})

	t.Run("no messages", func(t *testing.T) {
		messengerMock, stateMock := newMocks()
		messengerMock.On("GetSentMessagesByTransaction", ctx, txHash).Return([]eth.SentMessageLog{}, nil)

		proofs, err := NewProofBuilder(messengerMock, stateMock, 1, hclog.NewNullLogger()).BuildProofs(ctx, batch, txHash)

		require.NoError(t, err)
		require.Empty(t, proofs)
		stateMock.AssertNotCalled(t, "GetStorageProof", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("receipt error", func(t *testing.T) {
		messengerMock, stateMock := newMocks()
		messengerMock.On("GetSentMessagesByTransaction", ctx, txHash).Return(nil, errors.New("rpc down"))

		_, err := NewProofBuilder(messengerMock, stateMock, 1, hclog.NewNullLogger()).BuildProofs(ctx, batch, txHash)

		require.ErrorContains(t, err, "rpc down")
	})

	t.Run("batch root mismatch", func(t *testing.T) {
		messengerMock, stateMock := newMocks()
		messengerMock.On("GetSentMessagesByTransaction", ctx, txHash).Return([]eth.SentMessageLog{sentMessage}, nil)

		invalidBatch := &core.StateRootBatch{
			Header:     core.NewBatchHeader(4, common.HexToHash("0x99"), 3, 10, nil),
			StateRoots: stateRoots,
		}

		_, err := NewProofBuilder(messengerMock, stateMock, 1, hclog.NewNullLogger()).BuildProofs(
			ctx, invalidBatch, txHash)

		require.ErrorContains(t, err, "produce root")
	})

	t.Run("block outside batch", func(t *testing.T) {
		messengerMock, stateMock := newMocks()
		outside := sentMessage
		outside.BlockNumber = 14

		messengerMock.On("GetSentMessagesByTransaction", ctx, txHash).Return([]eth.SentMessageLog{outside}, nil)

		_, err := NewProofBuilder(messengerMock, stateMock, 1, hclog.NewNullLogger()).BuildProofs(ctx, batch, txHash)

		require.ErrorIs(t, err, errMessageNotInBatch)
	})

	t.Run("message not stored", func(t *testing.T) {
		messengerMock, stateMock := newMocks()
		otherRoot, otherNodes := singleLeafTrie(t, common.HexToHash("0x77").Bytes(), []byte{0x01})

		messengerMock.On("GetSentMessagesByTransaction", ctx, txHash).Return([]eth.SentMessageLog{sentMessage}, nil)
		stateMock.On("GetStorageProof", ctx, messagePasser, []common.Hash{slot}, uint64(12)).Return(
			&gethclient.AccountResult{
				AccountProof: []string{hexutil.Encode(accountNode)},
				StorageHash:  otherRoot,
				StorageProof: []gethclient.StorageResult{{Proof: []string{hexutil.Encode(otherNodes[0])}}},
			}, nil)

		_, err := NewProofBuilder(messengerMock, stateMock, 1, hclog.NewNullLogger()).BuildProofs(ctx, batch, txHash)

		require.ErrorIs(t, err, errValueNotFound)
	})
}
