package proof

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/hashicorp/go-hclog"
)

var (
	errMessageNotInBatch = errors.New("message block is not part of the batch")
	errInvalidBatchProof = errors.New("batch inclusion proof does not lead to the batch root")
)

type ProofBuilderImpl struct {
	l2Messenger      eth.IL2MessengerSmartContract
	l2StateReader    eth.IL2StateReader
	messagePasser    common.Address
	numGenesisBlocks uint64
	logger           hclog.Logger
}

var _ core.ProofBuilder = (*ProofBuilderImpl)(nil)

func NewProofBuilder(
	l2Messenger eth.IL2MessengerSmartContract, l2StateReader eth.IL2StateReader,
	numGenesisBlocks uint64, logger hclog.Logger,
) *ProofBuilderImpl {
	return &ProofBuilderImpl{
		l2Messenger:      l2Messenger,
		l2StateReader:    l2StateReader,
		messagePasser:    eth.L2ToL1MessagePasserAddress,
		numGenesisBlocks: numGenesisBlocks,
		logger:           logger,
	}
}

// BuildProofs builds inclusion proof for every message sent by the L2 transaction.
// The transaction must be included in the given batch
func (b *ProofBuilderImpl) BuildProofs(
	ctx context.Context, batch *core.StateRootBatch, txHash common.Hash,
) ([]core.MessageProof, error) {
	sentMessages, err := b.l2Messenger.GetSentMessagesByTransaction(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sent messages for transaction %s: %w", txHash, err)
	}

	batchRoot, err := GetMerkleRoot(batch.StateRoots)
	if err != nil {
		return nil, err
	}

	if batchRoot != batch.Header.BatchRoot {
		return nil, fmt.Errorf("state roots of %s produce root %s", batch.Header, batchRoot)
	}

	result := make([]core.MessageProof, 0, len(sentMessages))

	for _, sentMessage := range sentMessages {
		message := core.CrossDomainMessage{
			Target:       sentMessage.Target,
			Sender:       sentMessage.Sender,
			Message:      sentMessage.Message,
			MessageNonce: sentMessage.MessageNonce,
		}

		inclusionProof, err := b.buildProof(ctx, batch, message, sentMessage.BlockNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to build proof for message with nonce %s from transaction %s: %w",
				message.MessageNonce, txHash, err)
		}

		result = append(result, core.MessageProof{
			Message: message,
			Proof:   inclusionProof,
		})
	}

	b.logger.Debug("Proofs built", "tx", txHash, "count", len(result))

	return result, nil
}

func (b *ProofBuilderImpl) buildProof(
	ctx context.Context, batch *core.StateRootBatch, message core.CrossDomainMessage, blockNumber uint64,
) (contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof, error) {
	var emptyProof contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof

	start, end := batch.Header.BlockRange(b.numGenesisBlocks)
	if blockNumber < start || blockNumber >= end {
		return emptyProof, fmt.Errorf("%w: block %d, range [%d, %d)", errMessageNotInBatch, blockNumber, start, end)
	}

	indexInBatch := blockNumber - start

	if indexInBatch >= uint64(len(batch.StateRoots)) {
		return emptyProof, fmt.Errorf("%w: index %d, state roots %d",
			errMessageNotInBatch, indexInBatch, len(batch.StateRoots))
	}

	encodedMessage, err := EncodeCrossDomainMessage(message)
	if err != nil {
		return emptyProof, err
	}

	slot := GetMessageStorageSlot(encodedMessage, b.l2Messenger.GetAddress())

	accountResult, err := b.l2StateReader.GetStorageProof(ctx, b.messagePasser, []common.Hash{slot}, blockNumber)
	if err != nil {
		return emptyProof, fmt.Errorf("failed to retrieve storage proof at block %d: %w", blockNumber, err)
	}

	stateTrieWitness, storageTrieWitness, err := b.buildWitnesses(accountResult, slot)
	if err != nil {
		return emptyProof, err
	}

	siblings, err := GetMerkleProof(batch.StateRoots, indexInBatch)
	if err != nil {
		return emptyProof, err
	}

	if !VerifyMerkleProof(batch.Header.BatchRoot, batch.StateRoots[indexInBatch], indexInBatch, siblings) {
		return emptyProof, fmt.Errorf("%w: state root %d of %s", errInvalidBatchProof, indexInBatch, batch.Header)
	}

	siblingsRaw := make([][32]byte, len(siblings))
	for i, sibling := range siblings {
		siblingsRaw[i] = sibling
	}

	return contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof{
		StateRoot:            batch.StateRoots[indexInBatch],
		StateRootBatchHeader: batch.Header.ToContract(),
		StateRootProof: contractbinding.LibOVMCodecChainInclusionProof{
			Index:    new(big.Int).SetUint64(indexInBatch),
			Siblings: siblingsRaw,
		},
		StateTrieWitness:   stateTrieWitness,
		StorageTrieWitness: storageTrieWitness,
	}, nil
}

// buildWitnesses verifies the storage proof against the returned storage hash and rlp encodes both proofs
func (b *ProofBuilderImpl) buildWitnesses(
	accountResult *gethclient.AccountResult, slot common.Hash,
) ([]byte, []byte, error) {
	if accountResult == nil || len(accountResult.StorageProof) == 0 {
		return nil, nil, errors.New("storage proof is missing")
	}

	accountNodes, err := decodeProofNodes(accountResult.AccountProof)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid account proof: %w", err)
	}

	storageNodes, err := decodeProofNodes(accountResult.StorageProof[0].Proof)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid storage proof: %w", err)
	}

	if _, err := VerifySecureTrieProof(accountResult.StorageHash, slot.Bytes(), storageNodes); err != nil {
		return nil, nil, fmt.Errorf("message is not stored in the message passer: %w", err)
	}

	stateTrieWitness, err := EncodeWitness(accountNodes)
	if err != nil {
		return nil, nil, err
	}

	storageTrieWitness, err := EncodeWitness(storageNodes)
	if err != nil {
		return nil, nil, err
	}

	return stateTrieWitness, storageTrieWitness, nil
}
