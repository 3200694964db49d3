package proof

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

var errValueNotFound = errors.New("value not found in the trie")

// decodeProofNodes converts eth_getProof hex nodes into raw bytes
func decodeProofNodes(nodes []string) ([][]byte, error) {
	result := make([][]byte, len(nodes))

	for i, node := range nodes {
		bytes, err := hexutil.Decode(node)
		if err != nil {
			return nil, fmt.Errorf("invalid proof node %d: %w", i, err)
		}

		result[i] = bytes
	}

	return result, nil
}

// EncodeWitness rlp encodes proof nodes as a list of byte strings
func EncodeWitness(nodes [][]byte) ([]byte, error) {
	return rlp.EncodeToBytes(nodes)
}

// VerifySecureTrieProof verifies proof of keccak256(key) against root and returns the stored value
func VerifySecureTrieProof(root common.Hash, key []byte, nodes [][]byte) ([]byte, error) {
	proofDB := rawdb.NewMemoryDatabase()

	for _, node := range nodes {
		if err := proofDB.Put(crypto.Keccak256(node), node); err != nil {
			return nil, err
		}
	}

	value, err := trie.VerifyProof(root, crypto.Keccak256(key), proofDB)
	if err != nil {
		return nil, fmt.Errorf("invalid trie proof: %w", err)
	}

	if len(value) == 0 {
		return nil, errValueNotFound
	}

	return value, nil
}
