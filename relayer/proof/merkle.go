package proof

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// keccak256 of 32 zero bytes, used to pad leaves to a power of two
	defaultLeaf = crypto.Keccak256Hash(common.Hash{}.Bytes())

	errEmptyTree = errors.New("merkle tree has no leaves")
)

// padLeaves extends leaves with defaultLeaf up to the next power of two
func padLeaves(leaves []common.Hash) []common.Hash {
	size := 1
	if len(leaves) > 1 {
		size = 1 << bits.Len(uint(len(leaves)-1))
	}

	padded := make([]common.Hash, size)
	copy(padded, leaves)

	for i := len(leaves); i < size; i++ {
		padded[i] = defaultLeaf
	}

	return padded
}

func hashPair(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left.Bytes(), right.Bytes())
}

// GetMerkleRoot returns the root of the tree built over the padded leaves
func GetMerkleRoot(leaves []common.Hash) (common.Hash, error) {
	if len(leaves) == 0 {
		return common.Hash{}, errEmptyTree
	}

	layer := padLeaves(leaves)

	for len(layer) > 1 {
		next := make([]common.Hash, len(layer)/2)
		for i := range next {
			next[i] = hashPair(layer[2*i], layer[2*i+1])
		}

		layer = next
	}

	return layer[0], nil
}

// GetMerkleProof returns siblings of the leaf at index, bottom up
func GetMerkleProof(leaves []common.Hash, index uint64) ([]common.Hash, error) {
	if len(leaves) == 0 {
		return nil, errEmptyTree
	}

	if index >= uint64(len(leaves)) {
		return nil, fmt.Errorf("leaf index %d out of range, tree has %d leaves", index, len(leaves))
	}

	layer := padLeaves(leaves)
	siblings := make([]common.Hash, 0, bits.Len(uint(len(layer)))-1)

	for len(layer) > 1 {
		siblings = append(siblings, layer[index^1])

		next := make([]common.Hash, len(layer)/2)
		for i := range next {
			next[i] = hashPair(layer[2*i], layer[2*i+1])
		}

		layer = next
		index /= 2
	}

	return siblings, nil
}

// VerifyMerkleProof checks that leaf at index together with siblings hashes to root
func VerifyMerkleProof(root, leaf common.Hash, index uint64, siblings []common.Hash) bool {
	computed := leaf

	for _, sibling := range siblings {
		if index%2 == 0 {
			computed = hashPair(computed, sibling)
		} else {
			computed = hashPair(sibling, computed)
		}

		index /= 2
	}

	return computed == root
}
