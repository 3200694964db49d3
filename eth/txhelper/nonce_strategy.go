package ethtxhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

type NonceStrategyType int

const (
	NonceNodePendingStrategy NonceStrategyType = iota
	NonceInMemoryStrategy
	NonceCombinedStrategy
)

// ParseNonceStrategyType maps configuration value to the nonce strategy.
// Empty value selects the node pending strategy
func ParseNonceStrategyType(value string) (NonceStrategyType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pending":
		return NonceNodePendingStrategy, nil
	case "memory":
		return NonceInMemoryStrategy, nil
	case "combined":
		return NonceCombinedStrategy, nil
	default:
		return NonceNodePendingStrategy, fmt.Errorf("unknown nonce strategy: %s", value)
	}
}

type NonceStrategy interface {
	GetNextNonce(ctx context.Context, client *ethclient.Client, addr common.Address) (uint64, error)
	UpdateNonce(addr common.Address, value uint64, success bool)
}

func NonceStrategyFactory(strategy NonceStrategyType) NonceStrategy {
	switch strategy {
	case NonceInMemoryStrategy:
		return &nonceInMemoryStrategyImpl{
			lastNonces: map[common.Address]uint64{},
		}
	case NonceCombinedStrategy:
		return &nonceCombinedStrategyImpl{
			lastNonces: map[common.Address]uint64{},
		}
	default:
		return &nonceNodePendingStrategyImpl{}
	}
}

type nonceNodePendingStrategyImpl struct{}

func (s *nonceNodePendingStrategyImpl) GetNextNonce(
	ctx context.Context, client *ethclient.Client, addr common.Address,
) (uint64, error) {
	return client.PendingNonceAt(ctx, addr)
}

func (s *nonceNodePendingStrategyImpl) UpdateNonce(common.Address, uint64, bool) {}

// nonceInMemoryStrategyImpl asks the node only once and then counts locally.
// A failed send forgets the address so the next call syncs with the node again
type nonceInMemoryStrategyImpl struct {
	lastNonces map[common.Address]uint64
	lock       sync.Mutex
}

func (s *nonceInMemoryStrategyImpl) GetNextNonce(
	ctx context.Context, client *ethclient.Client, addr common.Address,
) (uint64, error) {
	s.lock.Lock()
	value, exists := s.lastNonces[addr]
	s.lock.Unlock()

	if exists {
		return value + 1, nil
	}

	nextNonce, err := client.PendingNonceAt(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("error while getting next nonce: %w", err)
	}

	return nextNonce, nil
}

func (s *nonceInMemoryStrategyImpl) UpdateNonce(addr common.Address, value uint64, success bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if success {
		s.lastNonces[addr] = value
	} else {
		delete(s.lastNonces, addr)
	}
}

// nonceCombinedStrategyImpl uses max(node pending nonce, last used nonce + 1)
type nonceCombinedStrategyImpl struct {
	lastNonces map[common.Address]uint64
	lock       sync.Mutex
}

func (s *nonceCombinedStrategyImpl) GetNextNonce(
	ctx context.Context, client *ethclient.Client, addr common.Address,
) (uint64, error) {
	nextNonce, err := client.PendingNonceAt(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("error while PendingNonceAt: %w", err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if prevValue, exists := s.lastNonces[addr]; exists && prevValue >= nextNonce {
		nextNonce = prevValue + 1
	}

	return nextNonce, nil
}

func (s *nonceCombinedStrategyImpl) UpdateNonce(addr common.Address, value uint64, success bool) {
	if !success {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastNonces[addr] = value
}
