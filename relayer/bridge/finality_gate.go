package bridge

import (
	"context"
	"fmt"

	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
)

// FinalityGateImpl treats batch as final once it is outside of the fraud proof window
type FinalityGateImpl struct {
	stateCommitmentChain eth.IStateCommitmentChainSmartContract
}

var _ core.FinalityGate = (*FinalityGateImpl)(nil)

func NewFinalityGate(stateCommitmentChain eth.IStateCommitmentChainSmartContract) *FinalityGateImpl {
	return &FinalityGateImpl{
		stateCommitmentChain: stateCommitmentChain,
	}
}

func (g *FinalityGateImpl) IsFinal(ctx context.Context, header core.BatchHeader) (bool, error) {
	inside, err := g.stateCommitmentChain.InsideFraudProofWindow(ctx, header.ToContract())
	if err != nil {
		return false, fmt.Errorf("failed to check fraud proof window for batch %d: %w", header.BatchIndex, err)
	}

	return !inside, nil
}
