package eth

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const appendStateBatchMethod = "appendStateBatch"

// StateBatchAppendedEvent is StateBatchAppended log together with its L1 location
type StateBatchAppendedEvent struct {
	BatchIndex        uint64
	BatchRoot         common.Hash
	BatchSize         uint64
	PrevTotalElements uint64
	ExtraData         []byte
	TransactionHash   common.Hash
	BlockNumber       uint64
}

type IStateCommitmentChainSmartContract interface {
	GetTotalBatches(ctx context.Context) (uint64, error)
	// GetStateBatchAppended returns nil, nil when the batch has not been appended yet
	GetStateBatchAppended(ctx context.Context, batchIndex uint64) (*StateBatchAppendedEvent, error)
	GetAppendedStateRoots(ctx context.Context, txHash common.Hash) ([]common.Hash, error)
	InsideFraudProofWindow(ctx context.Context, header contractbinding.LibOVMCodecChainBatchHeader) (bool, error)
}

type StateCommitmentChainSmartContractImpl struct {
	smartContractAddress common.Address
	startBlock           uint64
	ethHelper            *EthHelperWrapper
}

var _ IStateCommitmentChainSmartContract = (*StateCommitmentChainSmartContractImpl)(nil)

func NewStateCommitmentChainSmartContract(
	smartContractAddress string, startBlock uint64, ethHelper *EthHelperWrapper,
) *StateCommitmentChainSmartContractImpl {
	return &StateCommitmentChainSmartContractImpl{
		smartContractAddress: common.HexToAddress(smartContractAddress),
		startBlock:           startBlock,
		ethHelper:            ethHelper,
	}
}

func (sc *StateCommitmentChainSmartContractImpl) GetTotalBatches(ctx context.Context) (uint64, error) {
	contract, err := sc.getContract()
	if err != nil {
		return 0, err
	}

	total, err := contract.GetTotalBatches(&bind.CallOpts{
		Context: ctx,
	})
	if err != nil {
		return 0, sc.ethHelper.ProcessError(err)
	}

	return total.Uint64(), nil
}

func (sc *StateCommitmentChainSmartContractImpl) GetStateBatchAppended(
	ctx context.Context, batchIndex uint64,
) (*StateBatchAppendedEvent, error) {
	contract, err := sc.getContract()
	if err != nil {
		return nil, err
	}

	it, err := contract.FilterStateBatchAppended(&bind.FilterOpts{
		Start:   sc.startBlock,
		Context: ctx,
	}, []*big.Int{new(big.Int).SetUint64(batchIndex)})
	if err != nil {
		return nil, sc.ethHelper.ProcessError(err)
	}

	defer it.Close()

	var (
		result   *StateBatchAppendedEvent
		logIndex uint
	)

	// a batch deleted by a fraud proof is appended again under the same index, the latest log wins
	for it.Next() {
		raw := it.Event.Raw
		if result != nil && (raw.BlockNumber < result.BlockNumber ||
			raw.BlockNumber == result.BlockNumber && raw.Index < logIndex) {
			continue
		}

		logIndex = raw.Index
		result = &StateBatchAppendedEvent{
			BatchIndex:        it.Event.BatchIndex.Uint64(),
			BatchRoot:         it.Event.BatchRoot,
			BatchSize:         it.Event.BatchSize.Uint64(),
			PrevTotalElements: it.Event.PrevTotalElements.Uint64(),
			ExtraData:         it.Event.ExtraData,
			TransactionHash:   raw.TxHash,
			BlockNumber:       raw.BlockNumber,
		}
	}

	if err := it.Error(); err != nil {
		return nil, sc.ethHelper.ProcessError(err)
	}

	return result, nil
}

// GetAppendedStateRoots decodes state roots from the appendStateBatch transaction input
func (sc *StateCommitmentChainSmartContractImpl) GetAppendedStateRoots(
	ctx context.Context, txHash common.Hash,
) ([]common.Hash, error) {
	ethTxHelper, err := sc.ethHelper.GetEthHelper()
	if err != nil {
		return nil, err
	}

	tx, _, err := ethTxHelper.GetClient().TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, sc.ethHelper.ProcessError(err)
	}

	return DecodeAppendStateBatchInput(tx.Data())
}

func (sc *StateCommitmentChainSmartContractImpl) InsideFraudProofWindow(
	ctx context.Context, header contractbinding.LibOVMCodecChainBatchHeader,
) (bool, error) {
	contract, err := sc.getContract()
	if err != nil {
		return false, err
	}

	inside, err := contract.InsideFraudProofWindow(&bind.CallOpts{
		Context: ctx,
	}, header)
	if err != nil {
		return false, sc.ethHelper.ProcessError(err)
	}

	return inside, nil
}

func (sc *StateCommitmentChainSmartContractImpl) getContract() (*contractbinding.StateCommitmentChain, error) {
	ethTxHelper, err := sc.ethHelper.GetEthHelper()
	if err != nil {
		return nil, err
	}

	return contractbinding.NewStateCommitmentChain(sc.smartContractAddress, ethTxHelper.GetClient())
}

// DecodeAppendStateBatchInput unpacks appendStateBatch(bytes32[],uint256) call data
func DecodeAppendStateBatchInput(data []byte) ([]common.Hash, error) {
	parsed, err := contractbinding.StateCommitmentChainMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	method := parsed.Methods[appendStateBatchMethod]

	if len(data) < 4 || !bytes.Equal(data[:4], method.ID) {
		return nil, fmt.Errorf("transaction input is not %s call", appendStateBatchMethod)
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s input: %w", appendStateBatchMethod, err)
	}

	batch, ok := args[0].([][32]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected %s batch type %T", appendStateBatchMethod, args[0])
	}

	roots := make([]common.Hash, len(batch))
	for i, root := range batch {
		roots[i] = common.Hash(root)
	}

	return roots, nil
}
