package eth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
)

type IL2StateReader interface {
	// GetStorageProof returns eth_getProof result for the account storage slots at the given block
	GetStorageProof(
		ctx context.Context, account common.Address, slots []common.Hash, blockNumber uint64,
	) (*gethclient.AccountResult, error)
}

type L2StateReaderImpl struct {
	ethHelper *EthHelperWrapper
}

var _ IL2StateReader = (*L2StateReaderImpl)(nil)

func NewL2StateReader(ethHelper *EthHelperWrapper) *L2StateReaderImpl {
	return &L2StateReaderImpl{
		ethHelper: ethHelper,
	}
}

func (r *L2StateReaderImpl) GetStorageProof(
	ctx context.Context, account common.Address, slots []common.Hash, blockNumber uint64,
) (*gethclient.AccountResult, error) {
	ethTxHelper, err := r.ethHelper.GetEthHelper()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = slot.Hex()
	}

	result, err := gethclient.New(ethTxHelper.GetClient().Client()).GetProof(
		ctx, account, keys, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return nil, r.ethHelper.ProcessError(err)
	}

	return result, nil
}
