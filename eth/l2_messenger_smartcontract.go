package eth

import (
	"context"
	"math/big"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const sentMessageEvent = "SentMessage"

// SentMessageLog is SentMessage event emitted by the L2 cross domain messenger
type SentMessageLog struct {
	TransactionHash common.Hash
	BlockNumber     uint64
	LogIndex        uint
	Target          common.Address
	Sender          common.Address
	Message         []byte
	MessageNonce    *big.Int
	GasLimit        *big.Int
}

type IL2MessengerSmartContract interface {
	GetAddress() common.Address
	// FilterSentMessages returns SentMessage logs from the inclusive block range
	FilterSentMessages(ctx context.Context, fromBlock, toBlock uint64) ([]SentMessageLog, error)
	GetSentMessagesByTransaction(ctx context.Context, txHash common.Hash) ([]SentMessageLog, error)
}

type L2MessengerSmartContractImpl struct {
	smartContractAddress common.Address
	ethHelper            *EthHelperWrapper
}

var _ IL2MessengerSmartContract = (*L2MessengerSmartContractImpl)(nil)

func NewL2MessengerSmartContract(
	smartContractAddress string, ethHelper *EthHelperWrapper,
) *L2MessengerSmartContractImpl {
	return &L2MessengerSmartContractImpl{
		smartContractAddress: common.HexToAddress(smartContractAddress),
		ethHelper:            ethHelper,
	}
}

func (sc *L2MessengerSmartContractImpl) GetAddress() common.Address {
	return sc.smartContractAddress
}

func (sc *L2MessengerSmartContractImpl) FilterSentMessages(
	ctx context.Context, fromBlock, toBlock uint64,
) ([]SentMessageLog, error) {
	contract, err := sc.getContract()
	if err != nil {
		return nil, err
	}

	it, err := contract.FilterSentMessage(&bind.FilterOpts{
		Start:   fromBlock,
		End:     &toBlock,
		Context: ctx,
	}, nil)
	if err != nil {
		return nil, sc.ethHelper.ProcessError(err)
	}

	defer it.Close()

	var result []SentMessageLog

	for it.Next() {
		result = append(result, newSentMessageLog(it.Event))
	}

	if err := it.Error(); err != nil {
		return nil, sc.ethHelper.ProcessError(err)
	}

	return result, nil
}

// GetSentMessagesByTransaction parses all SentMessage logs of this messenger from the transaction receipt
func (sc *L2MessengerSmartContractImpl) GetSentMessagesByTransaction(
	ctx context.Context, txHash common.Hash,
) ([]SentMessageLog, error) {
	ethTxHelper, err := sc.ethHelper.GetEthHelper()
	if err != nil {
		return nil, err
	}

	receipt, err := ethTxHelper.GetClient().TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, sc.ethHelper.ProcessError(err)
	}

	contract, err := sc.getContract()
	if err != nil {
		return nil, err
	}

	return ParseSentMessages(&contract.L2CrossDomainMessengerFilterer, sc.smartContractAddress, receipt.Logs)
}

func (sc *L2MessengerSmartContractImpl) getContract() (*contractbinding.L2CrossDomainMessenger, error) {
	ethTxHelper, err := sc.ethHelper.GetEthHelper()
	if err != nil {
		return nil, err
	}

	return contractbinding.NewL2CrossDomainMessenger(sc.smartContractAddress, ethTxHelper.GetClient())
}

// ParseSentMessages keeps receipt order and skips logs emitted by other contracts or events
func ParseSentMessages(
	filterer *contractbinding.L2CrossDomainMessengerFilterer, messenger common.Address, logs []*types.Log,
) ([]SentMessageLog, error) {
	parsed, err := contractbinding.L2CrossDomainMessengerMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	topic := parsed.Events[sentMessageEvent].ID

	var result []SentMessageLog

	for _, log := range logs {
		if log.Address != messenger || len(log.Topics) == 0 || log.Topics[0] != topic {
			continue
		}

		event, err := filterer.ParseSentMessage(*log)
		if err != nil {
			return nil, err
		}

		result = append(result, newSentMessageLog(event))
	}

	return result, nil
}

func newSentMessageLog(event *contractbinding.L2CrossDomainMessengerSentMessage) SentMessageLog {
	return SentMessageLog{
		TransactionHash: event.Raw.TxHash,
		BlockNumber:     event.Raw.BlockNumber,
		LogIndex:        event.Raw.Index,
		Target:          event.Target,
		Sender:          event.Sender,
		Message:         event.Message,
		MessageNonce:    event.MessageNonce,
		GasLimit:        event.GasLimit,
	}
}
