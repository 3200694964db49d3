package eth

import (
	"context"
	"errors"
	"math/big"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hashicorp/go-hclog"
)

const relayMessageMethod = "relayMessage"

// RelayMessageArgs are relayMessage arguments except the inclusion proof
type RelayMessageArgs struct {
	Target       common.Address
	Sender       common.Address
	Message      []byte
	MessageNonce *big.Int
}

type IL1MessengerSmartContract interface {
	RelayMessage(
		ctx context.Context, args RelayMessageArgs,
		proof contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof,
	) (*types.Receipt, error)
	SuccessfulMessages(ctx context.Context, messageHash common.Hash) (bool, error)
}

type L1MessengerSmartContractImpl struct {
	smartContractAddress common.Address
	ethHelper            *EthHelperWrapper
	gasLimitMultiplier   float64
	gasLimitHolder       *RelayGasLimitHolder
	logger               hclog.Logger
}

var _ IL1MessengerSmartContract = (*L1MessengerSmartContractImpl)(nil)

// NewL1MessengerSmartContract creates the L1 messenger wrapper. Relay gas limit is estimated and multiplied
// by gasLimitMultiplier. When estimation fails gasLimitHolder value is used instead, growing after each failed relay
func NewL1MessengerSmartContract(
	smartContractAddress string, ethHelper *EthHelperWrapper,
	gasLimitMultiplier float64, gasLimitHolder *RelayGasLimitHolder, logger hclog.Logger,
) *L1MessengerSmartContractImpl {
	return &L1MessengerSmartContractImpl{
		smartContractAddress: common.HexToAddress(smartContractAddress),
		ethHelper:            ethHelper,
		gasLimitMultiplier:   gasLimitMultiplier,
		gasLimitHolder:       gasLimitHolder,
		logger:               logger,
	}
}

func (sc *L1MessengerSmartContractImpl) RelayMessage(
	ctx context.Context, args RelayMessageArgs,
	proof contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof,
) (*types.Receipt, error) {
	if sc.ethHelper.GetWallet() == nil {
		return nil, errors.New("relayer wallet is not set")
	}

	ethTxHelper, err := sc.ethHelper.GetEthHelper()
	if err != nil {
		return nil, err
	}

	contract, err := contractbinding.NewL1CrossDomainMessenger(sc.smartContractAddress, ethTxHelper.GetClient())
	if err != nil {
		return nil, err
	}

	gasLimit := sc.gasLimitHolder.Current()

	estimatedGasLimit, estimatedGas, err := ethTxHelper.EstimateGas(
		ctx, sc.ethHelper.GetWallet().GetAddress(), sc.smartContractAddress, nil, sc.gasLimitMultiplier,
		contractbinding.L1CrossDomainMessengerMetaData, relayMessageMethod,
		args.Target, args.Sender, args.Message, args.MessageNonce, proof)
	if err != nil {
		sc.logger.Debug("relay gas estimation failed", "gas limit", gasLimit, "err", sc.ethHelper.ProcessError(err))
	} else {
		gasLimit = estimatedGasLimit

		sc.logger.Debug("relay gas estimated", "estimated", estimatedGas, "gas limit", gasLimit)
	}

	receipt, err := sc.ethHelper.SendTx(ctx, bind.TransactOpts{GasLimit: gasLimit},
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return contract.RelayMessage(opts, args.Target, args.Sender, args.Message, args.MessageNonce, proof)
		})

	sc.gasLimitHolder.Update(err)

	return receipt, err
}

func (sc *L1MessengerSmartContractImpl) SuccessfulMessages(ctx context.Context, messageHash common.Hash) (bool, error) {
	ethTxHelper, err := sc.ethHelper.GetEthHelper()
	if err != nil {
		return false, err
	}

	contract, err := contractbinding.NewL1CrossDomainMessenger(sc.smartContractAddress, ethTxHelper.GetClient())
	if err != nil {
		return false, err
	}

	relayed, err := contract.SuccessfulMessages(&bind.CallOpts{
		Context: ctx,
	}, messageHash)
	if err != nil {
		return false, sc.ethHelper.ProcessError(err)
	}

	return relayed, nil
}
