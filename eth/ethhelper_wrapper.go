package eth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	relayerCommon "github.com/Ethernal-Tech/ovm-message-relayer/common"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hashicorp/go-hclog"
)

// EthHelperWrapper lazily dials the node and drops the client after connection errors
// so the next call reconnects
type EthHelperWrapper struct {
	wallet      ethtxhelper.IEthTxWallet
	ethTxHelper ethtxhelper.IEthTxHelper
	opts        []ethtxhelper.TxRelayerOption
	lock        sync.Mutex
	logger      hclog.Logger
}

func NewEthHelperWrapper(
	logger hclog.Logger,
	opts ...ethtxhelper.TxRelayerOption,
) *EthHelperWrapper {
	return &EthHelperWrapper{
		opts:   append([]ethtxhelper.TxRelayerOption(nil), opts...),
		logger: logger,
	}
}

func NewEthHelperWrapperWithWallet(
	wallet ethtxhelper.IEthTxWallet, logger hclog.Logger,
	opts ...ethtxhelper.TxRelayerOption,
) *EthHelperWrapper {
	return &EthHelperWrapper{
		wallet: wallet,
		opts:   append([]ethtxhelper.TxRelayerOption(nil), opts...),
		logger: logger,
	}
}

func (e *EthHelperWrapper) GetEthHelper() (ethtxhelper.IEthTxHelper, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.ethTxHelper != nil {
		return e.ethTxHelper, nil
	}

	ethTxHelper, err := ethtxhelper.NewEThTxHelper(e.opts...)
	if err != nil {
		return nil, fmt.Errorf("error while NewEThTxHelper: %w", err)
	}

	e.ethTxHelper = ethTxHelper

	return ethTxHelper, nil
}

func (e *EthHelperWrapper) GetWallet() ethtxhelper.IEthTxWallet {
	return e.wallet
}

func (e *EthHelperWrapper) ProcessError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error

	if errors.Is(err, net.ErrClosed) || relayerCommon.IsContextDoneErr(err) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		e.lock.Lock()
		e.ethTxHelper = nil
		e.lock.Unlock()
	}

	return err
}

// SendTx should be called by all public methods that send tx to the chain.
// It returns receipt (if any) and error if tx failed to be sent or included
func (e *EthHelperWrapper) SendTx(
	ctx context.Context, txOpts bind.TransactOpts, handler ethtxhelper.SendTxFunc,
) (*types.Receipt, error) {
	if e.wallet == nil {
		return nil, errors.New("wallet is not set")
	}

	ethTxHelper, err := e.GetEthHelper()
	if err != nil {
		return nil, fmt.Errorf("error while GetEthHelper: %w", err)
	}

	tx, err := ethTxHelper.SendTx(ctx, e.wallet, txOpts, handler)
	if err != nil {
		return nil, fmt.Errorf("error while SendTx: %w", e.ProcessError(err))
	}

	txHashStr := tx.Hash().String()

	e.logger.Info("tx has been sent", "hash", txHashStr, "gas limit", tx.Gas(), "gas price", tx.GasPrice())

	receipt, err := ethTxHelper.WaitForReceipt(ctx, txHashStr)
	if err != nil {
		return nil, fmt.Errorf("failed to receive receipt for tx %s, gas limit = %d, gas price = %s: %w",
			txHashStr, tx.Gas(), tx.GasPrice(), e.ProcessError(err))
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt,
			fmt.Errorf("tx receipt status is unsuccessful for %s, gas limit = %d, gas price = %s",
				txHashStr, tx.Gas(), tx.GasPrice())
	}

	e.logger.Info("tx has been included in block", "hash", txHashStr,
		"block", receipt.BlockNumber, "block hash", receipt.BlockHash, "gas used", receipt.GasUsed)

	return receipt, nil
}
