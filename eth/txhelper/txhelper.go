package ethtxhelper

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	relayerCommon "github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

type SendTxFunc func(*bind.TransactOpts) (*types.Transaction, error)

const (
	defaultGasLimit          = uint64(5_242_880) // 0x500000
	defaultGasFeeMultiplier  = 170               // 170%
	defaultReceiptRetriesCnt = 1000
	defaultReceiptWaitTime   = 300 * time.Millisecond
)

type IEthTxHelper interface {
	GetClient() *ethclient.Client
	GetChainID(ctx context.Context) (*big.Int, error)
	WaitForReceipt(ctx context.Context, hash string) (*types.Receipt, error)
	SendTx(ctx context.Context, wallet IEthTxWallet,
		txOpts bind.TransactOpts, sendTxHandler SendTxFunc) (*types.Transaction, error)
	EstimateGas(
		ctx context.Context, from, to common.Address, value *big.Int, gasLimitMultiplier float64,
		bindMetadata *bind.MetaData, method string, args ...interface{},
	) (uint64, uint64, error)
	PopulateTxOpts(ctx context.Context, from common.Address, txOpts *bind.TransactOpts) error
}

type EthTxHelperImpl struct {
	client            *ethclient.Client
	nodeURL           string
	receiptRetriesCnt uint64
	receiptWaitTime   time.Duration
	gasFeeMultiplier  uint64
	isDynamic         bool
	zeroGasPrice      bool
	defaultGasLimit   uint64
	chainID           *big.Int
	nonceStrategy     NonceStrategy
	mutex             sync.Mutex
}

var _ IEthTxHelper = (*EthTxHelperImpl)(nil)

func NewEThTxHelper(opts ...TxRelayerOption) (*EthTxHelperImpl, error) {
	t := &EthTxHelperImpl{
		receiptRetriesCnt: defaultReceiptRetriesCnt,
		receiptWaitTime:   defaultReceiptWaitTime,
		gasFeeMultiplier:  defaultGasFeeMultiplier,
		defaultGasLimit:   defaultGasLimit,
		nonceStrategy:     NonceStrategyFactory(NonceNodePendingStrategy),
	}
	for _, opt := range opts {
		opt(t)
	}

	client, err := ethclient.Dial(t.nodeURL)
	if err != nil {
		return nil, err
	}

	t.client = client

	return t, nil
}

func (t *EthTxHelperImpl) GetClient() *ethclient.Client {
	return t.client
}

// GetChainID returns the configured chain id or queries (and caches) it from the node
func (t *EthTxHelperImpl) GetChainID(ctx context.Context) (*big.Int, error) {
	if t.chainID != nil {
		return t.chainID, nil
	}

	chainID, err := t.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	t.chainID = chainID

	return chainID, nil
}

func (t *EthTxHelperImpl) WaitForReceipt(ctx context.Context, hash string) (*types.Receipt, error) {
	receipt, err := relayerCommon.ExecuteWithRetry(ctx, func(ctx context.Context) (*types.Receipt, error) {
		return t.client.TransactionReceipt(ctx, common.HexToHash(hash))
	},
		relayerCommon.WithRetryCount(t.receiptRetriesCnt),
		relayerCommon.WithRetryWaitTime(t.receiptWaitTime),
		relayerCommon.WithIsRetryableError(func(err error) bool {
			return errors.Is(err, ethereum.NotFound) || IsRetryableEthError(err)
		}))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("timeout while waiting for transaction %s to be processed", hash)
		}

		return nil, err
	}

	return receipt, nil
}

func (t *EthTxHelperImpl) SendTx(
	ctx context.Context, wallet IEthTxWallet, txOptsParam bind.TransactOpts, sendTxHandler SendTxFunc,
) (*types.Transaction, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	chainID, err := t.GetChainID(ctx)
	if err != nil {
		return nil, err
	}

	txOptsRes, err := wallet.GetTransactOpts(chainID)
	if err != nil {
		return nil, err
	}

	copyTxOpts(txOptsRes, &txOptsParam)

	if txOptsRes.Nonce == nil {
		nonce, err := t.nonceStrategy.GetNextNonce(ctx, t.client, wallet.GetAddress())
		if err != nil {
			return nil, err
		}

		txOptsRes.Nonce = new(big.Int).SetUint64(nonce)
	}

	if err := t.PopulateTxOpts(ctx, wallet.GetAddress(), txOptsRes); err != nil {
		return nil, err
	}

	tx, err := sendTxHandler(txOptsRes)

	t.nonceStrategy.UpdateNonce(wallet.GetAddress(), txOptsRes.Nonce.Uint64(), err == nil)

	return tx, err
}

func (t *EthTxHelperImpl) EstimateGas(
	ctx context.Context, from, to common.Address, value *big.Int, gasLimitMultiplier float64,
	bindMetadata *bind.MetaData, method string, args ...interface{},
) (uint64, uint64, error) {
	parsed, err := bindMetadata.GetAbi()
	if err != nil {
		return 0, 0, err
	}

	input, err := parsed.Pack(method, args...)
	if err != nil {
		return 0, 0, err
	}

	estimatedGas, err := t.GetClient().EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  input,
	})
	if err != nil {
		return 0, 0, err
	}

	return uint64(float64(estimatedGas) * gasLimitMultiplier), estimatedGas, nil
}

func (t *EthTxHelperImpl) PopulateTxOpts(
	ctx context.Context, from common.Address, txOpts *bind.TransactOpts,
) error {
	txOpts.Context = ctx
	txOpts.From = from

	// Nonce retrieval
	if txOpts.Nonce == nil {
		nonce, err := t.client.PendingNonceAt(ctx, txOpts.From)
		if err != nil {
			return err
		}

		txOpts.Nonce = new(big.Int).SetUint64(nonce)
	}

	if txOpts.GasLimit == 0 {
		txOpts.GasLimit = t.defaultGasLimit
	}

	// Gas price
	if !t.isDynamic {
		if txOpts.GasPrice == nil {
			if t.zeroGasPrice {
				txOpts.GasPrice = big.NewInt(0)
			} else {
				gasPrice, err := t.client.SuggestGasPrice(ctx)
				if err != nil {
					return err
				}

				txOpts.GasPrice = relayerCommon.MulPercentage(gasPrice, t.gasFeeMultiplier)
			}
		}
	} else if txOpts.GasFeeCap == nil || txOpts.GasTipCap == nil {
		gasTipCap, err := t.client.SuggestGasTipCap(ctx)
		if err != nil {
			return err
		}

		txOpts.GasTipCap = relayerCommon.MulPercentage(gasTipCap, t.gasFeeMultiplier)

		hs, err := t.client.FeeHistory(ctx, 1, nil, nil)
		if err != nil {
			return err
		}

		if len(hs.BaseFee) == 0 {
			return errors.New("fee history returned no base fee")
		}

		gasFeeCap := new(big.Int).Add(hs.BaseFee[len(hs.BaseFee)-1], gasTipCap)

		txOpts.GasFeeCap = relayerCommon.MulPercentage(gasFeeCap, t.gasFeeMultiplier)
	}

	return nil
}

type TxRelayerOption func(*EthTxHelperImpl)

func WithDynamicTx(value bool) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.isDynamic = value
	}
}

func WithNodeURL(nodeURL string) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.nodeURL = nodeURL
	}
}

// WithReceiptRetryConfig sets how many times and how often eth_getTransactionReceipt is polled
// before the transaction is considered timed out
func WithReceiptRetryConfig(retriesCnt uint64, waitTime time.Duration) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.receiptRetriesCnt = retriesCnt
		t.receiptWaitTime = waitTime
	}
}

func WithGasFeeMultiplier(gasFeeMultiplier uint64) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.gasFeeMultiplier = gasFeeMultiplier
	}
}

func WithZeroGasPrice(zeroGasPrice bool) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.zeroGasPrice = zeroGasPrice
	}
}

func WithDefaultGasLimit(gasLimit uint64) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.defaultGasLimit = gasLimit
	}
}

func WithChainID(chainID *big.Int) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.chainID = chainID
	}
}

func WithNonceStrategyType(strategy NonceStrategyType) TxRelayerOption {
	return func(t *EthTxHelperImpl) {
		t.nonceStrategy = NonceStrategyFactory(strategy)
	}
}

func copyTxOpts(dst, src *bind.TransactOpts) {
	dst.NoSend = src.NoSend
	dst.GasPrice = src.GasPrice
	dst.GasFeeCap = src.GasFeeCap
	dst.GasTipCap = src.GasTipCap
	dst.GasLimit = src.GasLimit
	dst.Nonce = src.Nonce
	dst.Value = src.Value
}
