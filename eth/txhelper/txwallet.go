package ethtxhelper

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"

	"github.com/Ethernal-Tech/cardano-infrastructure/secrets"
	relayerCommon "github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type IEthTxWallet interface {
	GetTransactOpts(chainID *big.Int) (*bind.TransactOpts, error)
	GetAddress() common.Address
}

type EthTxWallet struct {
	addr       common.Address
	privateKey *ecdsa.PrivateKey
}

var _ IEthTxWallet = (*EthTxWallet)(nil)

// NewEthTxWallet creates wallet from the hex encoded private key (0x prefix is optional)
func NewEthTxWallet(pk string) (*EthTxWallet, error) {
	pkBytes, err := relayerCommon.DecodeHex(pk)
	if err != nil {
		return nil, err
	}

	privateKey, err := crypto.ToECDSA(pkBytes)
	if err != nil {
		return nil, err
	}

	return newEthTxWallet(privateKey), nil
}

func GenerateNewEthTxWallet() (*EthTxWallet, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}

	return newEthTxWallet(privateKey), nil
}

func newEthTxWallet(privateKey *ecdsa.PrivateKey) *EthTxWallet {
	return &EthTxWallet{
		privateKey: privateKey,
		addr:       crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

func (w EthTxWallet) GetTransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(w.privateKey, chainID)
}

func (w EthTxWallet) GetAddress() common.Address {
	return w.addr
}

func (w EthTxWallet) GetAddressHex() string {
	return w.addr.String()
}

func (w EthTxWallet) GetPrivateKeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(w.privateKey))
}

// Save stores hex encoded private key under keyName inside the secrets manager
func (w EthTxWallet) Save(secretsManager secrets.SecretsManager, keyName string) error {
	return secretsManager.SetSecret(keyName, []byte(w.GetPrivateKeyHex()))
}
