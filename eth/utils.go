package eth

import (
	"fmt"

	"github.com/Ethernal-Tech/cardano-infrastructure/secrets"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/ethereum/go-ethereum/common"
)

const relayerKeyName = "relayer_evm_key"

var (
	// OVM_L2ToL1MessagePasser predeploy holding sent message hashes in its storage
	L2ToL1MessagePasserAddress = common.HexToAddress("0x4200000000000000000000000000000000000000")
	// OVM_L2CrossDomainMessenger predeploy
	L2CrossDomainMessengerAddress = common.HexToAddress("0x4200000000000000000000000000000000000007")
)

func getRelayerKeyName() string {
	return fmt.Sprintf("%s%s", secrets.CardanoKeyLocalPrefix, relayerKeyName)
}

func GetRelayerEVMPrivateKey(secretsManager secrets.SecretsManager) (*ethtxhelper.EthTxWallet, error) {
	pkBytes, err := secretsManager.GetSecret(getRelayerKeyName())
	if err != nil {
		return nil, err
	}

	return ethtxhelper.NewEthTxWallet(string(pkBytes))
}

// CreateAndSaveRelayerEVMPrivateKey stores privateKey (or a freshly generated key when empty)
// inside the secrets manager. Existing key is kept unless forceRegenerate is set
func CreateAndSaveRelayerEVMPrivateKey(
	secretsManager secrets.SecretsManager, privateKey string, forceRegenerate bool,
) (*ethtxhelper.EthTxWallet, error) {
	keyName := getRelayerKeyName()

	if secretsManager.HasSecret(keyName) {
		if !forceRegenerate {
			return GetRelayerEVMPrivateKey(secretsManager)
		}

		if err := secretsManager.RemoveSecret(keyName); err != nil {
			return nil, err
		}
	}

	var (
		ethWallet *ethtxhelper.EthTxWallet
		err       error
	)

	if privateKey != "" {
		ethWallet, err = ethtxhelper.NewEthTxWallet(privateKey)
	} else {
		ethWallet, err = ethtxhelper.GenerateNewEthTxWallet()
	}

	if err != nil {
		return nil, err
	}

	return ethWallet, ethWallet.Save(secretsManager, keyName)
}
