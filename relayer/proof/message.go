package proof

import (
	"errors"
	"fmt"

	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// relayMessage(address,address,bytes,uint256) is the layout L2 messenger stores and hashes
var relayMessageMethod = func() abi.Method {
	addressType, _ := abi.NewType("address", "", nil)
	bytesType, _ := abi.NewType("bytes", "", nil)
	uint256Type, _ := abi.NewType("uint256", "", nil)

	return abi.NewMethod("relayMessage", "relayMessage", abi.Function, "nonpayable", false, false,
		abi.Arguments{
			{Name: "_target", Type: addressType},
			{Name: "_sender", Type: addressType},
			{Name: "_message", Type: bytesType},
			{Name: "_messageNonce", Type: uint256Type},
		}, nil)
}()

// EncodeCrossDomainMessage returns relayMessage call data for the message
func EncodeCrossDomainMessage(message core.CrossDomainMessage) ([]byte, error) {
	if message.MessageNonce == nil {
		return nil, errors.New("message nonce is missing")
	}

	packed, err := relayMessageMethod.Inputs.Pack(
		message.Target, message.Sender, message.Message, message.MessageNonce)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cross domain message: %w", err)
	}

	return append(append([]byte{}, relayMessageMethod.ID...), packed...), nil
}

func GetCrossDomainMessageHash(message core.CrossDomainMessage) (common.Hash, error) {
	encoded, err := EncodeCrossDomainMessage(message)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(encoded), nil
}

// GetMessageStorageSlot returns slot of sentMessages[keccak256(encodedMessage ++ l2Messenger)]
// inside the L2 to L1 message passer (mapping at slot zero)
func GetMessageStorageSlot(encodedMessage []byte, l2Messenger common.Address) common.Hash {
	messageHash := crypto.Keccak256(encodedMessage, l2Messenger.Bytes())

	return crypto.Keccak256Hash(messageHash, common.Hash{}.Bytes())
}
