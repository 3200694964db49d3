package core

import (
	"fmt"
	"math/big"

	"github.com/Ethernal-Tech/ovm-message-relayer/contractbinding"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type BatchIndex = uint64

var extraDataArguments = func() abi.Arguments {
	uint256Type, _ := abi.NewType("uint256", "", nil)
	addressType, _ := abi.NewType("address", "", nil)

	return abi.Arguments{{Type: uint256Type}, {Type: addressType}}
}()

// BatchHeader is the state commitment chain batch header
type BatchHeader struct {
	BatchIndex        BatchIndex
	BatchRoot         common.Hash
	BatchSize         uint64
	PrevTotalElements uint64
	ExtraData         []byte
	// Timestamp of the batch submission, zero when it can not be decoded from ExtraData
	Timestamp uint64
}

func NewBatchHeader(
	batchIndex BatchIndex, batchRoot common.Hash, batchSize, prevTotalElements uint64, extraData []byte,
) BatchHeader {
	return BatchHeader{
		BatchIndex:        batchIndex,
		BatchRoot:         batchRoot,
		BatchSize:         batchSize,
		PrevTotalElements: prevTotalElements,
		ExtraData:         extraData,
		Timestamp:         decodeExtraDataTimestamp(extraData),
	}
}

// BlockRange returns the half open [start, end) range of L2 blocks covered by the batch
func (h BatchHeader) BlockRange(numGenesisBlocks uint64) (start uint64, end uint64) {
	start = h.PrevTotalElements + numGenesisBlocks

	return start, start + h.BatchSize
}

func (h BatchHeader) ToContract() contractbinding.LibOVMCodecChainBatchHeader {
	extraData := h.ExtraData
	if extraData == nil {
		extraData = []byte{}
	}

	return contractbinding.LibOVMCodecChainBatchHeader{
		BatchIndex:        new(big.Int).SetUint64(h.BatchIndex),
		BatchRoot:         h.BatchRoot,
		BatchSize:         new(big.Int).SetUint64(h.BatchSize),
		PrevTotalElements: new(big.Int).SetUint64(h.PrevTotalElements),
		ExtraData:         extraData,
	}
}

func (h BatchHeader) String() string {
	return fmt.Sprintf("batch %d (prev total elements = %d, size = %d, root = %s)",
		h.BatchIndex, h.PrevTotalElements, h.BatchSize, h.BatchRoot)
}

// StateRootBatch is published batch header together with the appended state roots
type StateRootBatch struct {
	Header          BatchHeader
	StateRoots      []common.Hash
	TransactionHash common.Hash
}

type SentMessageEvent struct {
	TransactionHash common.Hash
	BlockNumber     uint64
	LogIndex        uint
	Target          common.Address
	Sender          common.Address
	Message         []byte
	MessageNonce    *big.Int
	GasLimit        *big.Int
}

type CrossDomainMessage struct {
	Target       common.Address
	Sender       common.Address
	Message      []byte
	MessageNonce *big.Int
}

type MessageProof struct {
	Message CrossDomainMessage
	Proof   contractbinding.IOVML1CrossDomainMessengerL2MessageInclusionProof
}

type RelayStatus int

const (
	RelayStatusRelayed RelayStatus = iota
	RelayStatusAlreadyRelayed
	RelayStatusFailed
)

func (s RelayStatus) String() string {
	switch s {
	case RelayStatusRelayed:
		return "relayed"
	case RelayStatusAlreadyRelayed:
		return "already relayed"
	case RelayStatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

type RelayOutcome struct {
	Status      RelayStatus
	MessageHash common.Hash
	RelayTxHash common.Hash
	Err         error
}

// decodeExtraDataTimestamp reads timestamp from abi.encode(uint256 timestamp, address sequencer)
func decodeExtraDataTimestamp(extraData []byte) uint64 {
	values, err := extraDataArguments.Unpack(extraData)
	if err != nil || len(values) == 0 {
		return 0
	}

	timestamp, ok := values[0].(*big.Int)
	if !ok || !timestamp.IsUint64() {
		return 0
	}

	return timestamp.Uint64()
}
