package bridge

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
)

type MessageScannerImpl struct {
	l2Messenger eth.IL2MessengerSmartContract
}

var _ core.MessageScanner = (*MessageScannerImpl)(nil)

func NewMessageScanner(l2Messenger eth.IL2MessengerSmartContract) *MessageScannerImpl {
	return &MessageScannerImpl{
		l2Messenger: l2Messenger,
	}
}

func (s *MessageScannerImpl) ScanMessages(ctx context.Context, start, end uint64) ([]core.SentMessageEvent, error) {
	if end <= start {
		return nil, nil
	}

	logs, err := s.l2Messenger.FilterSentMessages(ctx, start, end-1)
	if err != nil {
		return nil, fmt.Errorf("failed to filter sent messages in blocks [%d, %d): %w", start, end, err)
	}

	events := make([]core.SentMessageEvent, len(logs))
	for i, log := range logs {
		events[i] = core.SentMessageEvent{
			TransactionHash: log.TransactionHash,
			BlockNumber:     log.BlockNumber,
			LogIndex:        log.LogIndex,
			Target:          log.Target,
			Sender:          log.Sender,
			Message:         log.Message,
			MessageNonce:    log.MessageNonce,
			GasLimit:        log.GasLimit,
		}
	}

	slices.SortStableFunc(events, func(a, b core.SentMessageEvent) int {
		if c := cmp.Compare(a.BlockNumber, b.BlockNumber); c != 0 {
			return c
		}

		return cmp.Compare(a.LogIndex, b.LogIndex)
	})

	return events, nil
}
