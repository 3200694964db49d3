package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
	"github.com/Ethernal-Tech/ovm-message-relayer/eth"
	ethtxhelper "github.com/Ethernal-Tech/ovm-message-relayer/eth/txhelper"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/core"
	"github.com/Ethernal-Tech/ovm-message-relayer/relayer/proof"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"
)

const (
	defaultCheckRetryCount    = 5
	defaultCheckRetryWaitTime = 2 * time.Second
)

type RelaySubmitterImpl struct {
	l1Messenger        eth.IL1MessengerSmartContract
	limiter            *rate.Limiter
	checkRetryCount    uint64
	checkRetryWaitTime time.Duration
	logger             hclog.Logger
}

var _ core.RelaySubmitter = (*RelaySubmitterImpl)(nil)

type RelaySubmitterOption func(*RelaySubmitterImpl)

// WithMaxRelaysPerSecond limits relay transactions, zero means no limit
func WithMaxRelaysPerSecond(maxRelaysPerSecond float64) RelaySubmitterOption {
	return func(s *RelaySubmitterImpl) {
		if maxRelaysPerSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(maxRelaysPerSecond), 1)
		}
	}
}

func WithCheckRetryConfig(retryCount uint64, waitTime time.Duration) RelaySubmitterOption {
	return func(s *RelaySubmitterImpl) {
		s.checkRetryCount = retryCount
		s.checkRetryWaitTime = waitTime
	}
}

func NewRelaySubmitter(
	l1Messenger eth.IL1MessengerSmartContract, logger hclog.Logger, opts ...RelaySubmitterOption,
) *RelaySubmitterImpl {
	submitter := &RelaySubmitterImpl{
		l1Messenger:        l1Messenger,
		checkRetryCount:    defaultCheckRetryCount,
		checkRetryWaitTime: defaultCheckRetryWaitTime,
		logger:             logger,
	}

	for _, opt := range opts {
		opt(submitter)
	}

	return submitter
}

// Submit sends relay transaction. When sending fails the L1 messenger is asked
// whether someone else already relayed the message
func (s *RelaySubmitterImpl) Submit(ctx context.Context, messageProof core.MessageProof) core.RelayOutcome {
	messageHash, err := proof.GetCrossDomainMessageHash(messageProof.Message)
	if err != nil {
		return core.RelayOutcome{Status: core.RelayStatusFailed, Err: err}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return core.RelayOutcome{Status: core.RelayStatusFailed, MessageHash: messageHash, Err: err}
		}
	}

	receipt, relayErr := s.l1Messenger.RelayMessage(ctx, eth.RelayMessageArgs{
		Target:       messageProof.Message.Target,
		Sender:       messageProof.Message.Sender,
		Message:      messageProof.Message.Message,
		MessageNonce: messageProof.Message.MessageNonce,
	}, messageProof.Proof)
	if relayErr == nil {
		return core.RelayOutcome{
			Status:      core.RelayStatusRelayed,
			MessageHash: messageHash,
			RelayTxHash: receipt.TxHash,
		}
	}

	s.logger.Debug("Relay transaction failed, checking message status", "hash", messageHash, "err", relayErr)

	relayed, checkErr := common.ExecuteWithRetry(ctx, func(ctx context.Context) (bool, error) {
		return s.l1Messenger.SuccessfulMessages(ctx, messageHash)
	},
		common.WithRetryCount(s.checkRetryCount),
		common.WithRetryWaitTime(s.checkRetryWaitTime),
		common.WithIsRetryableError(ethtxhelper.IsRetryableEthError))
	if checkErr != nil {
		return core.RelayOutcome{
			Status:      core.RelayStatusFailed,
			MessageHash: messageHash,
			Err:         errors.Join(relayErr, fmt.Errorf("failed to check message status: %w", checkErr)),
		}
	}

	if relayed {
		return core.RelayOutcome{Status: core.RelayStatusAlreadyRelayed, MessageHash: messageHash}
	}

	return core.RelayOutcome{Status: core.RelayStatusFailed, MessageHash: messageHash, Err: relayErr}
}
