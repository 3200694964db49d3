package ethtxhelper

import (
	"errors"
	"net"
	"strings"

	relayerCommon "github.com/Ethernal-Tech/ovm-message-relayer/common"
)

func IsRetryableEthError(err error) bool {
	// Context was explicitly canceled or deadline exceeded; not retryable
	if relayerCommon.IsContextDoneErr(err) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, relayerCommon.ErrRetryTryAgain) {
		return true
	}

	retryableMessages := []string{
		"replacement tx underpriced",
		"nonce too low",
		"intrinsic gas too low",
		"tx with the same nonce is already present",
		"rejected future tx due to low slots",
		"connection refused",
		"too many requests",
	}
	errStr := err.Error()

	for _, msg := range retryableMessages {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	return false
}
