package common

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultRetryCount    = 10
	defaultRetryWaitTime = time.Second
)

var ErrRetryTryAgain = errors.New("retry try again")

type IsRetryableErrorFn func(err error) bool

type retryConfig struct {
	retryCount       uint64
	retryWaitTime    time.Duration
	isRetryableError IsRetryableErrorFn
}

type RetryConfigOption func(*retryConfig)

func WithRetryCount(retryCount uint64) RetryConfigOption {
	return func(rc *retryConfig) {
		rc.retryCount = retryCount
	}
}

func WithRetryWaitTime(waitTime time.Duration) RetryConfigOption {
	return func(rc *retryConfig) {
		rc.retryWaitTime = waitTime
	}
}

func WithIsRetryableError(fn IsRetryableErrorFn) RetryConfigOption {
	return func(rc *retryConfig) {
		rc.isRetryableError = fn
	}
}

// ExecuteWithRetry calls handler until it succeeds, returns a non retryable error
// or the retry count is exhausted. ErrRetryTryAgain is always retryable.
func ExecuteWithRetry[T any](
	ctx context.Context, handler func(context.Context) (T, error), options ...RetryConfigOption,
) (result T, err error) {
	config := retryConfig{
		retryCount:    defaultRetryCount,
		retryWaitTime: defaultRetryWaitTime,
		isRetryableError: func(err error) bool {
			return !IsContextDoneErr(err)
		},
	}

	for _, opt := range options {
		opt(&config)
	}

	backoff := retry.WithMaxRetries(config.retryCount, retry.NewConstant(config.retryWaitTime))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := handler(ctx)
		if err != nil {
			if errors.Is(err, ErrRetryTryAgain) || config.isRetryableError(err) {
				return retry.RetryableError(err)
			}

			return err
		}

		result = res

		return nil
	})

	return result, err
}

// RetryForever calls fn until it succeeds or the context is done
func RetryForever(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	return retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if IsContextDoneErr(err) {
				return err
			}

			return retry.RetryableError(err)
		}

		return nil
	})
}
