package telemetry

import (
	"github.com/armon/go-metrics"
)

const relayerMetricsPrefix = "relayer"

func UpdateRelayerMessagesRelayedCounter(cnt int) {
	metrics.IncrCounter([]string{relayerMetricsPrefix, "messages_relayed_counter"}, float32(cnt))
}

func UpdateRelayerMessagesAlreadyRelayedCounter(cnt int) {
	metrics.IncrCounter([]string{relayerMetricsPrefix, "messages_already_relayed_counter"}, float32(cnt))
}

func UpdateRelayerMessagesFailedCounter(cnt int) {
	metrics.IncrCounter([]string{relayerMetricsPrefix, "messages_failed_counter"}, float32(cnt))
}

func UpdateRelayerBatchesProcessedCounter(cnt int) {
	metrics.IncrCounter([]string{relayerMetricsPrefix, "batches_processed_counter"}, float32(cnt))
}

func UpdateRelayerNextUnsyncedBatch(batchIndex uint64) {
	metrics.SetGauge([]string{relayerMetricsPrefix, "next_unsynced_batch"}, float32(batchIndex))
}
