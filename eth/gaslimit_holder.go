package eth

import "sync"

// RelayGasLimitHolder is the fallback relay gas limit used when estimation fails.
// Every failed relay raises it by one step up to the max, a successful one resets it
type RelayGasLimitHolder struct {
	lock     sync.Mutex
	current  uint64
	min      uint64
	max      uint64
	stepSize uint64
}

func NewRelayGasLimitHolder(minGasLimit, maxGasLimit, steps uint64) *RelayGasLimitHolder {
	maxGasLimit = max(minGasLimit, maxGasLimit)
	steps = max(steps, 1)

	return &RelayGasLimitHolder{
		current:  minGasLimit,
		min:      minGasLimit,
		max:      maxGasLimit,
		stepSize: (maxGasLimit - minGasLimit + steps - 1) / steps,
	}
}

func (h *RelayGasLimitHolder) Update(relayErr error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if relayErr == nil {
		h.current = h.min
	} else {
		h.current = min(h.max, h.current+h.stepSize)
	}
}

func (h *RelayGasLimitHolder) Current() uint64 {
	h.lock.Lock()
	defer h.lock.Unlock()

	return h.current
}
