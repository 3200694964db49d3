package eth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelayGasLimitHolder(t *testing.T) {
	relayErr := errors.New("execution reverted")

	t.Run("grows on failures and resets on success", func(t *testing.T) {
		holder := NewRelayGasLimitHolder(10, 21, 3)

		assert.Equal(t, uint64(10), holder.Current())

		for _, expected := range []uint64{14, 18, 21, 21} {
			holder.Update(relayErr)
			assert.Equal(t, expected, holder.Current())
		}

		holder.Update(nil)
		assert.Equal(t, uint64(10), holder.Current())
	})

	t.Run("zero steps jumps to max", func(t *testing.T) {
		holder := NewRelayGasLimitHolder(100, 300, 0)

		holder.Update(relayErr)
		assert.Equal(t, uint64(300), holder.Current())
	})

	t.Run("max lower than min", func(t *testing.T) {
		holder := NewRelayGasLimitHolder(500, 100, 4)

		holder.Update(relayErr)
		assert.Equal(t, uint64(500), holder.Current())
	})
}
