package hmacsha256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewBounded(t *testing.T) {
	t.Run("data within capacity is accepted", func(t *testing.T) {
		b, err := NewBounded(32, []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b.Bytes())
		assert.Equal(t, 5, b.Len())
		assert.Equal(t, 32, b.Cap())
	})

	t.Run("data filling the full capacity is accepted", func(t *testing.T) {
		b, err := NewBounded(5, []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b.Bytes())
	})

	t.Run("data exceeding capacity is rejected, never truncated", func(t *testing.T) {
		_, err := NewBounded(4, []byte("hello"))
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("negative capacity is rejected", func(t *testing.T) {
		_, err := NewBounded(-1, nil)
		assert.Error(t, err)
	})

	t.Run("empty buffer is valid", func(t *testing.T) {
		b, err := NewBounded(0, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
		assert.Empty(t, b.Bytes())
	})
}

func Test_SumBounded(t *testing.T) {
	key := []byte("63E9B5F9DA4584483662FC2E5A48763E9B5F9DA458448366")
	message := []byte("hello")

	t.Run("matches Sum over the same used bytes", func(t *testing.T) {
		boundedKey, err := NewBounded(100, key)
		require.NoError(t, err)
		boundedMessage, err := NewBounded(1000, message)
		require.NoError(t, err)
		assert.Equal(t, Sum(key, message), SumBounded(boundedKey, boundedMessage))
	})

	t.Run("tag is independent of declared capacity", func(t *testing.T) {
		smallKey, err := NewBounded(len(key), key)
		require.NoError(t, err)
		largeKey, err := NewBounded(4096, key)
		require.NoError(t, err)
		smallMessage, err := NewBounded(len(message), message)
		require.NoError(t, err)
		largeMessage, err := NewBounded(4096, message)
		require.NoError(t, err)
		assert.Equal(t, SumBounded(smallKey, smallMessage), SumBounded(largeKey, largeMessage))
	})
}
