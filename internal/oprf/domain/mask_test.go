package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMask(t *testing.T) {
	t.Run("generates distinct masks", func(t *testing.T) {
		assert.False(t, NewMask().Equal(NewMask()))
	})

	t.Run("serializes to 32 bytes", func(t *testing.T) {
		raw, err := NewMask().Bytes()
		require.NoError(t, err)
		assert.Len(t, raw, 32)
	})
}

func TestMaskFromBytes(t *testing.T) {
	t.Run("round-trips the scalar encoding", func(t *testing.T) {
		mask := NewMask()

		raw, err := mask.Bytes()
		require.NoError(t, err)

		decoded, err := MaskFromBytes(raw)
		require.NoError(t, err)
		assert.True(t, mask.Equal(decoded))
	})

	t.Run("rejects wrong-length encoding", func(t *testing.T) {
		_, err := MaskFromBytes([]byte("short"))
		assert.ErrorIs(t, err, ErrMalformedMask)
	})
}

func TestMask_Apply(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		mask := NewMask()
		data := HashToData([]byte("abc"))

		assert.True(t, mask.Apply(data).Equal(mask.Apply(data)))
	})

	t.Run("different masks produce different outputs", func(t *testing.T) {
		data := HashToData([]byte("abc"))

		assert.False(t, NewMask().Apply(data).Equal(NewMask().Apply(data)))
	})

	t.Run("masked value differs from input", func(t *testing.T) {
		data := HashToData([]byte("abc"))

		assert.False(t, NewMask().Apply(data).Equal(data))
	})
}
