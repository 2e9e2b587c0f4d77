package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	cryptoService "github.com/allisson/maskd/internal/crypto/service"
	oprfDomain "github.com/allisson/maskd/internal/oprf/domain"
)

func newTestKey(t *testing.T) cryptoDomain.SecretKey {
	t.Helper()

	key, err := cryptoDomain.GenerateSecretKey()
	require.NoError(t, err)
	return key
}

func TestMaskOracle_Issue(t *testing.T) {
	oracle := NewMaskOracle()
	key := newTestKey(t)

	t.Run("token opens to a valid mask under the issuing key", func(t *testing.T) {
		token, err := oracle.Issue(key)
		require.NoError(t, err)

		sealer, err := cryptoService.NewXChaCha20Poly1305(key)
		require.NoError(t, err)

		raw, err := sealer.Open(token)
		require.NoError(t, err)

		_, err = oprfDomain.MaskFromBytes(raw)
		assert.NoError(t, err)
	})

	t.Run("mints fresh mask material per call", func(t *testing.T) {
		token1, err := oracle.Issue(key)
		require.NoError(t, err)

		token2, err := oracle.Issue(key)
		require.NoError(t, err)

		assert.NotEqual(t, token1, token2)
	})

	t.Run("rejects invalid key size", func(t *testing.T) {
		_, err := oracle.Issue(make(cryptoDomain.SecretKey, 16))
		assert.Error(t, err)
	})
}

func TestMaskOracle_Apply(t *testing.T) {
	oracle := NewMaskOracle()
	key := newTestKey(t)

	t.Run("is deterministic for fixed token and data", func(t *testing.T) {
		token, err := oracle.Issue(key)
		require.NoError(t, err)

		data := oprfDomain.HashToData([]byte("abc"))

		masked1, err := oracle.Apply(key, token, data)
		require.NoError(t, err)

		masked2, err := oracle.Apply(key, token, data)
		require.NoError(t, err)

		assert.True(t, masked1.Equal(masked2))
	})

	t.Run("matches direct mask application", func(t *testing.T) {
		token, err := oracle.Issue(key)
		require.NoError(t, err)

		data := oprfDomain.HashToData([]byte("abc"))

		masked, err := oracle.Apply(key, token, data)
		require.NoError(t, err)

		sealer, err := cryptoService.NewXChaCha20Poly1305(key)
		require.NoError(t, err)

		raw, err := sealer.Open(token)
		require.NoError(t, err)

		mask, err := oprfDomain.MaskFromBytes(raw)
		require.NoError(t, err)

		assert.True(t, mask.Apply(data).Equal(masked))
	})

	t.Run("rejects token issued under another key", func(t *testing.T) {
		otherKey := newTestKey(t)

		token, err := oracle.Issue(otherKey)
		require.NoError(t, err)

		_, err = oracle.Apply(key, token, oprfDomain.HashToData([]byte("abc")))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		token, err := oracle.Issue(key)
		require.NoError(t, err)

		token[0] ^= 0x01

		_, err = oracle.Apply(key, token, oprfDomain.HashToData([]byte("abc")))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("fails loudly on missing data", func(t *testing.T) {
		token, err := oracle.Issue(key)
		require.NoError(t, err)

		_, err = oracle.Apply(key, token, nil)
		assert.ErrorIs(t, err, oprfDomain.ErrMissingData)
	})
}
