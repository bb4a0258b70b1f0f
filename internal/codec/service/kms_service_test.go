package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"gocloud.dev/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		require.NotNil(t, keeper)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestKMSService_UnwrapCodecKey(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	keeperInterface, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeperInterface.Close())
	}()

	keeper, ok := keeperInterface.(*secrets.Keeper)
	require.True(t, ok)

	wrapped, err := keeper.Encrypt(ctx, []byte("0123456789abcdef"))
	require.NoError(t, err)

	km, err := codecDomain.LoadKeyMaterial(ctx, codecDomain.KeySource{
		Key:      base64.StdEncoding.EncodeToString(wrapped),
		IV:       "fedcba9876543210",
		Encoding: codecDomain.KeyEncodingRaw,
	}, keeperInterface)
	require.NoError(t, err)

	codec, err := NewAESCBCCodec(km)
	require.NoError(t, err)

	token, err := codec.Encode(12345)
	require.NoError(t, err)
	assert.Equal(t, "a41d62923b770a085eabd0c9a10740a1", token.String())
}
