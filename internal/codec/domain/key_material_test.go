package domain

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/linkcodec/internal/errors"
)

// fakeKeeper reverses its input to simulate a KMS unwrap.
type fakeKeeper struct {
	err error
}

func (f *fakeKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]byte, len(ciphertext))
	for i, b := range ciphertext {
		out[len(ciphertext)-1-i] = b
	}
	return out, nil
}

func (f *fakeKeeper) Close() error { return nil }

func TestNewKeyMaterial(t *testing.T) {
	iv := []byte("fedcba9876543210")

	for _, size := range []int{16, 24, 32} {
		km, err := NewKeyMaterial(make([]byte, size), iv)
		require.NoError(t, err)
		assert.Len(t, km.Key, size)
		assert.Equal(t, iv, km.IV)
	}

	_, err := NewKeyMaterial(make([]byte, 15), iv)
	assert.ErrorIs(t, err, ErrInvalidKeySize)
	assert.ErrorIs(t, err, apperrors.ErrMisconfigured)

	_, err = NewKeyMaterial(make([]byte, 16), iv[:8])
	assert.ErrorIs(t, err, ErrInvalidIVSize)
}

func TestNewKeyMaterial_CopiesInput(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("fedcba9876543210")

	km, err := NewKeyMaterial(key, iv)
	require.NoError(t, err)

	key[0] = 'X'
	iv[0] = 'X'
	assert.Equal(t, []byte("0123456789abcdef"), km.Key)
	assert.Equal(t, []byte("fedcba9876543210"), km.IV)
}

func TestKeyMaterial_Close(t *testing.T) {
	km, err := NewKeyMaterial([]byte("0123456789abcdef"), []byte("fedcba9876543210"))
	require.NoError(t, err)

	km.Close()
	assert.Equal(t, make([]byte, 16), km.Key)
	assert.Equal(t, make([]byte, 16), km.IV)

	var nilKM *KeyMaterial
	assert.NotPanics(t, nilKM.Close)
}

func TestLoadKeyMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Raw", func(t *testing.T) {
		km, err := LoadKeyMaterial(ctx, KeySource{
			Key:      "0123456789abcdef",
			IV:       "fedcba9876543210",
			Encoding: KeyEncodingRaw,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte("0123456789abcdef"), km.Key)
		assert.Equal(t, []byte("fedcba9876543210"), km.IV)
	})

	t.Run("Success_Hex", func(t *testing.T) {
		km, err := LoadKeyMaterial(ctx, KeySource{
			Key:      "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			IV:       "0f0e0d0c0b0a09080706050403020100",
			Encoding: KeyEncodingHex,
		}, nil)
		require.NoError(t, err)
		assert.Len(t, km.Key, 32)
		assert.Equal(t, byte(0x1f), km.Key[31])
		assert.Equal(t, byte(0x0f), km.IV[0])
	})

	t.Run("Success_Base64", func(t *testing.T) {
		km, err := LoadKeyMaterial(ctx, KeySource{
			Key:      base64.StdEncoding.EncodeToString([]byte("0123456789abcdef01234567")),
			IV:       base64.StdEncoding.EncodeToString([]byte("fedcba9876543210")),
			Encoding: KeyEncodingBase64,
		}, nil)
		require.NoError(t, err)
		assert.Len(t, km.Key, 24)
	})

	t.Run("Success_KMS", func(t *testing.T) {
		wrapped := base64.StdEncoding.EncodeToString([]byte("fedcba9876543210"))
		km, err := LoadKeyMaterial(ctx, KeySource{
			Key:      wrapped,
			IV:       "fedcba9876543210",
			Encoding: KeyEncodingRaw,
		}, &fakeKeeper{})
		require.NoError(t, err)
		assert.Equal(t, []byte("0123456789abcdef"), km.Key)
	})

	t.Run("Error_KMSDecrypt", func(t *testing.T) {
		kmsErr := errors.New("kms unavailable")
		_, err := LoadKeyMaterial(ctx, KeySource{
			Key:      base64.StdEncoding.EncodeToString([]byte("anything")),
			IV:       "fedcba9876543210",
			Encoding: KeyEncodingRaw,
		}, &fakeKeeper{err: kmsErr})
		assert.ErrorIs(t, err, kmsErr)
	})

	t.Run("Error_KMSCiphertextNotBase64", func(t *testing.T) {
		_, err := LoadKeyMaterial(ctx, KeySource{
			Key:      "%%%",
			IV:       "fedcba9876543210",
			Encoding: KeyEncodingRaw,
		}, &fakeKeeper{})
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
	})

	t.Run("Error_MissingValues", func(t *testing.T) {
		_, err := LoadKeyMaterial(ctx, KeySource{IV: "fedcba9876543210", Encoding: KeyEncodingRaw}, nil)
		assert.ErrorIs(t, err, ErrKeyNotSet)

		_, err = LoadKeyMaterial(ctx, KeySource{Key: "0123456789abcdef", Encoding: KeyEncodingRaw}, nil)
		assert.ErrorIs(t, err, ErrIVNotSet)
	})

	t.Run("Error_BadEncoding", func(t *testing.T) {
		_, err := LoadKeyMaterial(ctx, KeySource{
			Key:      "not-hex-at-all!!",
			IV:       "0f0e0d0c0b0a09080706050403020100",
			Encoding: KeyEncodingHex,
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)

		_, err = LoadKeyMaterial(ctx, KeySource{
			Key:      "0123456789abcdef",
			IV:       "fedcba9876543210",
			Encoding: KeyEncoding("rot13"),
		}, nil)
		assert.ErrorIs(t, err, ErrUnsupportedKeyEncoding)
	})

	t.Run("Error_WrongSizes", func(t *testing.T) {
		_, err := LoadKeyMaterial(ctx, KeySource{
			Key:      "short",
			IV:       "fedcba9876543210",
			Encoding: KeyEncodingRaw,
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidKeySize)

		_, err = LoadKeyMaterial(ctx, KeySource{
			Key:      "0123456789abcdef",
			IV:       "short",
			Encoding: KeyEncodingRaw,
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidIVSize)
	})
}

func TestParseKeyEncoding(t *testing.T) {
	for _, s := range []string{"raw", "hex", "base64"} {
		enc, err := ParseKeyEncoding(s)
		require.NoError(t, err)
		assert.Equal(t, KeyEncoding(s), enc)
	}

	_, err := ParseKeyEncoding("utf16")
	assert.ErrorIs(t, err, ErrUnsupportedKeyEncoding)
}
