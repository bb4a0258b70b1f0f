package domain

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// KMSKeeper is the subset of a gocloud.dev secrets keeper needed to unwrap a
// KMS-encrypted codec key. *secrets.Keeper implements it.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KeyMaterial holds the fixed key and fixed IV every token is minted with.
//
// Both values are loaded once per process and never rotated within a running instance:
// changing either one invalidates every link already handed out.
type KeyMaterial struct {
	Key []byte
	IV  []byte
}

// NewKeyMaterial validates sizes and returns KeyMaterial holding copies of key and iv.
// The key must be 16, 24 or 32 bytes (AES-128/192/256); the IV must be BlockSize bytes.
func NewKeyMaterial(key, iv []byte) (*KeyMaterial, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: must be 16, 24 or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidIVSize, BlockSize, len(iv))
	}

	return &KeyMaterial{
		Key: append([]byte(nil), key...),
		IV:  append([]byte(nil), iv...),
	}, nil
}

// Close zeroes the key and IV.
func (k *KeyMaterial) Close() {
	if k == nil {
		return
	}
	Zero(k.Key)
	Zero(k.IV)
}

// KeySource is the configuration-side description of the key material.
type KeySource struct {
	// Key is the key text. When a KMS keeper is used it is the base64 KMS ciphertext.
	Key string
	// IV is the IV text.
	IV string
	// Encoding tells how Key (without KMS) and IV are written.
	Encoding KeyEncoding
}

// LoadKeyMaterial builds KeyMaterial from configuration.
//
// When keeper is non-nil, src.Key is treated as base64 standard encoding of a KMS
// ciphertext and unwrapped with keeper.Decrypt; the IV still uses src.Encoding.
// Intermediate plaintext buffers are zeroed before returning.
func LoadKeyMaterial(ctx context.Context, src KeySource, keeper KMSKeeper) (*KeyMaterial, error) {
	if src.Key == "" {
		return nil, ErrKeyNotSet
	}
	if src.IV == "" {
		return nil, ErrIVNotSet
	}

	var key []byte
	if keeper != nil {
		ciphertext, err := base64.StdEncoding.DecodeString(src.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: kms ciphertext: %v", ErrInvalidKeyEncoding, err)
		}
		key, err = keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt codec key with KMS: %w", err)
		}
	} else {
		var err error
		key, err = decodeKeyText(src.Key, src.Encoding)
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
	}
	defer Zero(key)

	iv, err := decodeKeyText(src.IV, src.Encoding)
	if err != nil {
		return nil, fmt.Errorf("iv: %w", err)
	}
	defer Zero(iv)

	return NewKeyMaterial(key, iv)
}

func decodeKeyText(text string, encoding KeyEncoding) ([]byte, error) {
	switch encoding {
	case KeyEncodingRaw:
		return []byte(text), nil
	case KeyEncodingHex:
		b, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
		}
		return b, nil
	case KeyEncodingBase64:
		b, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKeyEncoding, encoding)
	}
}
