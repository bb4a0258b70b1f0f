package service

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"strconv"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// AESCBCCodec implements TokenCodec with AES in CBC mode, PKCS#7 padding and a fixed IV.
//
// Token format:
//
//	hex( AES-CBC(key, iv, pkcs7(decimal(id))) )
//
// Identifiers up to 15 digits fit a single 16-byte block and give 32 hex characters;
// 16-digit identifiers spill into a second block and give 64.
//
// The IV is fixed, so Encode is deterministic: the same identifier always produces
// the same token. That keeps links already handed out stable, at the price of
// semantic security (equal identifiers give equal tokens). Tokens are obfuscation
// for URLs, not a security boundary: the console holds the same key.
//
// Thread safety:
//
//	The cipher.Block and IV are read-only after construction. Each call builds its own
//	CBC mode and buffers, so concurrent Encode/Decode calls need no locking.
type AESCBCCodec struct {
	block cipher.Block
	iv    []byte
}

// NewAESCBCCodec creates a codec from validated key material.
//
// The key is expanded into the AES key schedule here; km may be closed afterwards
// without affecting the codec.
func NewAESCBCCodec(km *codecDomain.KeyMaterial) (*AESCBCCodec, error) {
	if km == nil {
		return nil, codecDomain.ErrKeyNotSet
	}
	if len(km.IV) != aes.BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", codecDomain.ErrInvalidIVSize, aes.BlockSize, len(km.IV))
	}

	block, err := aes.NewCipher(km.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", codecDomain.ErrInvalidKeySize, err)
	}

	return &AESCBCCodec{
		block: block,
		iv:    append([]byte(nil), km.IV...),
	}, nil
}

// Encode serializes id to decimal text, pads, encrypts and hex encodes it.
func (c *AESCBCCodec) Encode(id int64) (codecDomain.Token, error) {
	if err := codecDomain.ValidateIdentifier(id); err != nil {
		return "", err
	}

	plaintext := pkcs7Pad([]byte(strconv.FormatInt(id, 10)), aes.BlockSize)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(ciphertext, plaintext)

	return codecDomain.Token(hex.EncodeToString(ciphertext)), nil
}

// Decode parses token as hex, decrypts it, validates padding and parses the identifier.
//
// Failures are reported in this order:
//   - ErrMalformedToken: empty, odd length, non-hex, or not whole blocks
//   - ErrDecryptionFailed: padding does not validate (foreign or corrupted token)
//   - ErrInvalidPayload: plaintext is not a canonical decimal identifier
func (c *AESCBCCodec) Decode(token string) (int64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty", codecDomain.ErrMalformedToken)
	}
	if len(token)%2 != 0 {
		return 0, fmt.Errorf("%w: odd length %d", codecDomain.ErrMalformedToken, len(token))
	}

	ciphertext, err := hex.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", codecDomain.ErrMalformedToken, err)
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return 0, fmt.Errorf(
			"%w: %d bytes is not a multiple of %d",
			codecDomain.ErrMalformedToken,
			len(ciphertext),
			aes.BlockSize,
		)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(plaintext, ciphertext)

	payload, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return 0, codecDomain.ErrDecryptionFailed
	}

	return codecDomain.ParsePayload(payload)
}
