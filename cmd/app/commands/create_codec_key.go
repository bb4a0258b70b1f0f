package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	codecService "github.com/allisson/linkcodec/internal/codec/service"
)

// RunCreateCodecKey generates a random AES key of size bytes and a random IV, and
// prints them as environment variables in hex encoding. With kmsKeyURI the key is
// encrypted by the KMS keeper and printed as base64 ciphertext instead.
//
// Tokens minted under one key cannot be decoded under another, so rotating the key
// invalidates every published link.
func RunCreateCodecKey(
	ctx context.Context,
	kmsService codecService.KMSService,
	logger *slog.Logger,
	w io.Writer,
	size int,
	kmsKeyURI string,
) error {
	switch size {
	case 16, 24, 32:
	default:
		return fmt.Errorf("invalid key size: %d (valid options: 16, 24, 32)", size)
	}

	key := make([]byte, size)
	iv := make([]byte, codecDomain.BlockSize)
	defer codecDomain.Zero(key)
	defer codecDomain.Zero(iv)

	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate codec key: %w", err)
	}
	if _, err := rand.Read(iv); err != nil {
		return fmt.Errorf("failed to generate codec iv: %w", err)
	}

	encodedKey := hex.EncodeToString(key)
	if kmsKeyURI != "" {
		ciphertext, err := wrapWithKMS(ctx, kmsService, logger, kmsKeyURI, key)
		if err != nil {
			return err
		}
		encodedKey = base64.StdEncoding.EncodeToString(ciphertext)
	}

	_, _ = fmt.Fprintln(w, "# Codec key material")
	_, _ = fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "CODEC_KEY_ENCODING=\"%s\"\n", codecDomain.KeyEncodingHex)
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintf(w, "CODEC_KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	}
	_, _ = fmt.Fprintf(w, "CODEC_KEY=\"%s\"\n", encodedKey)
	_, err := fmt.Fprintf(w, "CODEC_IV=\"%s\"\n", hex.EncodeToString(iv))

	logger.Info("codec key created", slog.Int("key_bits", size*8), slog.Bool("kms", kmsKeyURI != ""))

	return err
}

func wrapWithKMS(
	ctx context.Context,
	kmsService codecService.KMSService,
	logger *slog.Logger,
	kmsKeyURI string,
	key []byte,
) ([]byte, error) {
	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	encrypter, ok := keeper.(interface {
		Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	})
	if !ok {
		return nil, fmt.Errorf("KMS keeper does not support encryption")
	}

	ciphertext, err := encrypter.Encrypt(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt codec key with KMS: %w", err)
	}
	return ciphertext, nil
}
