package domain

import (
	"github.com/allisson/linkcodec/internal/errors"
)

// Token codec error definitions.
//
// The four taxonomy errors (invalid identifier, malformed token, decryption failed,
// invalid payload) are of kind errors.ErrInvalidInput, so HTTP handlers answer them
// with 422 and report their code.
var (
	// ErrInvalidIdentifier indicates an encode was requested for a value outside the
	// supported domain: negative, fractional, non-numeric, or above MaxIdentifier.
	ErrInvalidIdentifier = errors.Define(errors.ErrInvalidInput, "invalid_identifier", "invalid identifier")

	// ErrMalformedToken indicates a token that is not block-aligned hexadecimal:
	// empty, odd length, a non-hex character, or a byte length that is not a multiple
	// of the cipher block size.
	ErrMalformedToken = errors.Define(errors.ErrInvalidInput, "malformed_token", "malformed token")

	// ErrDecryptionFailed indicates a well-formed token whose PKCS#7 padding is invalid
	// after decryption. This is what a token minted under a different key/IV, or a
	// corrupted token, usually produces.
	ErrDecryptionFailed = errors.Define(errors.ErrInvalidInput, "decryption_failed", "decryption failed")

	// ErrInvalidPayload indicates a token that decrypted with valid padding but whose
	// plaintext is not a canonical base-10 identifier.
	ErrInvalidPayload = errors.Define(errors.ErrInvalidInput, "invalid_payload", "invalid payload")

	// ErrUnknownResource indicates a link was requested for a resource that has no
	// registered page.
	ErrUnknownResource = errors.Define(errors.ErrNotFound, "unknown_resource", "unknown resource")

	// ErrBatchTooLarge indicates a batch encode request above the configured maximum.
	ErrBatchTooLarge = errors.Define(errors.ErrInvalidInput, "batch_too_large", "batch too large")
)

// Key material errors. These surface at startup, never per call.
var (
	// ErrKeyNotSet indicates CODEC_KEY is empty.
	ErrKeyNotSet = errors.Wrap(errors.ErrMisconfigured, "codec key not set")

	// ErrIVNotSet indicates CODEC_IV is empty.
	ErrIVNotSet = errors.Wrap(errors.ErrMisconfigured, "codec iv not set")

	// ErrInvalidKeySize indicates a key that is not 16, 24 or 32 bytes long.
	ErrInvalidKeySize = errors.Wrap(errors.ErrMisconfigured, "invalid key size")

	// ErrInvalidIVSize indicates an IV that is not exactly one cipher block long.
	ErrInvalidIVSize = errors.Wrap(errors.ErrMisconfigured, "invalid iv size")

	// ErrUnsupportedKeyEncoding indicates an unknown CODEC_KEY_ENCODING value.
	ErrUnsupportedKeyEncoding = errors.Wrap(errors.ErrMisconfigured, "unsupported key encoding")

	// ErrInvalidKeyEncoding indicates key or IV text that does not decode with the
	// configured encoding.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrMisconfigured, "invalid key encoding")
)
