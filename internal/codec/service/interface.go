// Package service implements the reversible identifier token codec: AES-CBC with
// PKCS#7 padding over the decimal text of an identifier, rendered as lowercase hex.
package service

import (
	"context"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// TokenCodec converts identifiers to opaque tokens and back.
//
// Implementations are pure functions of their input and immutable key material, and
// are safe for concurrent use.
type TokenCodec interface {
	// Encode mints the token for id. Fails with ErrInvalidIdentifier outside [0, MaxIdentifier].
	Encode(id int64) (codecDomain.Token, error)

	// Decode recovers the identifier from token. Fails with ErrMalformedToken,
	// ErrDecryptionFailed or ErrInvalidPayload.
	Decode(token string) (int64, error)
}

// KMSService opens KMS keepers used to unwrap a KMS-encrypted codec key.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI.
	// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
	OpenKeeper(ctx context.Context, keyURI string) (codecDomain.KMSKeeper, error)
}
