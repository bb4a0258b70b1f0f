// Package usecase orchestrates token minting and resolution for console links.
// It adds context, batching and the resource link registry on top of the codec.
package usecase

import (
	"context"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// TokenCodec is the codec the use case depends on. service.AESCBCCodec implements it.
type TokenCodec interface {
	Encode(id int64) (codecDomain.Token, error)
	Decode(token string) (int64, error)
}

// CodecUseCase defines token and link operations exposed to handlers and the CLI.
type CodecUseCase interface {
	// Encode mints the token for id.
	Encode(ctx context.Context, id int64) (*codecDomain.EncodedToken, error)

	// Decode recovers the identifier carried by token.
	Decode(ctx context.Context, token string) (int64, error)

	// EncodeBatch mints tokens for ids concurrently. The result preserves input order.
	// The first failure aborts the batch and is returned.
	EncodeBatch(ctx context.Context, ids []int64) ([]codecDomain.EncodedToken, error)

	// BuildLink returns the console URL of resource's page for id.
	BuildLink(ctx context.Context, resource string, id int64) (*codecDomain.Link, error)

	// ResolveLink decodes a token read from resource's page URL and returns the
	// backend API path to fetch. On failure no API path is returned.
	ResolveLink(ctx context.Context, resource, token string) (*codecDomain.ResolvedLink, error)
}
