package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// Config holds codec use case configuration.
type Config struct {
	// BatchMaxSize is the maximum number of identifiers in one EncodeBatch call.
	BatchMaxSize int
	// BatchConcurrency is the number of goroutines EncodeBatch uses.
	BatchConcurrency int
	// LinksBaseURL is prepended to page URLs built by BuildLink.
	LinksBaseURL string
}

// codecUseCase implements CodecUseCase.
type codecUseCase struct {
	config Config
	codec  TokenCodec
}

// NewCodecUseCase creates a new CodecUseCase. Non-positive batch settings fall back
// to a single worker and an unbounded batch size.
func NewCodecUseCase(config Config, codec TokenCodec) CodecUseCase {
	if config.BatchConcurrency <= 0 {
		config.BatchConcurrency = 1
	}
	return &codecUseCase{
		config: config,
		codec:  codec,
	}
}

// Encode mints the token for id.
func (c *codecUseCase) Encode(ctx context.Context, id int64) (*codecDomain.EncodedToken, error) {
	token, err := c.codec.Encode(id)
	if err != nil {
		return nil, err
	}
	return &codecDomain.EncodedToken{ID: id, Token: token}, nil
}

// Decode recovers the identifier carried by token.
func (c *codecUseCase) Decode(ctx context.Context, token string) (int64, error) {
	return c.codec.Decode(token)
}

// EncodeBatch mints tokens for ids with at most BatchConcurrency goroutines.
func (c *codecUseCase) EncodeBatch(ctx context.Context, ids []int64) ([]codecDomain.EncodedToken, error) {
	if c.config.BatchMaxSize > 0 && len(ids) > c.config.BatchMaxSize {
		return nil, fmt.Errorf("%w: %d ids, maximum is %d", codecDomain.ErrBatchTooLarge, len(ids), c.config.BatchMaxSize)
	}

	result := make([]codecDomain.EncodedToken, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.BatchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			token, err := c.codec.Encode(id)
			if err != nil {
				return fmt.Errorf("ids[%d]: %w", i, err)
			}
			result[i] = codecDomain.EncodedToken{ID: id, Token: token}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// BuildLink returns the console URL of resource's page for id.
func (c *codecUseCase) BuildLink(ctx context.Context, resource string, id int64) (*codecDomain.Link, error) {
	r, err := codecDomain.LookupResource(resource)
	if err != nil {
		return nil, err
	}

	token, err := c.codec.Encode(id)
	if err != nil {
		return nil, err
	}

	return &codecDomain.Link{
		Resource: r.Name,
		ID:       id,
		Token:    token,
		URL:      r.PageURL(c.config.LinksBaseURL, token),
	}, nil
}

// ResolveLink decodes token for resource and returns the backend API path.
func (c *codecUseCase) ResolveLink(
	ctx context.Context,
	resource, token string,
) (*codecDomain.ResolvedLink, error) {
	r, err := codecDomain.LookupResource(resource)
	if err != nil {
		return nil, err
	}

	id, err := c.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	return &codecDomain.ResolvedLink{
		Resource: r.Name,
		ID:       id,
		Token:    codecDomain.Token(token),
		APIPath:  r.APIPath(id),
	}, nil
}
