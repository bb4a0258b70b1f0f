package usecase

import (
	"context"
	"time"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	"github.com/allisson/linkcodec/internal/errors"
	"github.com/allisson/linkcodec/internal/metrics"
)

// codecUseCaseWithMetrics decorates CodecUseCase with metrics instrumentation.
type codecUseCaseWithMetrics struct {
	next    CodecUseCase
	metrics metrics.BusinessMetrics
}

// NewCodecUseCaseWithMetrics wraps a CodecUseCase with metrics recording.
func NewCodecUseCaseWithMetrics(useCase CodecUseCase, m metrics.BusinessMetrics) CodecUseCase {
	return &codecUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram.
func (c *codecUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "codec", operation, status)
	c.metrics.RecordDuration(ctx, "codec", operation, time.Since(start), status)
}

// recordRejection counts decode failures by cause.
func (c *codecUseCaseWithMetrics) recordRejection(ctx context.Context, err error) {
	if reason := rejectReason(err); reason != "" {
		c.metrics.RecordRejectedToken(ctx, reason)
	}
}

func rejectReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, codecDomain.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, codecDomain.ErrDecryptionFailed):
		return "decryption_failed"
	case errors.Is(err, codecDomain.ErrInvalidPayload):
		return "invalid_payload"
	default:
		return ""
	}
}

// Encode records metrics for token minting.
func (c *codecUseCaseWithMetrics) Encode(ctx context.Context, id int64) (*codecDomain.EncodedToken, error) {
	start := time.Now()
	encoded, err := c.next.Encode(ctx, id)
	c.record(ctx, "encode", start, err)
	return encoded, err
}

// Decode records metrics for token resolution.
func (c *codecUseCaseWithMetrics) Decode(ctx context.Context, token string) (int64, error) {
	start := time.Now()
	id, err := c.next.Decode(ctx, token)
	c.record(ctx, "decode", start, err)
	c.recordRejection(ctx, err)
	return id, err
}

// EncodeBatch records metrics for batch minting.
func (c *codecUseCaseWithMetrics) EncodeBatch(
	ctx context.Context,
	ids []int64,
) ([]codecDomain.EncodedToken, error) {
	start := time.Now()
	tokens, err := c.next.EncodeBatch(ctx, ids)
	c.record(ctx, "encode_batch", start, err)
	return tokens, err
}

// BuildLink records metrics for link building.
func (c *codecUseCaseWithMetrics) BuildLink(
	ctx context.Context,
	resource string,
	id int64,
) (*codecDomain.Link, error) {
	start := time.Now()
	link, err := c.next.BuildLink(ctx, resource, id)
	c.record(ctx, "build_link", start, err)
	return link, err
}

// ResolveLink records metrics for link resolution.
func (c *codecUseCaseWithMetrics) ResolveLink(
	ctx context.Context,
	resource, token string,
) (*codecDomain.ResolvedLink, error) {
	start := time.Now()
	resolved, err := c.next.ResolveLink(ctx, resource, token)
	c.record(ctx, "resolve_link", start, err)
	c.recordRejection(ctx, err)
	return resolved, err
}
