package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	"github.com/allisson/linkcodec/internal/codec/http/dto"
	codecUseCase "github.com/allisson/linkcodec/internal/codec/usecase"
)

// RunEncode prints the token for each identifier argument. One identifier prints a
// single token; several are encoded as a batch and printed in argument order.
func RunEncode(
	ctx context.Context,
	useCase codecUseCase.CodecUseCase,
	logger *slog.Logger,
	w io.Writer,
	args []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("at least one identifier is required")
	}

	ids := make([]int64, len(args))
	for i, arg := range args {
		id, err := codecDomain.ParseIdentifier(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		ids[i] = id
	}

	var encoded []codecDomain.EncodedToken
	if len(ids) == 1 {
		single, err := useCase.Encode(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to encode identifier: %w", err)
		}
		encoded = []codecDomain.EncodedToken{*single}
	} else {
		var err error
		encoded, err = useCase.EncodeBatch(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to encode identifiers: %w", err)
		}
	}

	logger.Debug("identifiers encoded", slog.Int("count", len(encoded)))

	return writeTokens(w, dto.MapEncodedTokensToResponse(encoded).Tokens, format)
}

// writeTokens prints "id<TAB>token" lines, or JSON: an object for one token and a
// {"tokens": [...]} document for several.
func writeTokens(w io.Writer, tokens []dto.TokenResponse, format string) error {
	if format == "json" {
		if len(tokens) == 1 {
			return writeJSON(w, tokens[0])
		}
		return writeJSON(w, dto.EncodeBatchResponse{Tokens: tokens})
	}

	for _, t := range tokens {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Token); err != nil {
			return err
		}
	}
	return nil
}
