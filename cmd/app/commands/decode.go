package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/linkcodec/internal/codec/http/dto"
	codecUseCase "github.com/allisson/linkcodec/internal/codec/usecase"
)

// RunDecode prints the identifier carried by each token argument. The first token
// that fails to decode stops the command.
func RunDecode(
	ctx context.Context,
	useCase codecUseCase.CodecUseCase,
	logger *slog.Logger,
	w io.Writer,
	tokens []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(tokens) == 0 {
		return errors.New("at least one token is required")
	}

	decoded := make([]dto.TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		id, err := useCase.Decode(ctx, token)
		if err != nil {
			return fmt.Errorf("failed to decode %q: %w", token, err)
		}
		decoded = append(decoded, dto.TokenResponse{ID: id, Token: token})
	}

	logger.Debug("tokens decoded", slog.Int("count", len(decoded)))

	return writeTokens(w, decoded, format)
}
