package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	"github.com/allisson/linkcodec/internal/codec/http/dto"
	codecUseCase "github.com/allisson/linkcodec/internal/codec/usecase"
)

// RunBuildLink prints the console link for a resource record.
func RunBuildLink(
	ctx context.Context,
	useCase codecUseCase.CodecUseCase,
	logger *slog.Logger,
	w io.Writer,
	resource string,
	idText string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	id, err := codecDomain.ParseIdentifier(idText)
	if err != nil {
		return fmt.Errorf("%q: %w", idText, err)
	}

	link, err := useCase.BuildLink(ctx, resource, id)
	if err != nil {
		return fmt.Errorf("failed to build link: %w", err)
	}

	logger.Debug("link built", slog.String("resource", link.Resource))

	if format == "json" {
		return writeJSON(w, dto.MapLinkToResponse(link))
	}
	_, err = fmt.Fprintln(w, link.URL)
	return err
}

// RunResolveLink prints the backend API path a console link token points to.
func RunResolveLink(
	ctx context.Context,
	useCase codecUseCase.CodecUseCase,
	logger *slog.Logger,
	w io.Writer,
	resource string,
	token string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	resolved, err := useCase.ResolveLink(ctx, resource, token)
	if err != nil {
		return fmt.Errorf("failed to resolve link: %w", err)
	}

	logger.Debug("link resolved", slog.String("resource", resolved.Resource))

	if format == "json" {
		return writeJSON(w, dto.MapResolvedLinkToResponse(resolved))
	}
	_, err = fmt.Fprintln(w, resolved.APIPath)
	return err
}
