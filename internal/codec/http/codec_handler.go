// Package http provides HTTP handlers for token encoding, decoding and console links.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	"github.com/allisson/linkcodec/internal/codec/http/dto"
	codecUseCase "github.com/allisson/linkcodec/internal/codec/usecase"
	"github.com/allisson/linkcodec/internal/httputil"
	customValidation "github.com/allisson/linkcodec/internal/validation"
)

// CodecHandler handles HTTP requests for the token codec and link registry.
type CodecHandler struct {
	codecUseCase codecUseCase.CodecUseCase
	logger       *slog.Logger
}

// NewCodecHandler creates a new codec handler.
func NewCodecHandler(codecUseCase codecUseCase.CodecUseCase, logger *slog.Logger) *CodecHandler {
	return &CodecHandler{
		codecUseCase: codecUseCase,
		logger:       logger,
	}
}

// EncodeHandler mints the token for one identifier.
// POST /v1/codec/encode
func (h *CodecHandler) EncodeHandler(c *gin.Context) {
	var req dto.EncodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	id, err := req.Identifier()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	encoded, err := h.codecUseCase.Encode(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncodedTokenToResponse(*encoded))
}

// EncodeBatchHandler mints tokens for many identifiers, preserving request order.
// POST /v1/codec/encode/batch
func (h *CodecHandler) EncodeBatchHandler(c *gin.Context) {
	var req dto.EncodeBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ids, err := req.Identifiers()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	encoded, err := h.codecUseCase.EncodeBatch(c.Request.Context(), ids)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncodedTokensToResponse(encoded))
}

// DecodeHandler recovers the identifier carried by a token.
// POST /v1/codec/decode
func (h *CodecHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	id, err := h.codecUseCase.Decode(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{ID: id, Token: req.Token})
}

// BuildLinkHandler returns the console link for a resource record.
// GET /v1/links/:resource/:id
func (h *CodecHandler) BuildLinkHandler(c *gin.Context) {
	id, err := codecDomain.ParseIdentifier(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	link, err := h.codecUseCase.BuildLink(c.Request.Context(), c.Param("resource"), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLinkToResponse(link))
}

// ResolveLinkHandler resolves the token from a console link to its backend API path.
// GET /v1/links/:resource/resolve?token=...
func (h *CodecHandler) ResolveLinkHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("token query parameter is required"), h.logger)
		return
	}

	resolved, err := h.codecUseCase.ResolveLink(c.Request.Context(), c.Param("resource"), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResolvedLinkToResponse(resolved))
}
