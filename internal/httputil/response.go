// Package httputil provides HTTP error responses shared by the Gin handlers.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/linkcodec/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrorCode returns the HTTP status and response error code for err. Invalid input
// reports the code its sentinel was defined with, falling back to "invalid_input".
// Not-found and internal errors always use generic codes.
func ErrorCode(err error) (int, string) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		if code := apperrors.Code(err); code != "" {
			return http.StatusUnprocessableEntity, code
		}
		return http.StatusUnprocessableEntity, "invalid_input"

	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON error body.
// Internal errors are logged in full but never echoed to the client.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, code := ErrorCode(err)
	errorResponse := ErrorResponse{Error: code}

	switch statusCode {
	case http.StatusNotFound:
		errorResponse.Message = "The requested resource was not found"
	case http.StatusInternalServerError:
		errorResponse.Message = "An internal error occurred"
	default:
		errorResponse.Message = err.Error()
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", code),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
