// Package dto provides data transfer objects for the codec HTTP API.
package dto

import (
	"encoding/json"
	"fmt"

	validation "github.com/jellydator/validation"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	customValidation "github.com/allisson/linkcodec/internal/validation"
)

// EncodeRequest contains the identifier to encode. ID is a json.Number so that
// fractional or negative values are rejected as invalid identifiers instead of
// failing JSON binding.
type EncodeRequest struct {
	ID json.Number `json:"id"`
}

// Validate checks if the encode request is valid.
func (r *EncodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required),
	)
}

// Identifier parses ID into a codec identifier.
func (r *EncodeRequest) Identifier() (int64, error) {
	return codecDomain.ParseIdentifier(r.ID.String())
}

// EncodeBatchRequest contains the identifiers to encode in one call.
type EncodeBatchRequest struct {
	IDs []json.Number `json:"ids"`
}

// Validate checks if the batch request is valid. The upper bound is enforced by the
// use case so it follows CODEC_BATCH_MAX_SIZE.
func (r *EncodeBatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IDs, validation.Required),
	)
}

// Identifiers parses every entry of IDs, reporting the first invalid index.
func (r *EncodeBatchRequest) Identifiers() ([]int64, error) {
	ids := make([]int64, len(r.IDs))
	for i, raw := range r.IDs {
		id, err := codecDomain.ParseIdentifier(raw.String())
		if err != nil {
			return nil, fmt.Errorf("ids[%d]: %w", i, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// MaxTokenLength bounds the token text accepted by the API. The longest token the codec
// mints (for MaxIdentifier) is 64 characters.
const MaxTokenLength = 256

// DecodeRequest contains the token to decode.
type DecodeRequest struct {
	Token string `json:"token"`
}

// Validate checks if the decode request is valid. Token shape is left to the codec,
// which reports it as a malformed token.
func (r *DecodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(0, MaxTokenLength),
		),
	)
}
