package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

func TestEncodeRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		validateErr bool
		parseErr    error
		expected    int64
	}{
		{name: "Valid", body: `{"id": 12345}`, expected: 12345},
		{name: "Zero", body: `{"id": 0}`, expected: 0},
		{name: "NumericString", body: `{"id": "42"}`, expected: 42},
		{name: "Missing", body: `{}`, validateErr: true},
		{name: "Negative", body: `{"id": -1}`, parseErr: codecDomain.ErrInvalidIdentifier},
		{name: "Fraction", body: `{"id": 3.14}`, parseErr: codecDomain.ErrInvalidIdentifier},
		{name: "Exponent", body: `{"id": 1e3}`, parseErr: codecDomain.ErrInvalidIdentifier},
		{name: "AboveMax", body: `{"id": 9007199254740992}`, parseErr: codecDomain.ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req EncodeRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.validateErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			id, err := req.Identifier()
			if tt.parseErr != nil {
				assert.ErrorIs(t, err, tt.parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestEncodeBatchRequest(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var req EncodeBatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"ids": [3, 1, 2]}`), &req))

		require.NoError(t, req.Validate())
		ids, err := req.Identifiers()

		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 2}, ids)
	})

	t.Run("Empty", func(t *testing.T) {
		req := EncodeBatchRequest{IDs: []json.Number{}}

		assert.Error(t, req.Validate())
	})

	t.Run("InvalidEntryIndexed", func(t *testing.T) {
		var req EncodeBatchRequest
		require.NoError(t, json.Unmarshal([]byte(`{"ids": [1, 2.5]}`), &req))

		_, err := req.Identifiers()

		assert.ErrorIs(t, err, codecDomain.ErrInvalidIdentifier)
		assert.Contains(t, err.Error(), "ids[1]")
	})
}

func TestDecodeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		shouldErr bool
	}{
		{name: "Valid", token: "a41d62923b770a085eabd0c9a10740a1"},
		{name: "MalformedLeftToCodec", token: "zz"},
		{name: "Empty", token: "", shouldErr: true},
		{name: "Blank", token: "   ", shouldErr: true},
		{name: "SurroundingWhitespace", token: " a41d62923b770a085eabd0c9a10740a1\n", shouldErr: true},
		{name: "AtMaxLength", token: strings.Repeat("0", MaxTokenLength)},
		{name: "TooLong", token: strings.Repeat("0", MaxTokenLength+1), shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DecodeRequest{Token: tt.token}
			err := req.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
