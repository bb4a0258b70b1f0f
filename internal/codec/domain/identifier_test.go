package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/linkcodec/internal/errors"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		wantErr bool
	}{
		{name: "zero", id: 0},
		{name: "small", id: 42},
		{name: "max int32", id: 1<<31 - 1},
		{name: "max identifier", id: MaxIdentifier},
		{name: "negative", id: -1, wantErr: true},
		{name: "above max identifier", id: MaxIdentifier + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseIdentifier(t *testing.T) {
	t.Run("accepts canonical decimals", func(t *testing.T) {
		tests := map[string]int64{
			"0":                0,
			"1":                1,
			"42":               42,
			"1000000":          1000000,
			"2147483647":       2147483647,
			"9007199254740991": MaxIdentifier,
		}
		for text, want := range tests {
			got, err := ParseIdentifier(text)
			require.NoError(t, err, text)
			assert.Equal(t, want, got, text)
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		inputs := []string{
			"",
			"-1",
			"+1",
			"3.14",
			"1e3",
			"42.0",
			" 42",
			"42 ",
			"007",
			"0x1f",
			"abc",
			"NaN",
			"Infinity",
			"9007199254740992",
			"99999999999999999999",
		}
		for _, text := range inputs {
			_, err := ParseIdentifier(text)
			assert.ErrorIs(t, err, ErrInvalidIdentifier, "input %q", text)
		}
	})
}

func TestParsePayload(t *testing.T) {
	id, err := ParsePayload([]byte("12345"))
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)

	for _, payload := range [][]byte{nil, []byte("12a"), {0xff, 0x00}, []byte("-5")} {
		_, err := ParsePayload(payload)
		assert.ErrorIs(t, err, ErrInvalidPayload)
		assert.NotErrorIs(t, err, ErrInvalidIdentifier)
	}
}

func TestTaxonomyErrorsAreDistinct(t *testing.T) {
	taxonomy := []error{ErrInvalidIdentifier, ErrMalformedToken, ErrDecryptionFailed, ErrInvalidPayload}

	for i, a := range taxonomy {
		assert.ErrorIs(t, a, apperrors.ErrInvalidInput)
		for j, b := range taxonomy {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b, "%v must not match %v", a, b)
		}
	}
}
