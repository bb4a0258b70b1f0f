package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
	codecMocks "github.com/allisson/linkcodec/internal/codec/usecase/mocks"
)

func TestRunDecode(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockUseCase := &codecMocks.MockCodecUseCase{}
		mockUseCase.On("Decode", ctx, "c910870bcc5a190e1d3be0c17b4d9a35").Return(int64(1), nil)
		mockUseCase.On("Decode", ctx, "e52b719889788b51e29f74445b0a845e").Return(int64(0), nil)

		var out bytes.Buffer
		err := RunDecode(ctx, mockUseCase, discardLogger(), &out,
			[]string{"c910870bcc5a190e1d3be0c17b4d9a35", "e52b719889788b51e29f74445b0a845e"}, "text")

		require.NoError(t, err)
		assert.Equal(t,
			"1\tc910870bcc5a190e1d3be0c17b4d9a35\n0\te52b719889788b51e29f74445b0a845e\n",
			out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("decode-error-stops", func(t *testing.T) {
		mockUseCase := &codecMocks.MockCodecUseCase{}
		mockUseCase.On("Decode", ctx, "zz").Return(int64(0), codecDomain.ErrMalformedToken)

		var out bytes.Buffer
		err := RunDecode(ctx, mockUseCase, discardLogger(), &out, []string{"zz", "00"}, "text")

		assert.ErrorIs(t, err, codecDomain.ErrMalformedToken)
		assert.Empty(t, out.String())
		mockUseCase.AssertNotCalled(t, "Decode", ctx, "00")
	})

	t.Run("missing-arguments", func(t *testing.T) {
		err := RunDecode(ctx, &codecMocks.MockCodecUseCase{}, discardLogger(), &bytes.Buffer{}, nil, "json")
		require.Error(t, err)
	})
}
