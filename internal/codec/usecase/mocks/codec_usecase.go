// Package mocks provides mock implementations of the codec use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	codecDomain "github.com/allisson/linkcodec/internal/codec/domain"
)

// MockCodecUseCase is a mock implementation of usecase.CodecUseCase.
type MockCodecUseCase struct {
	mock.Mock
}

// Encode mocks the Encode method of CodecUseCase.
func (m *MockCodecUseCase) Encode(ctx context.Context, id int64) (*codecDomain.EncodedToken, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codecDomain.EncodedToken), args.Error(1)
}

// Decode mocks the Decode method of CodecUseCase.
func (m *MockCodecUseCase) Decode(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

// EncodeBatch mocks the EncodeBatch method of CodecUseCase.
func (m *MockCodecUseCase) EncodeBatch(ctx context.Context, ids []int64) ([]codecDomain.EncodedToken, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]codecDomain.EncodedToken), args.Error(1)
}

// BuildLink mocks the BuildLink method of CodecUseCase.
func (m *MockCodecUseCase) BuildLink(ctx context.Context, resource string, id int64) (*codecDomain.Link, error) {
	args := m.Called(ctx, resource, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codecDomain.Link), args.Error(1)
}

// ResolveLink mocks the ResolveLink method of CodecUseCase.
func (m *MockCodecUseCase) ResolveLink(
	ctx context.Context,
	resource, token string,
) (*codecDomain.ResolvedLink, error) {
	args := m.Called(ctx, resource, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codecDomain.ResolvedLink), args.Error(1)
}

// MockTokenCodec is a mock implementation of usecase.TokenCodec.
type MockTokenCodec struct {
	mock.Mock
}

// Encode mocks the Encode method of TokenCodec.
func (m *MockTokenCodec) Encode(id int64) (codecDomain.Token, error) {
	args := m.Called(id)
	return args.Get(0).(codecDomain.Token), args.Error(1)
}

// Decode mocks the Decode method of TokenCodec.
func (m *MockTokenCodec) Decode(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}
