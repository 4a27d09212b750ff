package mocks

import (
	"context"

	"promoapi/internal/synthesizer"

	"github.com/stretchr/testify/mock"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, req synthesizer.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
