package mocks

import (
	"context"

	"promoapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, rawURL string) (*model.GenerationResult, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GenerationResult), args.Error(1)
}
