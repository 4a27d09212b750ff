package mocks

import (
	"context"

	"promoapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPostSynthesizer struct {
	mock.Mock
}

func (m *MockPostSynthesizer) Synthesize(ctx context.Context, title, body string) ([]model.PostCandidate, error) {
	args := m.Called(ctx, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostCandidate), args.Error(1)
}
