package mocks

import (
	"context"

	"promoapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockArticleExtractor struct {
	mock.Mock
}

func (m *MockArticleExtractor) Extract(ctx context.Context, rawURL string) (*model.ExtractedArticle, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractedArticle), args.Error(1)
}
