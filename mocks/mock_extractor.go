package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxlens/internal/domain"
)

// MockExtractor is a mock implementation of service.Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, text string, docType domain.DocumentType) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, text, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockExtractor) ExtractBatch(ctx context.Context, inputs []domain.BatchInput) ([]domain.BatchItem, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchItem), args.Error(1)
}
