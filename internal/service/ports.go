package service

import (
	"context"

	"taxlens/internal/domain"
)

// Extractor is the extraction surface handlers depend on.
type Extractor interface {
	Extract(ctx context.Context, text string, docType domain.DocumentType) (*domain.ExtractionResult, error)
	ExtractBatch(ctx context.Context, inputs []domain.BatchInput) ([]domain.BatchItem, error)
}

var _ Extractor = (*ExtractionService)(nil)
