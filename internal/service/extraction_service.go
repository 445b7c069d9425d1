package service

import (
	"context"
	"log"
	"sync"
	"time"

	"taxlens/internal/domain"
	"taxlens/internal/extraction"
)

// ExtractionConfig holds extraction service settings.
type ExtractionConfig struct {
	TimeBudget    time.Duration
	MaxInputBytes int
	BatchLimit    int
	Concurrency   int
}

// ExtractionService wraps the engine with the operational concerns the
// engine itself stays free of: a per-call time budget, input size caps,
// document-type detection, and batch fan-out.
type ExtractionService struct {
	engine *extraction.Engine
	cfg    ExtractionConfig
}

// NewExtractionService creates an ExtractionService.
func NewExtractionService(engine *extraction.Engine, cfg ExtractionConfig) *ExtractionService {
	return &ExtractionService{engine: engine, cfg: cfg}
}

// Extract runs one document through the engine under the configured time
// budget. A zero budget means unbounded. Extract never returns a nil result
// alongside a nil error.
func (s *ExtractionService) Extract(ctx context.Context, text string, docType domain.DocumentType) (*domain.ExtractionResult, error) {
	if s.cfg.MaxInputBytes > 0 && len(text) > s.cfg.MaxInputBytes {
		result := domain.NewExtractionResult(resolveDocType(text, docType), len(text))
		result.Metadata.Reason = domain.ReasonInputTooLarge
		return result, nil
	}

	resolved := resolveDocType(text, docType)

	if s.cfg.TimeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TimeBudget)
		defer cancel()
	}

	done := make(chan *domain.ExtractionResult, 1)
	go func() {
		done <- s.engine.Extract(text, resolved)
	}()

	select {
	case result := <-done:
		return result, nil
	case <-ctx.Done():
		log.Printf("extractionService: budget exceeded (input=%d bytes, type=%s)", len(text), resolved)
		return nil, domain.ErrExtractionTimeout
	}
}

// ExtractBatch extracts every document in the batch, fanning out across a
// bounded set of workers. Output order matches input order; a per-document
// timeout surfaces as that item's error without failing the batch.
func (s *ExtractionService) ExtractBatch(ctx context.Context, inputs []domain.BatchInput) ([]domain.BatchItem, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrBatchEmpty
	}
	if s.cfg.BatchLimit > 0 && len(inputs) > s.cfg.BatchLimit {
		return nil, domain.ErrBatchTooLarge
	}

	concurrency := s.cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	items := make([]domain.BatchItem, len(inputs))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range inputs {
		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }() // release

			in := inputs[idx]
			result, err := s.Extract(ctx, in.Text, in.DocumentType)
			if err != nil {
				// Budget exhaustion degrades to an empty result for this
				// document; the batch itself still completes.
				result = domain.NewExtractionResult(in.DocumentType, len(in.Text))
				result.Metadata.Reason = domain.ReasonBudgetExceeded
				log.Printf("extractionService: batch item %d failed: %v", idx, err)
			}
			items[idx] = domain.BatchItem{ID: in.ID, Result: result}
		}(i)
	}
	wg.Wait()

	return items, nil
}
