package extraction

import (
	"strings"
	"sync"

	"taxlens/internal/domain"
)

// DefaultConcurrency bounds per-field matching goroutines when no width is
// configured.
const DefaultConcurrency = 4

// Engine runs the extraction pipeline: normalize once, match and score every
// registered field, canonicalize the chosen values, gate them through the
// validator, and aggregate an overall confidence. The engine holds no
// per-call state; one Engine serves concurrent extractions.
type Engine struct {
	registry    *Registry
	concurrency int
}

// NewEngine creates an Engine over the given registry. concurrency bounds
// how many fields are matched in parallel per call; values below 1 fall back
// to DefaultConcurrency.
func NewEngine(registry *Registry, concurrency int) *Engine {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Engine{registry: registry, concurrency: concurrency}
}

// fieldOutcome is the per-field result collected from the worker goroutines.
type fieldOutcome struct {
	match    *Match
	value    string
	accepted bool
}

// Extract runs the full pipeline over raw text. It never returns an error:
// degenerate input produces an empty result with a diagnostic reason, and
// every other failure mode degrades to a partial result.
func (e *Engine) Extract(text string, docType domain.DocumentType) *domain.ExtractionResult {
	if docType == "" {
		docType = domain.DocTypeGeneric
	}
	result := domain.NewExtractionResult(docType, len(text))

	if strings.TrimSpace(text) == "" {
		result.Metadata.Reason = domain.ReasonEmptyInput
		return result
	}

	normalized := NormalizeText(text)

	// Field extractions are independent of one another, so they fan out
	// across a bounded set of goroutines. The registry is read-only shared
	// state; outcomes land in a map guarded by mu.
	outcomes := make(map[domain.FieldName]*fieldOutcome, len(e.registry.rules))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.concurrency)

	for _, field := range e.registry.Fields() {
		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(f domain.FieldName) {
			defer wg.Done()
			defer func() { <-sem }() // release

			m := MatchField(e.registry, f, normalized)
			if m == nil {
				return
			}
			value := NormalizeValue(f, m.Value)
			out := &fieldOutcome{
				match:    m,
				value:    value,
				accepted: ValidateField(f, value),
			}
			mu.Lock()
			outcomes[f] = out
			mu.Unlock()
		}(field)
	}
	wg.Wait()

	// Assemble in the stable field order so metadata is deterministic for
	// identical input regardless of goroutine scheduling.
	for _, f := range domain.AllFieldNames {
		out, ok := outcomes[f]
		if !ok {
			continue
		}
		result.Metadata.Matches = append(result.Metadata.Matches, domain.MatchRecord{
			Field:      f,
			Rule:       out.match.Rule.Description(),
			Confidence: out.match.Confidence,
			Fallback:   out.match.Rule.Fallback(),
			Accepted:   out.accepted,
		})
		if out.accepted {
			result.Fields[f] = out.value
			result.ConfidenceScores[f] = out.match.Confidence
		}
	}

	result.OverallConfidence = OverallConfidence(result.ConfidenceScores)
	return result
}
