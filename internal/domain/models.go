package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchRecord describes one rule that fired for a field, whether or not the
// value survived validation. Kept for observability: downstream consumers can
// see what matched and discount fallback hits.
type MatchRecord struct {
	Field      FieldName `json:"field"`
	Rule       string    `json:"rule"`
	Confidence float64   `json:"confidence"`
	Fallback   bool      `json:"fallback"`
	Accepted   bool      `json:"accepted"`
}

// ExtractionMetadata carries diagnostics for one extraction run.
type ExtractionMetadata struct {
	ExtractionID    uuid.UUID        `json:"extraction_id"`
	DocumentType    DocumentType     `json:"document_type"`
	InputTextLength int              `json:"input_text_length"`
	ExtractedAt     time.Time        `json:"extracted_at"`
	Matches         []MatchRecord    `json:"matches,omitempty"`
	Reason          ExtractionReason `json:"reason,omitempty"`
}

// ExtractionResult is the output of one extraction run. It is built fresh
// per call and holds no reference to the registry or the input text.
//
// Invariant: every key of Fields is a key of ConfidenceScores, and every key
// of ConfidenceScores named a field for which some rule matched.
type ExtractionResult struct {
	Fields            map[FieldName]string  `json:"fields"`
	ConfidenceScores  map[FieldName]float64 `json:"confidence_scores"`
	OverallConfidence float64               `json:"overall_confidence"`
	Metadata          ExtractionMetadata    `json:"metadata"`
}

// NewExtractionResult returns an empty result stamped for the given input.
func NewExtractionResult(docType DocumentType, inputLen int) *ExtractionResult {
	return &ExtractionResult{
		Fields:           make(map[FieldName]string),
		ConfidenceScores: make(map[FieldName]float64),
		Metadata: ExtractionMetadata{
			ExtractionID:    uuid.New(),
			DocumentType:    docType,
			InputTextLength: inputLen,
			ExtractedAt:     time.Now().UTC(),
		},
	}
}

// BatchInput is one document in a batch extraction request.
type BatchInput struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	DocumentType DocumentType `json:"document_type"`
}

// BatchItem pairs a batch input with its extraction result.
type BatchItem struct {
	ID     string            `json:"id"`
	Result *ExtractionResult `json:"result"`
}
