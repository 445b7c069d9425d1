package extraction_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxlens/internal/domain"
	"taxlens/internal/extraction"
)

func TestOverallConfidence_Empty(t *testing.T) {
	assert.Zero(t, extraction.OverallConfidence(nil))
	assert.Zero(t, extraction.OverallConfidence(map[domain.FieldName]float64{}))
}

func TestOverallConfidence_FewFieldsPenalized(t *testing.T) {
	// A single high-confidence field is still a thin extraction.
	got := extraction.OverallConfidence(map[domain.FieldName]float64{
		domain.FieldPANNumber: 0.95,
	})
	assert.InDelta(t, 0.10, got, 0.005)
}

func TestOverallConfidence_ScaleSaturatesAtTenFields(t *testing.T) {
	scores := make(map[domain.FieldName]float64)
	for i, f := range domain.AllFieldNames {
		if i >= 12 {
			break
		}
		scores[f] = 0.9
	}
	assert.InDelta(t, 0.9, extraction.OverallConfidence(scores), 1e-9)
}

func TestOverallConfidence_MonotonicInFieldCount(t *testing.T) {
	// Holding per-field confidence fixed, adding one more surviving field
	// never decreases the overall score.
	prev := 0.0
	scores := make(map[domain.FieldName]float64)
	for i, f := range domain.AllFieldNames {
		scores[f] = 0.9
		got := extraction.OverallConfidence(scores)
		assert.GreaterOrEqual(t, got, prev, fmt.Sprintf("with %d fields", i+1))
		prev = got
	}
}

func TestOverallConfidence_RoundedToTwoDecimals(t *testing.T) {
	got := extraction.OverallConfidence(map[domain.FieldName]float64{
		domain.FieldPANNumber: 0.95,
		domain.FieldFullName:  0.8,
		domain.FieldEmail:     0.9,
	})
	// mean 0.8833… × 0.3 = 0.265
	assert.InDelta(t, 0.27, got, 0.011)
	assert.Equal(t, got, float64(int(got*100+0.5))/100)
}
