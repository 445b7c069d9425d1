package extraction

import (
	"math"

	"taxlens/internal/domain"
)

// OverallConfidence combines the per-field confidences of fields that
// survived validation into one extraction-quality score: the arithmetic
// mean, scaled by fieldCount/10 with the scale capped at 1. Extractions that
// populate more fields are rewarded; a result with one or two fields is
// penalized even if those fields are individually high-confidence.
//
// This is a documented heuristic, not a calibrated probability.
func OverallConfidence(scores map[domain.FieldName]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	scale := float64(len(scores)) / 10
	if scale > 1 {
		scale = 1
	}
	return math.Round(mean*scale*100) / 100
}
