package extraction

import (
	"regexp"
	"strings"

	"taxlens/internal/domain"
)

// baselineConfidence is the weight any rule match starts from.
const baselineConfidence = 0.8

// shapeScore overrides the baseline for fields with a checkable canonical
// shape: the raw matched value either already conforms (boost) or it
// matched some rule without conforming (penalty). The shape patterns here
// tolerate the separators a raw match may still carry; the validator's
// post-normalization shapes are stricter.
type shapeScore struct {
	shape   *regexp.Regexp
	boost   float64
	penalty float64
}

var shapeScores = map[domain.FieldName]shapeScore{
	domain.FieldPANNumber: {
		shape: regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`), boost: 0.95, penalty: 0.60,
	},
	domain.FieldAadhaarNumber: {
		shape: regexp.MustCompile(`^\d{4}\s?\d{4}\s?\d{4}$`), boost: 0.95, penalty: 0.60,
	},
	domain.FieldIFSCCode: {
		shape: regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`), boost: 0.90, penalty: 0.60,
	},
	domain.FieldEmail: {
		shape: regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`), boost: 0.90, penalty: 0.50,
	},
	domain.FieldPhoneNumber: {
		shape: regexp.MustCompile(`^(?:\+\d{1,3}[\s-]?)?\d{10}$`), boost: 0.90, penalty: 0.60,
	},
	domain.FieldPostalCode: {
		shape: regexp.MustCompile(`^\d{6}$`), boost: 0.90, penalty: 0.50,
	},
}

// Score assigns a confidence in [0,1] to a raw matched value. Fields without
// a shape override keep the baseline regardless of content: free-form fields
// like employer or address have no canonical shape to check, so validation
// is their only gate.
func Score(field domain.FieldName, raw string) float64 {
	ss, ok := shapeScores[field]
	if !ok {
		return baselineConfidence
	}
	if ss.shape.MatchString(strings.TrimSpace(raw)) {
		return ss.boost
	}
	return ss.penalty
}
