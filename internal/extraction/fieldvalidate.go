package extraction

import (
	"regexp"

	"taxlens/internal/domain"
)

// maxFieldLength bounds accepted free-text values.
const maxFieldLength = 200

// strictShapes are the anchored acceptance patterns for structured
// identifiers, checked against the NORMALIZED value. A field that matched a
// rule but fails its shape here is dropped from the result entirely;
// downstream systems (banking, tax filing) expect these formats exactly.
//
// date_of_birth carries a strict shape deliberately: the value normalizer
// passes unparseable dates through unchanged, and accepting those would leak
// non-canonical strings into a field documented as YYYY-MM-DD.
var strictShapes = map[domain.FieldName]*regexp.Regexp{
	domain.FieldPANNumber:     regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`),
	domain.FieldAadhaarNumber: regexp.MustCompile(`^\d{4} \d{4} \d{4}$`),
	domain.FieldIFSCCode:      regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`),
	domain.FieldEmail:         regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`),
	domain.FieldPhoneNumber:   regexp.MustCompile(`^(?:\+\d{1,3})?\d{10}$`),
	domain.FieldPostalCode:    regexp.MustCompile(`^\d{6}$`),
	domain.FieldAccountNumber: regexp.MustCompile(`^\d{9,18}$`),
	domain.FieldDateOfBirth:   regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
}

// StrictShape returns the exact-shape pattern for a field, if it has one.
func StrictShape(field domain.FieldName) (*regexp.Regexp, bool) {
	re, ok := strictShapes[field]
	return re, ok
}

// ValidateField is the final acceptance gate for a normalized value.
// Strict-shape fields must conform exactly; everything else only has to be
// non-empty and within sane length bounds.
func ValidateField(field domain.FieldName, value string) bool {
	if re, ok := strictShapes[field]; ok {
		return re.MatchString(value)
	}
	return value != "" && len(value) < maxFieldLength
}
