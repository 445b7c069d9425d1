package extraction

import (
	"regexp"
	"strings"

	"taxlens/internal/domain"
)

var (
	freeTextDisallowed = regexp.MustCompile(`[^A-Za-z0-9 &.]`)
	nonAlphanumeric    = regexp.MustCompile(`[^A-Za-z0-9]`)
	nonDigit           = regexp.MustCompile(`\D`)
	nonMonetary        = regexp.MustCompile(`[^\d,.]`)
)

// valueNormalizers maps each field to its canonicalization step, applied
// after the best match is chosen and before validation. Fields without an
// entry are passed through trimmed.
var valueNormalizers = map[domain.FieldName]func(string) string{
	domain.FieldFullName:     normalizeFreeText,
	domain.FieldBankName:     normalizeFreeText,
	domain.FieldEmployerName: normalizeFreeText,

	domain.FieldPANNumber: normalizeIdentifier,
	domain.FieldIFSCCode:  normalizeIdentifier,

	domain.FieldAadhaarNumber: normalizeAadhaar,
	domain.FieldPhoneNumber:   normalizePhone,
	domain.FieldEmail:         normalizeEmail,
	domain.FieldDateOfBirth:   canonicalizeDate,

	domain.FieldGrossSalary:     normalizeMonetary,
	domain.FieldBasicSalary:     normalizeMonetary,
	domain.FieldHRA:             normalizeMonetary,
	domain.FieldOtherAllowances: normalizeMonetary,
	domain.FieldProfessionalTax: normalizeMonetary,
	domain.FieldTaxDeducted:     normalizeMonetary,
	domain.FieldTotalIncome:     normalizeMonetary,
}

// NormalizeValue canonicalizes a raw matched value for its field.
func NormalizeValue(field domain.FieldName, raw string) string {
	if fn, ok := valueNormalizers[field]; ok {
		return fn(raw)
	}
	return strings.TrimSpace(raw)
}

func normalizeFreeText(s string) string {
	s = freeTextDisallowed.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func normalizeIdentifier(s string) string {
	return strings.ToUpper(nonAlphanumeric.ReplaceAllString(s, ""))
}

// normalizeAadhaar forces the canonical three 4-digit groups. Anything that
// does not reduce to exactly 12 digits is left as its digit run and will
// fail the strict shape check downstream.
func normalizeAadhaar(s string) string {
	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) != 12 {
		return digits
	}
	return digits[0:4] + " " + digits[4:8] + " " + digits[8:12]
}

func normalizePhone(s string) string {
	s = strings.TrimSpace(s)
	digits := nonDigit.ReplaceAllString(s, "")
	if strings.HasPrefix(s, "+") {
		return "+" + digits
	}
	return digits
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeMonetary keeps digits and grouping separators only. Separators
// are preserved rather than resolved: locale-aware numeric parsing is the
// consumer's job (see export, which does exactly that).
func normalizeMonetary(s string) string {
	return nonMonetary.ReplaceAllString(s, "")
}
