package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxlens/internal/domain"
	"taxlens/internal/extraction"
)

func newEngine() *extraction.Engine {
	return extraction.NewEngine(extraction.NewRegistry(), extraction.DefaultConcurrency)
}

const identityText = "Name: Asha Rao PAN: ABCDE1234F DOB: 15/03/1990 Mobile: +91 9876543210"

const salarySlipText = `XYZ Tech Pvt Ltd
Salary Slip
Employee Name: Ravi Kumar
PAN: BXYPK3456L
Bank: HDFC Bank
A/c No: 123456789012
IFSC: HDFC0001234
Basic Salary: Rs 45,000
HRA: Rs 18,000
Gross Salary: Rs 75,500.50
Professional Tax: Rs 200
TDS: Rs 4,500
Net Pay: Rs 70,800`

func TestEngine_Extract_IdentityDocument(t *testing.T) {
	result := newEngine().Extract(identityText, domain.DocTypeIdentityDocument)

	assert.Equal(t, "Asha Rao", result.Fields[domain.FieldFullName])
	assert.Equal(t, "ABCDE1234F", result.Fields[domain.FieldPANNumber])
	assert.Equal(t, "1990-03-15", result.Fields[domain.FieldDateOfBirth])
	assert.Equal(t, "+919876543210", result.Fields[domain.FieldPhoneNumber])
	assert.Len(t, result.Fields, 4)

	assert.InDelta(t, 0.95, result.ConfidenceScores[domain.FieldPANNumber], 1e-9)
	assert.InDelta(t, 0.90, result.ConfidenceScores[domain.FieldPhoneNumber], 1e-9)
	assert.Greater(t, result.OverallConfidence, 0.0)
	assert.InDelta(t, 0.35, result.OverallConfidence, 0.011)

	assert.Equal(t, domain.DocTypeIdentityDocument, result.Metadata.DocumentType)
	assert.Equal(t, len(identityText), result.Metadata.InputTextLength)
	assert.Empty(t, result.Metadata.Reason)
}

func TestEngine_Extract_SalarySlip(t *testing.T) {
	result := newEngine().Extract(salarySlipText, domain.DocTypeSalarySlip)

	want := map[domain.FieldName]string{
		domain.FieldEmployerName:  "XYZ Tech Pvt Ltd",
		domain.FieldFullName:      "Ravi Kumar",
		domain.FieldPANNumber:     "BXYPK3456L",
		domain.FieldBankName:      "HDFC Bank",
		domain.FieldAccountNumber: "123456789012",
		domain.FieldIFSCCode:      "HDFC0001234",
		domain.FieldBasicSalary:   "45,000",
		domain.FieldHRA:           "18,000",
		domain.FieldGrossSalary:   "75,500.50",
		domain.FieldProfessionalTax: "200",
		domain.FieldTaxDeducted:     "4,500",
		domain.FieldTotalIncome:     "70,800",
	}
	assert.Equal(t, want, result.Fields)
	assert.InDelta(t, 0.82, result.OverallConfidence, 0.001)
}

func TestEngine_Extract_EmptyInput(t *testing.T) {
	e := newEngine()
	for _, text := range []string{"", "   \n\t  "} {
		result := e.Extract(text, "")
		assert.Empty(t, result.Fields)
		assert.Empty(t, result.ConfidenceScores)
		assert.Zero(t, result.OverallConfidence)
		assert.Equal(t, domain.ReasonEmptyInput, result.Metadata.Reason)
		assert.Equal(t, domain.DocTypeGeneric, result.Metadata.DocumentType)
	}
}

func TestEngine_Extract_Idempotent(t *testing.T) {
	e := newEngine()
	first := e.Extract(salarySlipText, domain.DocTypeSalarySlip)
	second := e.Extract(salarySlipText, domain.DocTypeSalarySlip)

	assert.Equal(t, first.Fields, second.Fields)
	assert.Equal(t, first.ConfidenceScores, second.ConfidenceScores)
	assert.Equal(t, first.OverallConfidence, second.OverallConfidence)
	assert.Equal(t, first.Metadata.Matches, second.Metadata.Matches)
}

func TestEngine_Extract_ScoreInvariants(t *testing.T) {
	for _, text := range []string{identityText, salarySlipText, "unrelated text with a number 477219"} {
		result := newEngine().Extract(text, "")
		for f := range result.Fields {
			score, ok := result.ConfidenceScores[f]
			require.True(t, ok, "field %s has no confidence score", f)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
		// Scores only exist for fields that matched some rule.
		matched := make(map[domain.FieldName]bool)
		for _, m := range result.Metadata.Matches {
			matched[m.Field] = true
		}
		for f := range result.ConfidenceScores {
			assert.True(t, matched[f], "score for %s without a match record", f)
		}
	}
}

func TestEngine_Extract_StrictShapeFieldsConform(t *testing.T) {
	result := newEngine().Extract(salarySlipText, "")
	for f, v := range result.Fields {
		if re, ok := extraction.StrictShape(f); ok {
			assert.True(t, re.MatchString(v), "%s = %q violates its shape", f, v)
		}
	}
}

func TestEngine_Extract_RejectedFieldStaysInMetadata(t *testing.T) {
	// The labelled account rule matches a 9-digit minimum, so feed a
	// malformed date instead: DOB label with a value no format recognizes.
	result := newEngine().Extract("DOB: 45/13/1990", domain.DocTypeIdentityDocument)

	_, present := result.Fields[domain.FieldDateOfBirth]
	assert.False(t, present)
	_, present = result.ConfidenceScores[domain.FieldDateOfBirth]
	assert.False(t, present)

	var rec *domain.MatchRecord
	for i := range result.Metadata.Matches {
		if result.Metadata.Matches[i].Field == domain.FieldDateOfBirth {
			rec = &result.Metadata.Matches[i]
		}
	}
	require.NotNil(t, rec, "dropped match must still be recorded")
	assert.False(t, rec.Accepted)
}

func TestEngine_Extract_FallbackFlaggedInMetadata(t *testing.T) {
	result := newEngine().Extract("reference 560034 in passing", "")

	require.Equal(t, "560034", result.Fields[domain.FieldPostalCode])
	var rec *domain.MatchRecord
	for i := range result.Metadata.Matches {
		if result.Metadata.Matches[i].Field == domain.FieldPostalCode {
			rec = &result.Metadata.Matches[i]
		}
	}
	require.NotNil(t, rec)
	assert.True(t, rec.Fallback)
}
