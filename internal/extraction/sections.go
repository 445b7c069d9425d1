package extraction

import (
	"taxlens/internal/domain"
)

// sectionFields groups fields under the form sections the collaborating UI
// renders. Pure display lookup, no dependency on extraction state.
var sectionFields = map[domain.FormSection][]domain.FieldName{
	domain.SectionPersonal: {
		domain.FieldFullName,
		domain.FieldDateOfBirth,
		domain.FieldAddress,
	},
	domain.SectionIdentity: {
		domain.FieldPANNumber,
		domain.FieldAadhaarNumber,
	},
	domain.SectionIncome: {
		domain.FieldEmployerName,
		domain.FieldGrossSalary,
		domain.FieldBasicSalary,
		domain.FieldHRA,
		domain.FieldOtherAllowances,
		domain.FieldTotalIncome,
	},
	domain.SectionTax: {
		domain.FieldProfessionalTax,
		domain.FieldTaxDeducted,
		domain.FieldAssessmentYear,
		domain.FieldFinancialYear,
	},
	domain.SectionBank: {
		domain.FieldBankName,
		domain.FieldAccountNumber,
		domain.FieldIFSCCode,
	},
	domain.SectionContact: {
		domain.FieldPhoneNumber,
		domain.FieldEmail,
		domain.FieldPostalCode,
		domain.FieldAddress,
	},
}

// sectionOrder is the display order of form sections.
var sectionOrder = []domain.FormSection{
	domain.SectionPersonal,
	domain.SectionIdentity,
	domain.SectionIncome,
	domain.SectionTax,
	domain.SectionBank,
	domain.SectionContact,
}

// Sections lists all known form sections in display order.
func Sections() []domain.FormSection {
	out := make([]domain.FormSection, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// FieldsForSection returns the ordered fields of a form section.
func FieldsForSection(section domain.FormSection) ([]domain.FieldName, error) {
	fields, ok := sectionFields[section]
	if !ok {
		return nil, domain.ErrUnknownSection
	}
	out := make([]domain.FieldName, len(fields))
	copy(out, fields)
	return out, nil
}
