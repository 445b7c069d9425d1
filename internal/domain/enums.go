package domain

// FieldName identifies one datum the engine attempts to extract.
// The set is fixed and closed; adding a field means adding registry
// rules, never touching the extraction loop.
type FieldName string

const (
	FieldFullName        FieldName = "full_name"
	FieldPANNumber       FieldName = "pan_number"
	FieldAadhaarNumber   FieldName = "aadhaar_number"
	FieldDateOfBirth     FieldName = "date_of_birth"
	FieldGrossSalary     FieldName = "gross_salary"
	FieldBasicSalary     FieldName = "basic_salary"
	FieldHRA             FieldName = "housing_allowance"
	FieldOtherAllowances FieldName = "other_allowances"
	FieldProfessionalTax FieldName = "professional_tax"
	FieldTaxDeducted     FieldName = "tax_deducted"
	FieldTotalIncome     FieldName = "total_income"
	FieldAccountNumber   FieldName = "account_number"
	FieldIFSCCode        FieldName = "ifsc_code"
	FieldBankName        FieldName = "bank_name"
	FieldEmployerName    FieldName = "employer_name"
	FieldAddress         FieldName = "address"
	FieldPostalCode      FieldName = "postal_code"
	FieldPhoneNumber     FieldName = "phone_number"
	FieldEmail           FieldName = "email"
	FieldAssessmentYear  FieldName = "assessment_year"
	FieldFinancialYear   FieldName = "financial_year"
)

// AllFieldNames lists every registered field in a stable order.
var AllFieldNames = []FieldName{
	FieldFullName,
	FieldPANNumber,
	FieldAadhaarNumber,
	FieldDateOfBirth,
	FieldGrossSalary,
	FieldBasicSalary,
	FieldHRA,
	FieldOtherAllowances,
	FieldProfessionalTax,
	FieldTaxDeducted,
	FieldTotalIncome,
	FieldAccountNumber,
	FieldIFSCCode,
	FieldBankName,
	FieldEmployerName,
	FieldAddress,
	FieldPostalCode,
	FieldPhoneNumber,
	FieldEmail,
	FieldAssessmentYear,
	FieldFinancialYear,
}

// DocumentType categorizes the source document. It is a hint only:
// extraction runs the full registry regardless of type.
type DocumentType string

const (
	DocTypeGeneric          DocumentType = "generic"
	DocTypeSalarySlip       DocumentType = "salary_slip"
	DocTypeBankStatement    DocumentType = "bank_statement"
	DocTypeIdentityDocument DocumentType = "identity_document"
	DocTypeForm16           DocumentType = "form16"
)

// FormSection names a group of related fields for display purposes.
type FormSection string

const (
	SectionPersonal FormSection = "personal"
	SectionIdentity FormSection = "identity"
	SectionIncome   FormSection = "income"
	SectionBank     FormSection = "bank"
	SectionContact  FormSection = "contact"
	SectionTax      FormSection = "tax"
)

// ExtractionReason explains a degenerate extraction outcome in metadata.
type ExtractionReason string

const (
	ReasonEmptyInput     ExtractionReason = "empty_input"
	ReasonInputTooLarge  ExtractionReason = "input_too_large"
	ReasonBudgetExceeded ExtractionReason = "time_budget_exceeded"
)
