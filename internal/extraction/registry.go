package extraction

import (
	"regexp"

	"taxlens/internal/domain"
)

// Rule is one candidate recognition pattern for a field. Rules for a field
// are tried in declaration order; earlier rules encode more specific
// (labelled) phrasings and win ties against later fallbacks.
type Rule struct {
	re          *regexp.Regexp
	group       int // submatch index holding the value; 0 = whole match
	fallback    bool
	description string
}

// Description returns the human-readable rule identifier used in diagnostics.
func (r Rule) Description() string { return r.description }

// Fallback reports whether this is a bare pattern with no label context.
func (r Rule) Fallback() bool { return r.fallback }

// labelled compiles a label-anchored rule. The leading word boundary keeps
// short labels like "tel" or "pin" from matching inside longer words.
func labelled(description, pattern string) Rule {
	return Rule{re: regexp.MustCompile(`\b` + pattern), group: 1, description: description}
}

func bare(description, pattern string, group int) Rule {
	return Rule{re: regexp.MustCompile(pattern), group: group, fallback: true, description: description}
}

// Registry holds the ordered rule lists for every recognized field. It is
// built once at startup and never mutated afterwards, so it is safe to share
// across concurrent extractions.
type Registry struct {
	rules map[domain.FieldName][]Rule
}

// Rules returns the ordered rule list for a field. Unknown fields yield an
// empty list, meaning the field is simply never extracted.
func (r *Registry) Rules(field domain.FieldName) []Rule {
	return r.rules[field]
}

// Fields returns every field that has at least one rule, in the stable
// domain order.
func (r *Registry) Fields() []domain.FieldName {
	fields := make([]domain.FieldName, 0, len(r.rules))
	for _, f := range domain.AllFieldNames {
		if len(r.rules[f]) > 0 {
			fields = append(fields, f)
		}
	}
	return fields
}

// amount matches a currency-prefixed numeric value after a label. Grouping
// commas and a decimal part are kept for the value normalizer.
const amount = `\s*(?:(?i:rs\.?|inr)|₹)?\s*([\d,]+(?:\.\d{1,2})?)\b`

// NewRegistry builds the default rule table. Patterns are written against
// normalized text: whitespace collapsed to single spaces and punctuation
// outside the allow-list already stripped (notably, label colons are gone).
func NewRegistry() *Registry {
	return &Registry{rules: map[domain.FieldName][]Rule{
		domain.FieldFullName: {
			labelled("full_name.employee_label", `(?i:employee\s+name|account\s+holder(?:\s+name)?|holder\s+name)\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,3})`),
			labelled("full_name.name_label", `(?i:name)\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,3})`),
			labelled("full_name.honorific", `(?:Mr|Mrs|Ms|Shri|Smt)\.?\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,3})`),
		},
		domain.FieldPANNumber: {
			labelled("pan.labelled", `(?i:pan(?:\s+(?:no|number|card))?\.?)\s+([A-Z]{5}\d{4}[A-Z])\b`),
			labelled("pan.labelled_loose", `(?i)(?:pan(?:\s+(?:no|number|card))?\.?)\s+([a-z]{5}\d{4}[a-z])\b`),
			bare("pan.bare", `\b([A-Z]{5}\d{4}[A-Z])\b`, 1),
		},
		domain.FieldAadhaarNumber: {
			labelled("aadhaar.labelled", `(?i:aadha?ar(?:\s+(?:no|number|card))?\.?|uid(?:ai)?)\s+(\d{4}\s?\d{4}\s?\d{4})\b`),
			bare("aadhaar.bare_grouped", `\b(\d{4} \d{4} \d{4})\b`, 1),
		},
		domain.FieldDateOfBirth: {
			labelled("dob.numeric", `(?i:date\s+of\s+birth|birth\s+date|dob|d\.o\.b\.?)\s+(\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})\b`),
			labelled("dob.day_month_name", `(?i:date\s+of\s+birth|birth\s+date|dob|d\.o\.b\.?)\s+(\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4})\b`),
			labelled("dob.month_name_day", `(?i:date\s+of\s+birth|birth\s+date|dob|d\.o\.b\.?)\s+([A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4})\b`),
		},
		domain.FieldGrossSalary: {
			labelled("gross_salary.labelled", `(?i:gross\s+(?:salary|pay|earnings)|total\s+earnings)`+amount),
		},
		domain.FieldBasicSalary: {
			labelled("basic_salary.labelled", `(?i:basic\s+(?:salary|pay|wage))`+amount),
			labelled("basic_salary.short", `(?i:basic)`+amount),
		},
		domain.FieldHRA: {
			labelled("housing_allowance.labelled", `(?i:house\s+rent\s+allowance|housing\s+allowance)`+amount),
			labelled("housing_allowance.hra", `(?i:hra)`+amount),
		},
		domain.FieldOtherAllowances: {
			labelled("other_allowances.labelled", `(?i:other\s+allowances?|special\s+allowance|conveyance(?:\s+allowance)?)`+amount),
		},
		domain.FieldProfessionalTax: {
			labelled("professional_tax.labelled", `(?i:professional\s+tax|prof\.?\s+tax)`+amount),
		},
		domain.FieldTaxDeducted: {
			labelled("tax_deducted.tds_full", `(?i:tax\s+deducted(?:\s+at\s+source)?)`+amount),
			labelled("tax_deducted.tds", `(?i:tds|income\s+tax)`+amount),
		},
		domain.FieldTotalIncome: {
			labelled("total_income.labelled", `(?i:total\s+income|net\s+(?:pay|salary|amount)|take\s+home)`+amount),
		},
		domain.FieldAccountNumber: {
			labelled("account_number.labelled", `(?i:a/?c(?:count)?\.?\s*(?:no|number)?\.?)\s+(\d{9,18})\b`),
			bare("account_number.bare", `\b(\d{11,18})\b`, 1),
		},
		domain.FieldIFSCCode: {
			labelled("ifsc.labelled", `(?i:ifsc(?:\s+code)?)\s+([A-Z]{4}0[A-Z0-9]{6})\b`),
			bare("ifsc.bare", `\b([A-Z]{4}0[A-Z0-9]{6})\b`, 1),
		},
		domain.FieldBankName: {
			labelled("bank_name.labelled", `(?i:bank(?:\s+name)?)\s+([A-Z][A-Za-z&.]*(?:\s[A-Z][a-z][A-Za-z&.]*){0,4})`),
			bare("bank_name.suffixed", `\b((?:[A-Z][A-Za-z&.]*\s){1,4}Bank(?:\s[oO]f\s[A-Z][a-z]+)?)\b`, 1),
		},
		domain.FieldEmployerName: {
			labelled("employer_name.labelled", `(?i:employer(?:\s+name)?|company(?:\s+name)?|organi[sz]ation)\s+([A-Z][\w&.]*(?:\s[A-Z][a-z][\w&.]*){0,4})`),
			bare("employer_name.suffixed", `\b((?:[A-Z][\w&.]*\s){1,4}(?:Pvt\.?\s+Ltd|Private\s+Limited|Limited|Ltd|LLP|Inc))\b`, 1),
		},
		domain.FieldAddress: {
			labelled("address.labelled", `(?i:address|residence)\s+([\w][\w\s,./-]{9,79})`),
		},
		domain.FieldPostalCode: {
			labelled("postal_code.labelled", `(?i:pin\s*code|pincode|pin|postal\s+code|zip)\s+(\d{6})\b`),
			bare("postal_code.bare", `\b(\d{6})\b`, 1),
		},
		domain.FieldPhoneNumber: {
			labelled("phone.labelled", `(?i:(?:mobile|phone|contact|tel)\.?\s*(?:no|number)?\.?)\s*(\+?\d[\d\s-]{8,14}\d)\b`),
			bare("phone.bare_intl", `(\+91[\s-]?\d{10})\b`, 1),
			bare("phone.bare", `\b(\d{10})\b`, 1),
		},
		domain.FieldEmail: {
			labelled("email.labelled", `(?i:e-?mail(?:\s+(?:id|address))?)\s+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})\b`),
			bare("email.bare", `\b([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})\b`, 1),
		},
		domain.FieldAssessmentYear: {
			labelled("assessment_year.labelled", `(?i:assessment\s+year|a\.?\s?y\.?)\s+(\d{4}\s?-\s?\d{2,4})\b`),
		},
		domain.FieldFinancialYear: {
			labelled("financial_year.labelled", `(?i:financial\s+year|fiscal\s+year|f\.?\s?y\.?)\s+(\d{4}\s?-\s?\d{2,4})\b`),
		},
	}}
}
