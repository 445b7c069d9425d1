package service

import (
	"strings"

	"taxlens/internal/domain"
)

// docTypeMarkers maps document types to keyword markers. The type with the
// most distinct markers present wins; detection order breaks ties.
var docTypeMarkers = []struct {
	docType domain.DocumentType
	markers []string
}{
	{domain.DocTypeForm16, []string{"form 16", "form no. 16", "certificate under section 203", "tds certificate"}},
	{domain.DocTypeSalarySlip, []string{"salary slip", "payslip", "pay slip", "earnings", "basic salary", "gross salary", "net pay"}},
	{domain.DocTypeBankStatement, []string{"bank statement", "statement of account", "account statement", "ifsc", "opening balance", "closing balance"}},
	{domain.DocTypeIdentityDocument, []string{"aadhaar", "government of india", "income tax department", "permanent account number", "unique identification"}},
}

// resolveDocType honors an explicit caller hint and otherwise classifies the
// text by keyword markers, falling back to generic.
func resolveDocType(text string, hint domain.DocumentType) domain.DocumentType {
	if hint != "" && hint != domain.DocTypeGeneric {
		return hint
	}

	lower := strings.ToLower(text)
	best := domain.DocTypeGeneric
	bestHits := 0
	for _, entry := range docTypeMarkers {
		hits := 0
		for _, marker := range entry.markers {
			if strings.Contains(lower, marker) {
				hits++
			}
		}
		if hits > bestHits {
			best = entry.docType
			bestHits = hits
		}
	}
	return best
}
