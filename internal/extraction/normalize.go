package extraction

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// Everything outside the allow-list becomes a space. Word characters,
	// whitespace, and the punctuation the rules depend on survive: label
	// dots, email @, date and year-range separators, the rupee sign,
	// grouping commas, and the phone country prefix +.
	disallowedChar = regexp.MustCompile(`[^\w\s@.\-/₹,+]`)
)

// NormalizeText prepares raw OCR text for rule matching. It is applied once
// per extraction and shared by every field, so it must stay field-agnostic:
// the rules rely on this exact baseline.
func NormalizeText(raw string) string {
	s := disallowedChar.ReplaceAllString(raw, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
