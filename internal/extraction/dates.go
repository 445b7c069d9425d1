package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// twoDigitYearPivot expands a 2-digit year: values below the pivot land in
// the 2000s, the rest in the 1900s.
const twoDigitYearPivot = 50

var months = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var (
	dateDMY4     = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})$`)
	dateDMY2     = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{2})$`)
	dateDayName  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+),?\s+(\d{4})$`)
	dateNameDay  = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})$`)
)

// monthByPrefix resolves a month token by case-insensitive prefix against
// the month table, so OCR-truncated names ("febr") and 3-letter
// abbreviations both resolve. Returns 0 when no entry matches.
func monthByPrefix(token string) int {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) < 3 {
		return 0
	}
	for i, name := range months {
		if strings.HasPrefix(name, token) {
			return i + 1
		}
	}
	return 0
}

// canonicalizeDate rewrites a matched date string as YYYY-MM-DD. It is
// best-effort: a string no format recognizes comes back unchanged, deferring
// to the validator to reject it.
func canonicalizeDate(raw string) string {
	s := strings.TrimSpace(raw)

	if m := dateDMY4.FindStringSubmatch(s); m != nil {
		return formatDate(m[3], m[2], m[1], raw)
	}
	if m := dateDMY2.FindStringSubmatch(s); m != nil {
		yy, _ := strconv.Atoi(m[3])
		year := 1900 + yy
		if yy < twoDigitYearPivot {
			year = 2000 + yy
		}
		return formatDate(strconv.Itoa(year), m[2], m[1], raw)
	}
	if m := dateDayName.FindStringSubmatch(s); m != nil {
		if month := monthByPrefix(m[2]); month > 0 {
			return formatDate(m[3], strconv.Itoa(month), m[1], raw)
		}
		return raw
	}
	if m := dateNameDay.FindStringSubmatch(s); m != nil {
		if month := monthByPrefix(m[1]); month > 0 {
			return formatDate(m[3], strconv.Itoa(month), m[2], raw)
		}
		return raw
	}
	return raw
}

// formatDate assembles YYYY-MM-DD, falling back to the original string when
// the components are out of range.
func formatDate(year, month, day, original string) string {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return original
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
