package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxlens/internal/domain"
	"taxlens/internal/extraction"
)

func dob(s string) string {
	return extraction.NormalizeValue(domain.FieldDateOfBirth, s)
}

func TestCanonicalizeDate_NumericFourDigitYear(t *testing.T) {
	assert.Equal(t, "1990-03-15", dob("15/03/1990"))
	assert.Equal(t, "1990-03-15", dob("15-03-1990"))
	assert.Equal(t, "1990-03-15", dob("15.03.1990"))
	assert.Equal(t, "2001-01-05", dob("5/1/2001"))
}

func TestCanonicalizeDate_TwoDigitYearPivot(t *testing.T) {
	// Below the pivot lands in the 2000s, at or above it in the 1900s.
	assert.Equal(t, "2005-03-15", dob("15/03/05"))
	assert.Equal(t, "1972-03-15", dob("15/03/72"))
	assert.Equal(t, "1950-01-01", dob("1/1/50"))
	assert.Equal(t, "2049-12-31", dob("31/12/49"))
}

func TestCanonicalizeDate_DayMonthName(t *testing.T) {
	assert.Equal(t, "1990-03-15", dob("15 March 1990"))
	assert.Equal(t, "1990-03-15", dob("15 Mar 1990"))
	assert.Equal(t, "2001-02-08", dob("8 febr 2001")) // OCR-truncated month
}

func TestCanonicalizeDate_MonthNameDay(t *testing.T) {
	assert.Equal(t, "1990-03-15", dob("March 15, 1990"))
	assert.Equal(t, "1990-03-15", dob("Mar 15 1990"))
}

func TestCanonicalizeDate_Unparseable(t *testing.T) {
	t.Run("garbage_passes_through", func(t *testing.T) {
		assert.Equal(t, "not a date", dob("not a date"))
	})
	t.Run("unknown_month_passes_through", func(t *testing.T) {
		assert.Equal(t, "15 Xyzzy 1990", dob("15 Xyzzy 1990"))
	})
	t.Run("out_of_range_components_pass_through", func(t *testing.T) {
		assert.Equal(t, "45/13/1990", dob("45/13/1990"))
	})
	t.Run("short_month_token_passes_through", func(t *testing.T) {
		assert.Equal(t, "15 Ma 1990", dob("15 Ma 1990"))
	})
}
