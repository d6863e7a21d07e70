package utils

import (
	"math/rand"
	"time"

	"github.com/jinzhu/now"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
)

// CalculateAge returns full years between dob and the reference time.
func CalculateAge(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	months := int(at.Month()) - int(dob.Month())
	days := at.Day() - dob.Day()

	if months < 0 || (months == 0 && days < 0) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// GenerateBatchCode builds the citizen batch code: current year followed by a
// random 4-digit suffix (e.g. 20260417).
func GenerateBatchCode(at time.Time) int {
	return at.Year()*10000 + rand.Intn(10000)
}

// FormatDate renders a stored timestamp in the display format used by list
// views. Formatting happens only at the boundary, never at storage time.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayoutDisplay)
}

// FormatDatePtr renders an optional timestamp, falling back to N/A.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return constants.ValueNotAvailable
	}
	return FormatDate(*t)
}

// EndOfDay expands a date-only bound to the last instant of that day so
// BETWEEN-style range filters include the whole end date.
func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// StringOrNA substitutes the display fallback for missing optional strings.
func StringOrNA(s *string) string {
	if s == nil || *s == "" {
		return constants.ValueNotAvailable
	}
	return *s
}

// PtrOrNil returns nil for empty strings so optional columns stay null
// instead of storing "".
func PtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
