package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAge(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 36, CalculateAge(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), at))
	// Birthday later this year: not yet a full year older.
	assert.Equal(t, 35, CalculateAge(time.Date(1990, 9, 1, 0, 0, 0, 0, time.UTC), at))
	// Birthday today counts.
	assert.Equal(t, 36, CalculateAge(time.Date(1990, 8, 31, 0, 0, 0, 0, time.UTC), at))
	assert.Equal(t, 0, CalculateAge(at.AddDate(0, 1, 0), at))
}

func TestGenerateBatchCode(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		code := GenerateBatchCode(at)
		assert.Equal(t, 2026, code/10000)
		assert.Less(t, code%10000, 10000)
	}
}

func TestFormatDatePtr(t *testing.T) {
	assert.Equal(t, "N/A", FormatDatePtr(nil))

	stamp := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Aug 31, 2026", FormatDatePtr(&stamp))
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	end := EndOfDay(day)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, day.Day(), end.Day())
}

func TestStringHelpers(t *testing.T) {
	assert.Nil(t, PtrOrNil(""))
	value := "Farmer"
	assert.Equal(t, &value, PtrOrNil("Farmer"))

	assert.Equal(t, "N/A", StringOrNA(nil))
	empty := ""
	assert.Equal(t, "N/A", StringOrNA(&empty))
	assert.Equal(t, "Farmer", StringOrNA(&value))
}
