package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
	}{
		{"exact birthday", time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC), 60},
		{"day before birthday", time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), 59},
		{"day after birthday", time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC), 60},
		{"leap day birth, non-leap check", time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 60},
		// CTC boundary: a child born 2009-01-01 is under 17 on 2025-12-31 (qualifying), one born 2008-12-31 is not.
		{"CTC qualifying boundary", time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 16},
		{"CTC non-qualifying boundary", time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedAge, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestLeapYearCalculation(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2000, true},
		{1900, false},
		{2004, true},
		{2001, false},
		{2024, true},
		{2025, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("year_%d", tt.year), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLeapYear(tt.year))
		})
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
}

func TestDateArithmetic(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2030, 6, 15, 12, 30, 45, 0, time.UTC), AddYears(base, 5))
	assert.Equal(t, time.Date(2026, 12, 15, 12, 30, 45, 0, time.UTC), AddMonths(base, 18))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), BeginningOfYear(base))
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999999999, time.UTC), EndOfYear(base))
}

func TestDaysBetweenInclusive(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"full year 2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 365},
		{"full leap year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 366},
		{"same day", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1},
		{"reversed", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetweenInclusive(tt.from, tt.to))
		})
	}
}
