package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
	}{
		{
			name:        "Same month and day",
			birthDate:   time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: 30,
		},
		{
			name:        "Day before birthday",
			birthDate:   time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			expectedAge: 29,
		},
		{
			name:        "Month after birthday",
			birthDate:   time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: 30,
		},
		{
			name:        "Leap day birth checked on Feb 28",
			birthDate:   time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
		},
		{
			name:        "Leap day birth checked on Mar 1",
			birthDate:   time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: 61,
		},
		{
			name:        "Born in the future",
			birthDate:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedAge, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestDaysForYears(t *testing.T) {
	assert.Equal(t, 20075, DaysForYears(55))
	assert.Equal(t, 0, DaysForYears(0))
	assert.Equal(t, -365, DaysForYears(-1))
}

func TestCalendarYearAtAge(t *testing.T) {
	birth := time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2055, CalendarYearAtAge(birth, 60))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1995-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("04/01/1995")
	assert.Error(t, err)
}
