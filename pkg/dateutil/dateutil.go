package dateutil

import (
	"time"
)

// DaysPerYear is the flat year length used for day counts. Leap days are ignored.
const DaysPerYear = 365

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// DaysForYears converts a span of whole years to days. Negative spans stay negative.
func DaysForYears(years int) int {
	return years * DaysPerYear
}

// CalendarYearAtAge returns the calendar year in which someone born on birthDate turns age.
func CalendarYearAtAge(birthDate time.Time, age int) int {
	return birthDate.Year() + age
}

// ParseDate parses an ISO date (2006-01-02) in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
