package util

import "time"

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextMonth returns the year and month for the following month
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// CurrentMonth returns the year and month of the current local calendar month
func CurrentMonth() (int, int) {
	now := time.Now()
	return now.Year(), int(now.Month())
}

// ValidMonth reports whether month is a calendar month index (1-12)
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
