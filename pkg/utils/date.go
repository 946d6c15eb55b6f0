package utils

import "time"

// MonthsAgo returns the instant n months before now. Analytics windows are
// trailing months with the cutoff computed in Go and passed as a query
// argument, keeping the SQL portable.
func MonthsAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, -n, 0)
}

// DaysAgo returns the instant n days before now.
func DaysAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, -n)
}
