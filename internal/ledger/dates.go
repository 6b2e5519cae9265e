package ledger

import "time"

const secondsPerDay = 24 * 60 * 60

// NormalizeDate drops the time of day and zone, keeping the calendar date
// as seen in t's own location. The result is midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nightsBetween expects normalized dates.
func nightsBetween(checkIn, checkOut time.Time) int64 {
	return (checkOut.Unix() - checkIn.Unix()) / secondsPerDay
}

// overlaps reports whether half-open ranges [aIn, aOut) and [bIn, bOut)
// share at least one night. Touching ranges do not overlap.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}
