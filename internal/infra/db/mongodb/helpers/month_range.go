package helpers

import "time"

// MonthRange returns the inclusive start and exclusive end of the given
// calendar month, for filtering records by their submission date.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start, end
}

// MonthByName maps a calendar month name ("January".."December") to its
// time.Month value. The second return is false for unknown names.
func MonthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}
