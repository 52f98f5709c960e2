package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/remind/internal/constants"
)

// MakeDate builds a UTC-midnight date and reports whether the triple is
// a real calendar date. time.Date silently normalizes overflow (Feb 30
// becomes Mar 2), so the components are checked after construction.
func MakeDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// Today returns the current local calendar day, normalized to UTC
// midnight so dates compare by day regardless of wall-clock time. It is
// called once at startup and threaded through; nothing else reads the
// clock.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// NextOccurrence resolves a yearless month/day to the next date on or
// after today. Feb 29 searches forward leap year by leap year; any other
// pair lands this year, or next year if it has already passed.
func NextOccurrence(today time.Time, month, day int) (time.Time, error) {
	if month == 2 && day == 29 {
		for year := today.Year(); year < today.Year()+constants.LeapSearchYears; year++ {
			if d, ok := MakeDate(year, 2, 29); ok && !d.Before(today) {
				return d, nil
			}
		}
		return time.Time{}, fmt.Errorf("no Feb 29 within %d years of %d", constants.LeapSearchYears, today.Year())
	}

	d, ok := MakeDate(today.Year(), month, day)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date: month %d day %d", month, day)
	}
	if !d.Before(today) {
		return d, nil
	}
	d, ok = MakeDate(today.Year()+1, month, day)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date: month %d day %d", month, day)
	}
	return d, nil
}
