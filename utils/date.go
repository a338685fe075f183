package utils

import (
	"strings"
	"time"

	"hotel-booking/constants"

	"gorm.io/datatypes"
)

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC,
// which is how stay dates are stored.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CalendarDate returns the calendar date of t as seen in loc, as midnight UTC.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDayIn returns midnight of the calendar date in loc.
func StartOfDayIn(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func ToDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}
