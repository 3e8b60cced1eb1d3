package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
)

// DayLayout is the storage layout of a calendar day.
const DayLayout = "2006-01-02"

// Day is a calendar day in DayLayout. The zero value is the empty string and
// means "no day".
type Day string

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// ParseDay validates s and returns it as a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", common.NewValidationError("date", fmt.Sprintf("%q is not a %s day", s, DayLayout))
	}
	return DayOf(t), nil
}

// Time returns the start of the day in loc.
func (d Day) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, string(d), loc)
}

func (d Day) String() string { return string(d) }
