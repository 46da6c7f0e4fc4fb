package calendar

import (
	"fmt"
	"time"
)

// TimeOfDay is a second-resolution time of day, stored as seconds since
// midnight. Valid values are in [0, 24h).
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 3600 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return (int(t) % 3600) / 60 }

// Second returns the second component (0-59).
func (t TimeOfDay) Second() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// timeOfDayOf extracts the time-of-day of an instant.
func timeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// onDate places a time of day onto the calendar date of the given instant,
// keeping its location.
func onDate(date time.Time, tod TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, date.Location())
}

// Interval is a contiguous working time-of-day span within a single day.
// Start is inclusive, End is exclusive; Start must be before End.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Minutes returns the interval length in whole minutes.
func (iv Interval) Minutes() int {
	return int(iv.End-iv.Start) / 60
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s-%s", iv.Start, iv.End)
}
