package calendar

import (
	"sort"
	"time"

	"github.com/username/workcal/pkg/dateutil"
)

// WorkingDaysBetween lists the working dates strictly between the two
// instants, walking forward with the same skipping rule as AddWorkingDays.
// When includeEnds is true both original endpoint dates are part of the
// result regardless of their own status. Endpoints in the wrong order are
// swapped. The result is de-duplicated and ordered by date descending.
func (c *Calendar) WorkingDaysBetween(start, end time.Time, includeEnds bool) ([]time.Time, error) {
	if start.After(end) {
		start, end = end, start
	}
	if !c.week.IsWorkingDay(start.Weekday()) {
		return nil, &InvalidStartError{Start: start}
	}

	hc := newHolidayCache(c.rules)

	seen := make(map[monthDayYear]struct{})
	var dates []time.Time
	collect := func(t time.Time) {
		day := dateutil.StartOfDay(t)
		key := monthDayYear{Year: day.Year(), Month: day.Month(), Day: day.Day()}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		dates = append(dates, day)
	}

	if includeEnds {
		collect(start)
		collect(end)
	}

	endDay := dateutil.StartOfDay(end)
	for day := dateutil.StartOfDay(start); ; {
		day = day.AddDate(0, 0, 1)
		if !day.Before(endDay) {
			break
		}
		if c.isWorkingDate(day, hc) {
			collect(day)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

type monthDayYear struct {
	Year  int
	Month time.Month
	Day   int
}
