package calendar

import (
	"time"

	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

// AddWorkingDays advances the start instant by n working days, preserving
// its time of day. Dates whose weekday is non-working and holiday dates
// are skipped without being counted. A start on a non-working weekday
// fails; a start that is not a working moment is first normalized to the
// next working moment.
func (c *Calendar) AddWorkingDays(start time.Time, n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, &InvalidDurationError{Reason: "working days must not be negative"}
	}
	if !c.week.IsWorkingDay(start.Weekday()) {
		return time.Time{}, &InvalidStartError{Start: start}
	}

	hc := newHolidayCache(c.rules)
	cur := c.normalize(start, hc)

	for consumed := 0; consumed < n; {
		cur = cur.AddDate(0, 0, 1)
		if c.isWorkingDate(cur, hc) {
			consumed++
		}
	}

	c.logger.Debug("added working days",
		zap.Time("start", start), zap.Int("days", n), zap.Time("result", cur))
	return cur, nil
}

// AddWorkingMinutes advances the start instant by the given amount of
// working time. Gaps between intervals and non-working days are skipped
// without being charged. The walk is closed-form over whole intervals, so
// cost grows with calendar days crossed, not with minutes requested; the
// result is identical to stepping one minute at a time.
func (c *Calendar) AddWorkingMinutes(start time.Time, minutes int) (time.Time, error) {
	if minutes < 0 {
		return time.Time{}, &InvalidDurationError{Reason: "working minutes must not be negative"}
	}
	if !c.week.IsWorkingDay(start.Weekday()) {
		return time.Time{}, &InvalidStartError{Start: start}
	}

	hc := newHolidayCache(c.rules)
	cur := c.normalize(start, hc)

	remaining := minutes
	for remaining > 0 {
		iv, ok := c.intervalAt(cur, hc)
		if !ok {
			cur = c.nextIntervalStart(cur, hc)
			continue
		}

		// Whole-minute steps that stay within the interval; arriving
		// exactly at the end boundary is charged like any other step.
		end := onDate(cur, iv.End)
		avail := int(end.Sub(cur) / time.Minute)
		if avail <= 0 {
			cur = c.nextIntervalStart(cur, hc)
			continue
		}

		take := avail
		if remaining < take {
			take = remaining
		}
		cur = cur.Add(time.Duration(take) * time.Minute)
		remaining -= take
	}

	return cur, nil
}

// AddWorkingHours advances the start instant by the given number of
// working hours. On a symmetrical week a request beyond one day's capacity
// decomposes into whole working days plus a minute remainder; everything
// else, including any asymmetric week, goes through the exact minutes
// walk.
func (c *Calendar) AddWorkingHours(start time.Time, hours int) (time.Time, error) {
	if hours < 0 {
		return time.Time{}, &InvalidDurationError{Reason: "working hours must not be negative"}
	}
	if !c.week.IsWorkingDay(start.Weekday()) {
		return time.Time{}, &InvalidStartError{Start: start}
	}

	total := hours * 60
	dayMinutes := c.week.TotalWorkingMinutes(start.Weekday())

	if c.week.Symmetrical() && total > dayMinutes {
		days := total / dayMinutes
		remainder := total % dayMinutes

		cur, err := c.AddWorkingDays(start, days)
		if err != nil {
			return time.Time{}, err
		}
		if remainder > 0 {
			return c.AddWorkingMinutes(cur, remainder)
		}
		return cur, nil
	}

	return c.AddWorkingMinutes(start, total)
}

// AddWorkingDuration advances the start instant by an arbitrary positive
// duration of working time, expressed in whole minutes.
func (c *Calendar) AddWorkingDuration(start time.Time, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, &InvalidDurationError{Reason: "duration must be positive"}
	}
	return c.AddWorkingMinutes(start, int(d/time.Minute))
}

// intervalAt returns the interval containing the instant, if any. An
// instant sitting exactly on an interval end is not inside it.
func (c *Calendar) intervalAt(t time.Time, hc *holidayCache) (Interval, bool) {
	if !c.isWorkingDate(t, hc) {
		return Interval{}, false
	}
	tod := timeOfDayOf(t)
	for _, iv := range c.week.intervalsRaw(t.Weekday()) {
		if iv.Start <= tod && tod < iv.End {
			return iv, true
		}
	}
	return Interval{}, false
}

// nextIntervalStart returns the start of the next interval after the
// instant: a later interval the same day when one exists, otherwise the
// first interval of the next qualifying working day.
func (c *Calendar) nextIntervalStart(t time.Time, hc *holidayCache) time.Time {
	if c.isWorkingDate(t, hc) {
		tod := timeOfDayOf(t)
		for _, iv := range c.week.intervalsRaw(t.Weekday()) {
			if iv.Start > tod {
				return onDate(t, iv.Start)
			}
		}
	}

	day := dateutil.StartOfDay(t)
	for {
		day = day.AddDate(0, 0, 1)
		if c.isWorkingDate(day, hc) {
			first := c.week.intervalsRaw(day.Weekday())[0]
			return onDate(day, first.Start)
		}
	}
}
