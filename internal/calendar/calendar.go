// Package calendar computes arithmetic over a working calendar: a weekly
// schedule of working intervals combined with fixed and movable holiday
// rules. It answers what instant results from advancing a number of
// working days, hours or minutes, and whether a given instant is a
// working moment.
package calendar

import (
	"time"

	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultGranularity is the step used when searching for the nearest
// working moment unless the caller supplies one.
const DefaultGranularity = time.Minute

// Calendar owns an immutable work week and holiday rule set. It is safe
// for concurrent use; no operation mutates it after construction.
type Calendar struct {
	week   *WorkWeek
	rules  []HolidayRule
	logger *zap.Logger
}

// New builds a Calendar from a validated work week and a list of holiday
// rules. The rule list is copied; the caller keeps no handle into the
// calendar's state. A nil logger disables logging.
func New(week *WorkWeek, rules []HolidayRule, logger *zap.Logger) (*Calendar, error) {
	if week == nil {
		return nil, &ConfigurationError{Reason: "work week is required"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	owned := make([]HolidayRule, len(rules))
	copy(owned, rules)

	logger.Debug("calendar constructed",
		zap.Bool("symmetrical", week.Symmetrical()),
		zap.Int("holiday_rules", len(owned)))

	return &Calendar{week: week, rules: owned, logger: logger}, nil
}

// WorkWeek returns the calendar's schedule.
func (c *Calendar) WorkWeek() *WorkWeek {
	return c.week
}

// isWorkingDate reports whether the instant's date is a working day at
// all: a working weekday that is not a holiday.
func (c *Calendar) isWorkingDate(t time.Time, hc *holidayCache) bool {
	return c.week.IsWorkingDay(t.Weekday()) && !hc.isHoliday(t)
}

// isWorking classifies the instant. An instant exactly at an interval end
// is never working, and that match wins over any later interval that day.
func (c *Calendar) isWorking(t time.Time, hc *holidayCache) bool {
	if !c.isWorkingDate(t, hc) {
		return false
	}
	tod := timeOfDayOf(t)
	for _, iv := range c.week.intervalsRaw(t.Weekday()) {
		if tod == iv.End {
			return false
		}
		if iv.Start <= tod && tod < iv.End {
			return true
		}
	}
	return false
}

// findPrevious locates the nearest working moment at or before t. When t
// itself is working the previous moment is t minus one granularity step.
// The backward walk jumps straight to midnight of any wholly non-working
// date so long weekend or holiday spans cost two steps per day, not one
// per granularity unit.
func (c *Calendar) findPrevious(t time.Time, granularity time.Duration, hc *holidayCache) (bool, time.Time) {
	if c.isWorking(t, hc) {
		return true, t.Add(-granularity)
	}

	cur := t
	for {
		if !c.isWorkingDate(cur, hc) {
			cur = dateutil.StartOfDay(cur)
		}
		cur = cur.Add(-granularity)
		if c.isWorking(cur, hc) {
			return false, cur
		}
	}
}

// findNext derives the nearest working moment after t from findPrevious:
// t plus one step when t is working, otherwise the previous working moment
// plus one step.
func (c *Calendar) findNext(t time.Time, granularity time.Duration, hc *holidayCache) (bool, time.Time) {
	working, previous := c.findPrevious(t, granularity, hc)
	if working {
		return true, t.Add(granularity)
	}
	return false, previous.Add(granularity)
}

// normalize returns t itself when it is a working moment, otherwise the
// next working moment at minute granularity.
func (c *Calendar) normalize(t time.Time, hc *holidayCache) time.Time {
	if c.isWorking(t, hc) {
		return t
	}
	_, next := c.findNext(t, DefaultGranularity, hc)
	return next
}

// IsWorkingMoment classifies the instant and returns the nearest working
// moments in both directions, searched at the given granularity. A
// non-positive granularity falls back to DefaultGranularity.
func (c *Calendar) IsWorkingMoment(t time.Time, granularity time.Duration) (isWorking bool, next, previous time.Time) {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	hc := newHolidayCache(c.rules)

	isWorking, previous = c.findPrevious(t, granularity, hc)
	if isWorking {
		next = t.Add(granularity)
	} else {
		next = previous.Add(granularity)
	}
	return isWorking, next, previous
}
