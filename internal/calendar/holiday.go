package calendar

import (
	"fmt"
	"time"
)

// HolidayRule resolves to a concrete date for a given year. Resolve
// returns false when the rule produces no date that year (for example a
// fixed February 29 in a non-leap year); the caller treats the holiday as
// absent, never as an error.
type HolidayRule interface {
	Resolve(year int) (time.Time, bool)
}

// FixedHoliday recurs on the same day and month every year.
type FixedHoliday struct {
	Day   int
	Month time.Month
}

// Resolve returns the concrete date for the year, or false when the
// day/month combination does not exist that year.
func (h FixedHoliday) Resolve(year int) (time.Time, bool) {
	d := time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC)
	if d.Day() != h.Day || d.Month() != h.Month {
		return time.Time{}, false
	}
	return d, true
}

func (h FixedHoliday) String() string {
	return fmt.Sprintf("fixed %02d-%02d", h.Day, h.Month)
}

// MovableRule names a computed holiday anchor. New movable holidays are
// added as new constants handled in MovableHoliday.Resolve.
type MovableRule string

// EasterMonday is the Monday after Easter Sunday (Gregorian Computus).
const EasterMonday MovableRule = "easterMonday"

// MovableHoliday recurs on a date computed from a calendar anchor.
type MovableHoliday struct {
	Rule MovableRule
}

// Resolve computes the concrete date for the year. Unknown rules resolve
// to nothing.
func (h MovableHoliday) Resolve(year int) (time.Time, bool) {
	switch h.Rule {
	case EasterMonday:
		return EasterSunday(year).AddDate(0, 0, 1), true
	default:
		return time.Time{}, false
	}
}

func (h MovableHoliday) String() string {
	return fmt.Sprintf("movable %s", h.Rule)
}

// EasterSunday computes the date of Easter Sunday for the year using the
// Computus algorithm for the Gregorian calendar.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// monthDay identifies a holiday by day and month only. Year is not part of
// the identity, so duplicate rules collapse into one entry.
type monthDay struct {
	Month time.Month
	Day   int
}

// holidaySet holds the concrete holiday dates resolved for one year.
type holidaySet map[monthDay]struct{}

// resolveHolidays resolves every rule for the year. Rules that produce no
// date that year are skipped silently.
func resolveHolidays(rules []HolidayRule, year int) holidaySet {
	set := make(holidaySet, len(rules))
	for _, rule := range rules {
		date, ok := rule.Resolve(year)
		if !ok {
			continue
		}
		set[monthDay{Month: date.Month(), Day: date.Day()}] = struct{}{}
	}
	return set
}

func (s holidaySet) contains(t time.Time) bool {
	_, ok := s[monthDay{Month: t.Month(), Day: t.Day()}]
	return ok
}

// holidayCache memoizes the resolved set for the year most recently asked
// for. It is created per operation and re-resolves whenever the running
// date crosses into a new calendar year.
type holidayCache struct {
	rules []HolidayRule
	year  int
	set   holidaySet
}

func newHolidayCache(rules []HolidayRule) *holidayCache {
	return &holidayCache{rules: rules}
}

func (c *holidayCache) setFor(year int) holidaySet {
	if c.set == nil || c.year != year {
		c.year = year
		c.set = resolveHolidays(c.rules, year)
	}
	return c.set
}

func (c *holidayCache) isHoliday(t time.Time) bool {
	return c.setFor(t.Year()).contains(t)
}
