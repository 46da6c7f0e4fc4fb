package calendar

import (
	"fmt"
	"sort"
	"time"
)

// WorkWeek is a validated weekly schedule: for each weekday an ordered,
// disjoint sequence of working intervals. A weekday with no intervals is a
// non-working day. Once constructed a WorkWeek never changes.
type WorkWeek struct {
	intervals   [7][]Interval
	working     [7]bool
	symmetrical bool
}

// NewWorkWeek validates and copies the given schedule. At least one weekday
// must carry at least one interval; every interval needs Start < End and
// intervals on the same weekday must not overlap.
func NewWorkWeek(schedule map[time.Weekday][]Interval) (*WorkWeek, error) {
	ww := &WorkWeek{}

	hasWork := false
	for weekday, intervals := range schedule {
		if weekday < time.Sunday || weekday > time.Saturday {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown weekday %d", weekday)}
		}
		if len(intervals) == 0 {
			continue
		}

		owned := make([]Interval, len(intervals))
		copy(owned, intervals)
		sort.Slice(owned, func(i, j int) bool { return owned[i].Start < owned[j].Start })

		for i, iv := range owned {
			if iv.Start < 0 || iv.End > 24*3600 {
				return nil, &ConfigurationError{
					Reason: fmt.Sprintf("%s: interval %s outside the day", weekday, iv),
				}
			}
			if iv.Start >= iv.End {
				return nil, &ConfigurationError{
					Reason: fmt.Sprintf("%s: interval %s must start before it ends", weekday, iv),
				}
			}
			if i > 0 && owned[i-1].End > iv.Start {
				return nil, &ConfigurationError{
					Reason: fmt.Sprintf("%s: intervals %s and %s overlap", weekday, owned[i-1], iv),
				}
			}
		}

		ww.intervals[weekday] = owned
		ww.working[weekday] = true
		hasWork = true
	}

	if !hasWork {
		return nil, &ConfigurationError{Reason: "no weekday carries a working interval"}
	}

	ww.symmetrical = computeSymmetry(ww)
	return ww, nil
}

// computeSymmetry reports whether every working weekday has the same
// non-zero total working time. Symmetrical weeks enable the fast
// hour-addition path.
func computeSymmetry(ww *WorkWeek) bool {
	total := -1
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !ww.working[wd] {
			continue
		}
		seconds := 0
		for _, iv := range ww.intervals[wd] {
			seconds += int(iv.End - iv.Start)
		}
		if total == -1 {
			total = seconds
		} else if seconds != total {
			return false
		}
	}
	return total > 0
}

// IsWorkingDay reports whether the weekday carries at least one interval.
func (ww *WorkWeek) IsWorkingDay(weekday time.Weekday) bool {
	return ww.working[weekday]
}

// IntervalsFor returns the weekday's intervals ordered by start time.
// The returned slice is a copy.
func (ww *WorkWeek) IntervalsFor(weekday time.Weekday) []Interval {
	src := ww.intervals[weekday]
	out := make([]Interval, len(src))
	copy(out, src)
	return out
}

// intervalsRaw returns the internal slice without copying. Callers must
// not mutate it.
func (ww *WorkWeek) intervalsRaw(weekday time.Weekday) []Interval {
	return ww.intervals[weekday]
}

// TotalWorkingMinutes returns the sum of interval lengths for the weekday.
func (ww *WorkWeek) TotalWorkingMinutes(weekday time.Weekday) int {
	seconds := 0
	for _, iv := range ww.intervals[weekday] {
		seconds += int(iv.End - iv.Start)
	}
	return seconds / 60
}

// Symmetrical reports whether all working weekdays carry equal non-zero
// total working time.
func (ww *WorkWeek) Symmetrical() bool {
	return ww.symmetrical
}
