package calendar

import (
	"errors"
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysBetween(t *testing.T) {
	tests := []struct {
		name        string
		rules       []HolidayRule
		start, end  time.Time
		includeEnds bool
		want        []time.Time
	}{
		{
			name:        "endpoints included, weekend skipped, descending",
			start:       at(2015, time.June, 16, 9, 0),
			end:         at(2015, time.June, 22, 18, 0),
			includeEnds: true,
			want: []time.Time{
				day(2015, time.June, 22),
				day(2015, time.June, 19),
				day(2015, time.June, 18),
				day(2015, time.June, 17),
				day(2015, time.June, 16),
			},
		},
		{
			name:        "endpoints excluded",
			start:       at(2015, time.June, 16, 9, 0),
			end:         at(2015, time.June, 22, 18, 0),
			includeEnds: false,
			want: []time.Time{
				day(2015, time.June, 19),
				day(2015, time.June, 18),
				day(2015, time.June, 17),
			},
		},
		{
			name:        "swapped endpoints",
			start:       at(2015, time.June, 22, 18, 0),
			end:         at(2015, time.June, 16, 9, 0),
			includeEnds: true,
			want: []time.Time{
				day(2015, time.June, 22),
				day(2015, time.June, 19),
				day(2015, time.June, 18),
				day(2015, time.June, 17),
				day(2015, time.June, 16),
			},
		},
		{
			name: "holidays excluded from the walk",
			rules: []HolidayRule{
				FixedHoliday{Day: 17, Month: time.June},
				FixedHoliday{Day: 18, Month: time.June},
			},
			start:       at(2015, time.June, 16, 9, 0),
			end:         at(2015, time.June, 22, 18, 0),
			includeEnds: true,
			want: []time.Time{
				day(2015, time.June, 22),
				day(2015, time.June, 19),
				day(2015, time.June, 16),
			},
		},
		{
			name:        "same day deduplicated",
			start:       at(2015, time.June, 16, 9, 0),
			end:         at(2015, time.June, 16, 17, 0),
			includeEnds: true,
			want: []time.Time{
				day(2015, time.June, 16),
			},
		},
		{
			name:        "adjacent days with ends excluded is empty",
			start:       at(2015, time.June, 16, 9, 0),
			end:         at(2015, time.June, 17, 9, 0),
			includeEnds: false,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := mustCalendar(t, standardWeek(t), tt.rules)

			got, err := cal.WorkingDaysBetween(tt.start, tt.end, tt.includeEnds)
			if err != nil {
				t.Fatalf("WorkingDaysBetween() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("WorkingDaysBetween() returned %d dates, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("dates[%d] = %s, want %s",
						i, got[i].Format("2006-01-02"), tt.want[i].Format("2006-01-02"))
				}
			}
		})
	}
}

func TestWorkingDaysBetween_InvalidStart(t *testing.T) {
	cal := mustCalendar(t, standardWeek(t), nil)

	// After swapping, the earlier endpoint is Sunday 2015-06-14.
	_, err := cal.WorkingDaysBetween(at(2015, time.June, 22, 9, 0), at(2015, time.June, 14, 9, 0), true)
	var startErr *InvalidStartError
	if !errors.As(err, &startErr) {
		t.Errorf("error = %v, want *InvalidStartError", err)
	}
}
