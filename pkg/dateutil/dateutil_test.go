package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name     string
		date1    time.Time
		date2    time.Time
		expected bool
	}{
		{
			name:     "same day different times",
			date1:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
			date2:    time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "consecutive days",
			date1:    time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC),
			date2:    time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "same day different years",
			date1:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			date2:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.expected {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "date only",
			input:    "2015-06-16",
			expected: time.Date(2015, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "date with minutes",
			input:    "2015-06-16 09:45",
			expected: time.Date(2015, 6, 16, 9, 45, 0, 0, time.UTC),
		},
		{
			name:     "date with seconds",
			input:    "2015-06-16 09:45:30",
			expected: time.Date(2015, 6, 16, 9, 45, 30, 0, time.UTC),
		},
		{
			name:     "ISO 8601",
			input:    "2015-06-16T09:45:30",
			expected: time.Date(2015, 6, 16, 9, 45, 30, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "sixteenth of june",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !result.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToday(t *testing.T) {
	result := Today()

	now := time.Now()
	if !IsSameDay(result, now) {
		t.Errorf("Today() = %v, not on today's date", result)
	}
	if result.Hour() != 0 || result.Minute() != 0 || result.Second() != 0 {
		t.Errorf("Today() = %v, want start of day", result)
	}
}
