package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/workcal/internal/calendar"
)

// Config represents application configuration
type Config struct {
	Week     map[string][]IntervalConfig `mapstructure:"week"`
	Holidays []HolidayConfig             `mapstructure:"holidays"`
	Log      LogConfig                   `mapstructure:"log"`
}

// IntervalConfig represents one working interval of a weekday
type IntervalConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// HolidayConfig represents one holiday rule
type HolidayConfig struct {
	Kind  string `mapstructure:"kind"` // "fixed" or "movable"
	Day   int    `mapstructure:"day"`
	Month int    `mapstructure:"month"`
	Rule  string `mapstructure:"rule"` // e.g. "easterMonday"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workcal")
		v.AddConfigPath("/etc/workcal")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, &calendar.ConfigurationError{Reason: fmt.Sprintf("failed to read config: %v", err)}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, &calendar.ConfigurationError{Reason: fmt.Sprintf("failed to unmarshal config: %v", err)}
	}

	return &config, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WorkWeek builds the validated weekly schedule from the configuration.
func (c *Config) WorkWeek() (*calendar.WorkWeek, error) {
	schedule := make(map[time.Weekday][]calendar.Interval, len(c.Week))

	for name, intervals := range c.Week {
		weekday, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, &calendar.ConfigurationError{Reason: fmt.Sprintf("unknown weekday %q", name)}
		}

		for _, ic := range intervals {
			start, err := parseTimeOfDay(ic.Start)
			if err != nil {
				return nil, &calendar.ConfigurationError{
					Reason: fmt.Sprintf("%s: bad interval start: %v", name, err),
				}
			}
			end, err := parseTimeOfDay(ic.End)
			if err != nil {
				return nil, &calendar.ConfigurationError{
					Reason: fmt.Sprintf("%s: bad interval end: %v", name, err),
				}
			}
			schedule[weekday] = append(schedule[weekday], calendar.Interval{Start: start, End: end})
		}
	}

	return calendar.NewWorkWeek(schedule)
}

// HolidayRules builds the holiday rule list from the configuration.
func (c *Config) HolidayRules() ([]calendar.HolidayRule, error) {
	rules := make([]calendar.HolidayRule, 0, len(c.Holidays))

	for i, hc := range c.Holidays {
		switch hc.Kind {
		case "fixed":
			if hc.Day < 1 || hc.Day > 31 || hc.Month < 1 || hc.Month > 12 {
				return nil, &calendar.ConfigurationError{
					Reason: fmt.Sprintf("holidays[%d]: day %d month %d out of range", i, hc.Day, hc.Month),
				}
			}
			rules = append(rules, calendar.FixedHoliday{Day: hc.Day, Month: time.Month(hc.Month)})
		case "movable":
			if calendar.MovableRule(hc.Rule) != calendar.EasterMonday {
				return nil, &calendar.ConfigurationError{
					Reason: fmt.Sprintf("holidays[%d]: unknown movable rule %q", i, hc.Rule),
				}
			}
			rules = append(rules, calendar.MovableHoliday{Rule: calendar.MovableRule(hc.Rule)})
		default:
			return nil, &calendar.ConfigurationError{
				Reason: fmt.Sprintf("holidays[%d]: unknown kind %q", i, hc.Kind),
			}
		}
	}

	return rules, nil
}

// parseTimeOfDay accepts HH:MM and HH:MM:SS clock values.
func parseTimeOfDay(s string) (calendar.TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("cannot parse %q as a time of day", s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a time of day", s)
		}
		values[i] = n
	}

	h, m, sec := values[0], values[1], values[2]
	if h < 0 || h > 24 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}

	return calendar.NewTimeOfDay(h, m, sec), nil
}
