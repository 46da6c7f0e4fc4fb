package calendar

import (
	"fmt"
	"time"
)

// ConfigurationError reports an invalid week schedule or malformed
// configuration. It is returned before any calendar is constructed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid calendar configuration: %s", e.Reason)
}

// InvalidStartError reports a start instant whose weekday carries no
// working intervals in the configured week.
type InvalidStartError struct {
	Start time.Time
}

func (e *InvalidStartError) Error() string {
	return fmt.Sprintf("start %s falls on non-working weekday %s",
		e.Start.Format("2006-01-02 15:04:05"), e.Start.Weekday())
}

// InvalidDurationError reports a duration, hour or minute amount that is
// out of range for the requested operation.
type InvalidDurationError struct {
	Reason string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration: %s", e.Reason)
}
