package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DayWindow is one weekday's entry in a product schedule. Times are
// "HH:MM" clock strings; the window is inclusive of StartTime and exclusive
// of EndTime. Enabled with StartTime == EndTime is a zero-length window,
// meaning the product is never available that day.
type DayWindow struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScheduledDays maps lowercase weekday names ("monday" ... "sunday") to
// their window. A nil map means the product carries no schedule.
type ScheduledDays map[string]DayWindow

var weekdayKeys = [...]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayKey returns the document key for a weekday.
func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

// ParseClock converts an "HH:MM" clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	return h*60 + m, nil
}

// Validate checks every enabled window: clock strings must parse and the
// start must not come after the end. Equal start and end is allowed and
// denotes a zero-length window.
func (s ScheduledDays) Validate() error {
	for day, window := range s {
		if !window.Enabled {
			continue
		}
		start, err := ParseClock(window.StartTime)
		if err != nil {
			return &ValidationError{Field: "scheduled_days", Reason: fmt.Sprintf("%s: %v", day, err)}
		}
		end, err := ParseClock(window.EndTime)
		if err != nil {
			return &ValidationError{Field: "scheduled_days", Reason: fmt.Sprintf("%s: %v", day, err)}
		}
		if start > end {
			return &ValidationError{Field: "scheduled_days", Reason: fmt.Sprintf("%s: start %s after end %s", day, window.StartTime, window.EndTime)}
		}
	}
	return nil
}

func (s ScheduledDays) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *ScheduledDays) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into ScheduledDays", src)
	}
}
