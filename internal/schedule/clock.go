package schedule

import (
	"fmt"
	"time"
)

// Clock is a wall-clock time of day, stored as minutes since midnight.
// All tasks live on the same day; there is no date or timezone component.
type Clock int

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * 60
)

// ParseClock parses a 24-hour "HH:mm" string (minute resolution, 00:00-23:59).
func ParseClock(raw string) (Clock, error) {
	if len(raw) != 5 || raw[2] != ':' {
		return 0, fmt.Errorf("invalid time %q (use HH:mm)", raw)
	}
	hh, ok1 := twoDigits(raw[0], raw[1])
	mm, ok2 := twoDigits(raw[3], raw[4])
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("invalid time %q (use HH:mm)", raw)
	}
	if hh > 23 {
		return 0, fmt.Errorf("invalid hour in %q", raw)
	}
	if mm > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", raw)
	}
	return Clock(hh*minutesPerHour + mm), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func (c Clock) Hour() int   { return int(c) / minutesPerHour }
func (c Clock) Minute() int { return int(c) % minutesPerHour }

// Valid reports whether c falls within the day.
func (c Clock) Valid() bool { return c >= 0 && c < minutesPerDay }

// Sub returns the elapsed time from o to c.
func (c Clock) Sub(o Clock) time.Duration {
	return time.Duration(int(c)-int(o)) * time.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
