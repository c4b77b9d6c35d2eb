package schedule

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want Clock
	}{
		{raw: "00:00", want: 0},
		{raw: "07:05", want: 7*60 + 5},
		{raw: "12:30", want: 12*60 + 30},
		{raw: "23:59", want: 23*60 + 59},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseClock(tt.raw)
			if err != nil {
				t.Fatalf("ParseClock(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseClock(%q) = %d, want %d", tt.raw, got, tt.want)
			}
			if got.String() != tt.raw {
				t.Fatalf("String() = %q, want round-trip %q", got.String(), tt.raw)
			}
		})
	}
}

func TestParseClockInvalid(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "7:00", "24:00", "12:60", "ab:cd", "12-30", "12:3", "012:30"} {
		if _, err := ParseClock(raw); err == nil {
			t.Fatalf("ParseClock(%q) succeeded, want error", raw)
		}
	}
}

func TestClockSub(t *testing.T) {
	t.Parallel()
	a, _ := ParseClock("08:00")
	b, _ := ParseClock("09:30")
	if got := b.Sub(a); got != 90*time.Minute {
		t.Fatalf("Sub = %v, want 90m", got)
	}
}
