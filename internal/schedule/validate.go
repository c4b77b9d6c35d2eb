package schedule

import (
	"strings"
	"time"
)

// Structural bounds for a single task.
const (
	MinDescriptionLen = 3
	MaxDescriptionLen = 100
	MinTaskDuration   = 15 * time.Minute
	MaxTaskDuration   = 8 * time.Hour
)

// Candidate is a validated, normalized task candidate: description trimmed,
// times parsed, all structural bounds honored.
type Candidate struct {
	Description string
	Start       Clock
	End         Clock
}

// Validate checks a single candidate task's structural validity. It does not
// look at any other task.
//
// Checks run in a fixed order and the first failure wins:
// EMPTY_DESCRIPTION, DESCRIPTION_LENGTH, INVALID_TIME_FORMAT,
// START_AFTER_END, DURATION_TOO_SHORT, DURATION_TOO_LONG.
func Validate(description, start, end string) (Candidate, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return Candidate{}, validationErr(CodeEmptyDescription, "description is blank")
	}
	if n := len([]rune(desc)); n < MinDescriptionLen || n > MaxDescriptionLen {
		return Candidate{}, validationErr(CodeDescriptionLength,
			"description must be %d-%d characters, got %d", MinDescriptionLen, MaxDescriptionLen, n)
	}

	s, err := ParseClock(start)
	if err != nil {
		return Candidate{}, validationErr(CodeInvalidTimeFormat, "start: %v", err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return Candidate{}, validationErr(CodeInvalidTimeFormat, "end: %v", err)
	}

	if s >= e {
		return Candidate{}, validationErr(CodeStartAfterEnd, "start %s is not before end %s", s, e)
	}
	d := e.Sub(s)
	if d < MinTaskDuration {
		return Candidate{}, validationErr(CodeDurationTooShort, "%s is shorter than %s", d, MinTaskDuration)
	}
	if d > MaxTaskDuration {
		return Candidate{}, validationErr(CodeDurationTooLong, "%s is longer than %s", d, MaxTaskDuration)
	}

	return Candidate{Description: desc, Start: s, End: e}, nil
}
