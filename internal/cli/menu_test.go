package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"dayplan/internal/analyze"
	"dayplan/internal/schedule"
	logx "dayplan/pkg/logx"
)

func runScript(t *testing.T, s *schedule.Service, input string) string {
	t.Helper()
	d := Deps{
		Schedule: s,
		Analyzer: analyze.New(analyze.Config{}),
		Log:      logx.Nop(),
	}
	var out bytes.Buffer
	if err := Run(context.Background(), d, strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestMenuAddListQuit(t *testing.T) {
	t.Parallel()
	s := schedule.New(logx.Nop(), nil)
	out := runScript(t, s, strings.Join([]string{
		"1",
		"Morning Workout",
		"07:00",
		"08:00",
		"HIGH",
		"5",
		"0",
	}, "\n")+"\n")

	if !strings.Contains(out, `Added "Morning Workout" 07:00-08:00.`) {
		t.Fatalf("add confirmation missing:\n%s", out)
	}
	if !strings.Contains(out, "Morning Workout") || !strings.Contains(out, "PENDING") {
		t.Fatalf("listing missing:\n%s", out)
	}
	if !strings.Contains(out, "Bye.") {
		t.Fatalf("quit message missing:\n%s", out)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestMenuConflictMessage(t *testing.T) {
	t.Parallel()
	s := schedule.New(logx.Nop(), nil)
	if _, err := s.AddTask("Morning Workout", "07:00", "08:00", schedule.PriorityHigh); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out := runScript(t, s, strings.Join([]string{
		"1",
		"Team Meeting",
		"07:30",
		"08:30",
		"", // default priority
		"0",
	}, "\n")+"\n")

	want := "Task conflict detected! Conflicting with: Morning Workout (07:00-08:00)"
	if !strings.Contains(out, want) {
		t.Fatalf("conflict message missing:\n%s", out)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d after rejected add", s.Len())
	}
}

func TestMenuCompleteBySelection(t *testing.T) {
	t.Parallel()
	s := schedule.New(logx.Nop(), nil)
	if _, err := s.AddTask("Morning Workout", "07:00", "08:00", schedule.PriorityHigh); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out := runScript(t, s, "4\n1\n0\n")
	if !strings.Contains(out, `Completed "Morning Workout".`) {
		t.Fatalf("completion missing:\n%s", out)
	}
	if got := s.Tasks()[0].Status; got != schedule.StatusCompleted {
		t.Fatalf("Status = %s", got)
	}
}

func TestMenuEOFStops(t *testing.T) {
	t.Parallel()
	s := schedule.New(logx.Nop(), nil)
	// Input ends mid-prompt; Run must return instead of looping.
	_ = runScript(t, s, "1\nHalf-entered task\n")
}

func TestMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "empty description",
			err:  &schedule.ValidationError{Code: schedule.CodeEmptyDescription},
			want: "Description cannot be blank.",
		},
		{
			name: "length",
			err:  &schedule.ValidationError{Code: schedule.CodeDescriptionLength},
			want: "Description must be 3-100 characters.",
		},
		{
			name: "time format",
			err:  &schedule.ValidationError{Code: schedule.CodeInvalidTimeFormat},
			want: "Times must be 24-hour HH:mm (e.g. 09:30).",
		},
		{
			name: "duration too short",
			err:  &schedule.ValidationError{Code: schedule.CodeDurationTooShort},
			want: "Tasks must run at least 15 minutes.",
		},
		{
			name: "duration too long",
			err:  &schedule.ValidationError{Code: schedule.CodeDurationTooLong},
			want: "Tasks may run at most 8 hours.",
		},
		{
			name: "not found",
			err:  &schedule.NotFoundError{ID: "x"},
			want: "That task no longer exists.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Fatalf("Message = %q, want %q", got, tt.want)
			}
		})
	}
}
