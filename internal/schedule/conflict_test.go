package schedule

import "testing"

func mustClock(t *testing.T, raw string) Clock {
	t.Helper()
	c, err := ParseClock(raw)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", raw, err)
	}
	return c
}

func sortedTasks(t *testing.T, windows ...[2]string) []Task {
	t.Helper()
	out := make([]Task, 0, len(windows))
	for i, w := range windows {
		out = append(out, Task{
			ID:    string(rune('a' + i)),
			Start: mustClock(t, w[0]),
			End:   mustClock(t, w[1]),
		})
	}
	return out
}

func TestFindConflict(t *testing.T) {
	t.Parallel()
	tasks := sortedTasks(t, [2]string{"07:00", "08:00"}, [2]string{"10:00", "12:00"})

	tests := []struct {
		name       string
		start, end string
		exclude    string
		wantID     string // "" means no conflict
	}{
		{name: "overlap head", start: "07:30", end: "08:30", wantID: "a"},
		{name: "overlap tail", start: "06:30", end: "07:30", wantID: "a"},
		{name: "contained", start: "10:30", end: "11:00", wantID: "b"},
		{name: "containing", start: "09:00", end: "13:00", wantID: "b"},
		{name: "touching end", start: "08:00", end: "09:00", wantID: ""},
		{name: "touching start", start: "06:00", end: "07:00", wantID: ""},
		{name: "free gap", start: "08:30", end: "09:30", wantID: ""},
		{name: "exclude self", start: "10:00", end: "12:00", exclude: "b", wantID: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(mustClock(t, tt.start), mustClock(t, tt.end), tasks, tt.exclude)
			switch {
			case tt.wantID == "" && got != nil:
				t.Fatalf("FindConflict = %q, want none", got.ID)
			case tt.wantID != "" && got == nil:
				t.Fatalf("FindConflict = none, want %q", tt.wantID)
			case tt.wantID != "" && got.ID != tt.wantID:
				t.Fatalf("FindConflict = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

// With a start-sorted input, the conflict reported is the earliest-starting
// overlapping task, not just any of them.
func TestFindConflictReportsEarliest(t *testing.T) {
	t.Parallel()
	tasks := sortedTasks(t,
		[2]string{"08:00", "09:00"},
		[2]string{"09:30", "10:30"},
		[2]string{"11:00", "12:00"},
	)
	got := FindConflict(mustClock(t, "08:30"), mustClock(t, "11:30"), tasks, "")
	if got == nil || got.ID != "a" {
		t.Fatalf("FindConflict = %+v, want earliest task a", got)
	}
}

func TestFindConflictReturnsCopy(t *testing.T) {
	t.Parallel()
	tasks := sortedTasks(t, [2]string{"07:00", "08:00"})
	got := FindConflict(mustClock(t, "07:00"), mustClock(t, "08:00"), tasks, "")
	if got == nil {
		t.Fatal("expected a conflict")
	}
	got.Description = "mutated"
	if tasks[0].Description == "mutated" {
		t.Fatal("FindConflict leaked a reference into the input slice")
	}
}
