package analyze

import (
	"reflect"
	"testing"
	"time"

	"dayplan/internal/schedule"
	logx "dayplan/pkg/logx"
)

func buildSchedule(t *testing.T, entries []struct {
	desc, start, end string
	prio             schedule.Priority
}) *schedule.Service {
	t.Helper()
	s := schedule.New(logx.Nop(), nil)
	for _, e := range entries {
		if _, err := s.AddTask(e.desc, e.start, e.end, e.prio); err != nil {
			t.Fatalf("AddTask(%q): %v", e.desc, err)
		}
	}
	return s
}

func TestAnalyzeEmptySchedule(t *testing.T) {
	t.Parallel()
	r := New(Config{}).Analyze(nil)
	if r.TotalTasks != 0 || r.TotalScheduled != 0 || r.CompletionRate != 0 {
		t.Fatalf("empty report not zeroed: %+v", r)
	}
	for _, p := range schedule.Priorities {
		if r.PriorityShare[p] != 0 {
			t.Fatalf("share for %s = %v, want 0", p, r.PriorityShare[p])
		}
	}
	if len(r.Recommendations) != 1 || r.Recommendations[0] != RecommendAddTasks {
		t.Fatalf("Recommendations = %v, want only %q", r.Recommendations, RecommendAddTasks)
	}
}

func TestAnalyzeDistribution(t *testing.T) {
	t.Parallel()
	s := buildSchedule(t, []struct {
		desc, start, end string
		prio             schedule.Priority
	}{
		{"Morning Workout", "07:00", "08:00", schedule.PriorityHigh},
		{"Email triage", "08:30", "09:00", schedule.PriorityLow},
		{"Research Session", "10:00", "12:00", schedule.PriorityHigh},
		{"Release prep", "13:00", "14:00", schedule.PriorityCritical},
	})

	r := New(Config{}).Analyze(s.Tasks())

	if r.TotalTasks != 4 {
		t.Fatalf("TotalTasks = %d, want 4", r.TotalTasks)
	}
	if got := r.ByPriority[schedule.PriorityHigh]; got != 2 {
		t.Fatalf("HIGH count = %d, want 2", got)
	}
	if got := r.PriorityShare[schedule.PriorityCritical]; got != 0.25 {
		t.Fatalf("CRITICAL share = %v, want 0.25", got)
	}
	wantTotal := time.Hour + 30*time.Minute + 2*time.Hour + time.Hour
	if r.TotalScheduled != wantTotal {
		t.Fatalf("TotalScheduled = %v, want %v", r.TotalScheduled, wantTotal)
	}
	if r.Span != 7*time.Hour {
		t.Fatalf("Span = %v, want 7h", r.Span)
	}

	// Three adjacent pairs, three gaps.
	if len(r.Gaps) != 3 {
		t.Fatalf("Gaps = %d, want 3", len(r.Gaps))
	}
	if r.Gaps[0].Length != 30*time.Minute || r.Gaps[1].Length != time.Hour {
		t.Fatalf("gap lengths = %v, %v", r.Gaps[0].Length, r.Gaps[1].Length)
	}
}

func TestAnalyzeCompletionRate(t *testing.T) {
	t.Parallel()
	s := buildSchedule(t, []struct {
		desc, start, end string
		prio             schedule.Priority
	}{
		{"Morning Workout", "07:00", "08:00", schedule.PriorityHigh},
		{"Research Session", "10:00", "12:00", schedule.PriorityHigh},
	})
	tasks := s.Tasks()
	if _, err := s.MarkComplete(tasks[0].ID); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	r := New(Config{}).Analyze(s.Tasks())
	if r.CompletedTasks != 1 || r.CompletionRate != 0.5 {
		t.Fatalf("completion = %d (%v), want 1 (0.5)", r.CompletedTasks, r.CompletionRate)
	}
}

func TestAnalyzeRecommendationRules(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     Config
		entries []struct {
			desc, start, end string
			prio             schedule.Priority
		}
		want []string
	}{
		{
			name: "balanced schedule emits nothing",
			entries: []struct {
				desc, start, end string
				prio             schedule.Priority
			}{
				{"Morning Workout", "07:00", "08:00", schedule.PriorityHigh},
				{"Email triage", "08:30", "09:00", schedule.PriorityLow},
				{"Lunch", "12:00", "13:00", schedule.PriorityLow},
			},
		},
		{
			name: "top-heavy load",
			entries: []struct {
				desc, start, end string
				prio             schedule.Priority
			}{
				{"Incident review", "07:00", "08:00", schedule.PriorityCritical},
				{"Deep work", "09:00", "11:00", schedule.PriorityHigh},
				{"Email triage", "12:00", "12:30", schedule.PriorityLow},
			},
			want: []string{RecommendRedistribute},
		},
		{
			name: "short gaps",
			entries: []struct {
				desc, start, end string
				prio             schedule.Priority
			}{
				{"Standup", "09:00", "09:15", schedule.PriorityLow},
				{"Planning", "09:20", "10:00", schedule.PriorityLow},
			},
			want: []string{RecommendAddBreaks},
		},
		{
			name: "long span",
			cfg:  Config{SpanLimit: 6 * time.Hour},
			entries: []struct {
				desc, start, end string
				prio             schedule.Priority
			}{
				{"Early start", "06:00", "07:00", schedule.PriorityLow},
				{"Late finish", "20:00", "21:00", schedule.PriorityLow},
			},
			want: []string{RecommendSplitDays},
		},
		{
			name: "all rules fire in order",
			cfg:  Config{SpanLimit: 6 * time.Hour},
			entries: []struct {
				desc, start, end string
				prio             schedule.Priority
			}{
				{"Early incident", "06:00", "07:00", schedule.PriorityCritical},
				{"Follow-up", "07:05", "08:00", schedule.PriorityHigh},
				{"Late review", "20:00", "21:00", schedule.PriorityHigh},
			},
			want: []string{RecommendRedistribute, RecommendAddBreaks, RecommendSplitDays},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := buildSchedule(t, tt.entries)
			r := New(tt.cfg).Analyze(s.Tasks())
			if !reflect.DeepEqual(r.Recommendations, tt.want) {
				t.Fatalf("Recommendations = %v, want %v", r.Recommendations, tt.want)
			}
		})
	}
}

// Two passes over an unchanged snapshot must agree exactly.
func TestAnalyzeIdempotent(t *testing.T) {
	t.Parallel()
	s := buildSchedule(t, []struct {
		desc, start, end string
		prio             schedule.Priority
	}{
		{"Morning Workout", "07:00", "08:00", schedule.PriorityHigh},
		{"Research Session", "10:00", "12:00", schedule.PriorityHigh},
	})

	a := New(Config{})
	tasks := s.Tasks()
	r1 := a.Analyze(tasks)
	r2 := a.Analyze(tasks)
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("reports differ:\n%+v\n%+v", r1, r2)
	}
}

func TestApplySwapsThresholds(t *testing.T) {
	t.Parallel()
	a := New(Config{})
	if a.Config().MinGap != DefaultMinGap {
		t.Fatalf("MinGap = %v, want default %v", a.Config().MinGap, DefaultMinGap)
	}
	a.Apply(Config{MinGap: time.Minute})
	if a.Config().MinGap != time.Minute {
		t.Fatalf("MinGap = %v after Apply, want 1m", a.Config().MinGap)
	}
	// Unset fields fall back to defaults again.
	if a.Config().SpanLimit != DefaultSpanLimit {
		t.Fatalf("SpanLimit = %v, want default", a.Config().SpanLimit)
	}
}
