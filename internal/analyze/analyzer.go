// Package analyze derives productivity statistics from a schedule snapshot.
package analyze

import (
	"sync"
	"time"

	"dayplan/internal/schedule"
)

// Config holds the thresholds the recommendation rules compare against.
// All thresholds have sane defaults; a zero Config is usable.
type Config struct {
	// MinGap is the shortest acceptable break between consecutive tasks.
	MinGap time.Duration
	// SpanLimit is the schedule span (last end - first start) above which
	// splitting across days is suggested.
	SpanLimit time.Duration
	// HighLoadShare is the HIGH+CRITICAL fraction above which the load is
	// considered top-heavy. Expressed as a fraction, e.g. 0.5.
	HighLoadShare float64
}

const (
	DefaultMinGap        = 10 * time.Minute
	DefaultSpanLimit     = 12 * time.Hour
	DefaultHighLoadShare = 0.5
)

func (c Config) withDefaults() Config {
	if c.MinGap <= 0 {
		c.MinGap = DefaultMinGap
	}
	if c.SpanLimit <= 0 {
		c.SpanLimit = DefaultSpanLimit
	}
	if c.HighLoadShare <= 0 {
		c.HighLoadShare = DefaultHighLoadShare
	}
	return c
}

// Recommendation texts, emitted in the order the rules are evaluated.
const (
	RecommendAddTasks     = "add tasks to start planning your day"
	RecommendRedistribute = "redistribute high-priority load"
	RecommendAddBreaks    = "add breaks between tasks"
	RecommendSplitDays    = "consider splitting across days"
)

// Gap is idle time between two consecutive tasks in start order.
type Gap struct {
	AfterTaskID  string
	BeforeTaskID string
	Start        schedule.Clock
	End          schedule.Clock
	Length       time.Duration
}

// Report is recomputed fresh on every Analyze call; nothing is cached.
type Report struct {
	TotalTasks     int
	CompletedTasks int
	CompletionRate float64

	ByPriority    map[schedule.Priority]int
	PriorityShare map[schedule.Priority]float64

	TotalScheduled time.Duration
	Span           time.Duration

	Gaps            []Gap
	Recommendations []string
}

// Analyzer is a read-only pass over schedule snapshots. The only state it
// carries is its threshold config, which can be swapped at runtime when the
// config file changes.
type Analyzer struct {
	mu  sync.Mutex
	cfg Config
}

func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.withDefaults()}
}

// Apply swaps the thresholds. Safe to call concurrently with Analyze.
func (a *Analyzer) Apply(cfg Config) {
	a.mu.Lock()
	a.cfg = cfg.withDefaults()
	a.mu.Unlock()
}

// Config returns the effective thresholds.
func (a *Analyzer) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Analyze computes distribution statistics and recommendations for a
// start-ordered snapshot. Pure with respect to the input: tasks is never
// mutated, and identical input yields an identical report.
func (a *Analyzer) Analyze(tasks []schedule.Task) Report {
	cfg := a.Config()

	r := Report{
		ByPriority:    map[schedule.Priority]int{},
		PriorityShare: map[schedule.Priority]float64{},
	}
	for _, p := range schedule.Priorities {
		r.ByPriority[p] = 0
		r.PriorityShare[p] = 0
	}

	r.TotalTasks = len(tasks)
	if r.TotalTasks == 0 {
		r.Recommendations = []string{RecommendAddTasks}
		return r
	}

	for _, t := range tasks {
		r.ByPriority[t.Priority]++
		r.TotalScheduled += t.Duration()
		if t.Status == schedule.StatusCompleted {
			r.CompletedTasks++
		}
	}
	for _, p := range schedule.Priorities {
		r.PriorityShare[p] = float64(r.ByPriority[p]) / float64(r.TotalTasks)
	}
	r.CompletionRate = float64(r.CompletedTasks) / float64(r.TotalTasks)
	r.Span = tasks[len(tasks)-1].End.Sub(tasks[0].Start)

	shortGap := false
	for i := 1; i < len(tasks); i++ {
		prev, next := tasks[i-1], tasks[i]
		g := Gap{
			AfterTaskID:  prev.ID,
			BeforeTaskID: next.ID,
			Start:        prev.End,
			End:          next.Start,
			Length:       next.Start.Sub(prev.End),
		}
		r.Gaps = append(r.Gaps, g)
		if g.Length < cfg.MinGap {
			shortGap = true
		}
	}

	// Rules are independent; all applicable ones fire, in this order.
	if r.PriorityShare[schedule.PriorityHigh]+r.PriorityShare[schedule.PriorityCritical] > cfg.HighLoadShare {
		r.Recommendations = append(r.Recommendations, RecommendRedistribute)
	}
	if shortGap {
		r.Recommendations = append(r.Recommendations, RecommendAddBreaks)
	}
	if r.Span > cfg.SpanLimit {
		r.Recommendations = append(r.Recommendations, RecommendSplitDays)
	}

	return r
}
