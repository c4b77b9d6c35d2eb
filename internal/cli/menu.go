// Package cli implements the interactive menu over stdin/stdout.
//
// All prompting and message formatting lives here; the schedule core only
// ever sees parsed input and only ever returns typed errors.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"dayplan/internal/analyze"
	"dayplan/internal/export"
	"dayplan/internal/schedule"
	logx "dayplan/pkg/logx"
)

// Deps is everything the menu needs, injected by the app.
type Deps struct {
	Schedule  *schedule.Service
	Analyzer  *analyze.Analyzer
	ExportDir func() string
	Log       logx.Logger
}

const menuText = `
=== Daily Schedule Organizer ===
 1) Add task
 2) Edit task
 3) Remove task
 4) Mark task complete
 5) List schedule
 6) Analyze productivity
 7) Export schedule
 0) Quit
`

// Run drives the menu loop until the user quits, input ends, or ctx is done.
func Run(ctx context.Context, d Deps, in io.Reader, out io.Writer) error {
	if d.Log.IsZero() {
		d.Log = logx.Nop()
	}
	if d.ExportDir == nil {
		d.ExportDir = func() string { return "." }
	}

	// Reading happens on its own goroutine so Ctrl-C interrupts a pending
	// prompt instead of waiting for the next newline.
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	read := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		select {
		case <-ctx.Done():
			return "", false
		case s, ok := <-lines:
			if !ok {
				return "", false
			}
			return strings.TrimSpace(s), true
		}
	}

	for {
		fmt.Fprint(out, menuText)
		choice, ok := read("> ")
		if !ok {
			return nil
		}

		switch choice {
		case "0", "q", "quit", "exit":
			fmt.Fprintln(out, "Bye.")
			return nil
		case "1":
			addTask(d, read, out)
		case "2":
			editTask(d, read, out)
		case "3":
			removeTask(d, read, out)
		case "4":
			completeTask(d, read, out)
		case "5":
			listTasks(d, out)
		case "6":
			analyzeTasks(d, out)
		case "7":
			exportTasks(d, read, out)
		default:
			fmt.Fprintf(out, "Unknown choice %q.\n", choice)
		}
	}
}

type readFn func(prompt string) (string, bool)

func addTask(d Deps, read readFn, out io.Writer) {
	desc, ok := read("Description: ")
	if !ok {
		return
	}
	start, ok := read("Start (HH:mm): ")
	if !ok {
		return
	}
	end, ok := read("End (HH:mm): ")
	if !ok {
		return
	}
	rawPrio, ok := read("Priority (LOW/MEDIUM/HIGH/CRITICAL): ")
	if !ok {
		return
	}

	prio := schedule.PriorityMedium
	if rawPrio != "" {
		p, err := schedule.ParsePriority(rawPrio)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		prio = p
	}

	t, err := d.Schedule.AddTask(desc, start, end, prio)
	if err != nil {
		fmt.Fprintln(out, Message(err))
		return
	}
	fmt.Fprintf(out, "Added %q %s-%s.\n", t.Description, t.Start, t.End)
}

func editTask(d Deps, read readFn, out io.Writer) {
	t, ok := pickTask(d, read, out)
	if !ok {
		return
	}

	fmt.Fprintln(out, "Leave a field blank to keep its current value.")
	var patch schedule.TaskPatch
	if v, ok := read(fmt.Sprintf("Description [%s]: ", t.Description)); !ok {
		return
	} else if v != "" {
		patch.Description = &v
	}
	if v, ok := read(fmt.Sprintf("Start [%s]: ", t.Start)); !ok {
		return
	} else if v != "" {
		patch.Start = &v
	}
	if v, ok := read(fmt.Sprintf("End [%s]: ", t.End)); !ok {
		return
	} else if v != "" {
		patch.End = &v
	}
	if v, ok := read(fmt.Sprintf("Priority [%s]: ", t.Priority)); !ok {
		return
	} else if v != "" {
		p, err := schedule.ParsePriority(v)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		patch.Priority = &p
	}

	next, err := d.Schedule.EditTask(t.ID, patch)
	if err != nil {
		fmt.Fprintln(out, Message(err))
		return
	}
	fmt.Fprintf(out, "Updated %q %s-%s.\n", next.Description, next.Start, next.End)
}

func removeTask(d Deps, read readFn, out io.Writer) {
	t, ok := pickTask(d, read, out)
	if !ok {
		return
	}
	if err := d.Schedule.RemoveTask(t.ID); err != nil {
		fmt.Fprintln(out, Message(err))
		return
	}
	fmt.Fprintf(out, "Removed %q.\n", t.Description)
}

func completeTask(d Deps, read readFn, out io.Writer) {
	t, ok := pickTask(d, read, out)
	if !ok {
		return
	}
	done, err := d.Schedule.MarkComplete(t.ID)
	if err != nil {
		fmt.Fprintln(out, Message(err))
		return
	}
	fmt.Fprintf(out, "Completed %q.\n", done.Description)
}

// pickTask lists the schedule and resolves a 1-based selection.
func pickTask(d Deps, read readFn, out io.Writer) (schedule.Task, bool) {
	tasks := d.Schedule.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "The schedule is empty.")
		return schedule.Task{}, false
	}
	printTasks(out, tasks)

	raw, ok := read("Task #: ")
	if !ok {
		return schedule.Task{}, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(tasks) {
		fmt.Fprintf(out, "Pick a number between 1 and %d.\n", len(tasks))
		return schedule.Task{}, false
	}
	return tasks[n-1], true
}

func listTasks(d Deps, out io.Writer) {
	tasks := d.Schedule.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "The schedule is empty.")
		return
	}
	printTasks(out, tasks)
}

func printTasks(out io.Writer, tasks []schedule.Task) {
	for i, t := range tasks {
		fmt.Fprintf(out, "%2d. %s-%s  [%-8s] %-9s %s\n",
			i+1, t.Start, t.End, t.Priority, t.Status, t.Description)
	}
}

func analyzeTasks(d Deps, out io.Writer) {
	r := d.Analyzer.Analyze(d.Schedule.Tasks())

	fmt.Fprintf(out, "Tasks: %d total, %d completed (%.0f%%)\n",
		r.TotalTasks, r.CompletedTasks, r.CompletionRate*100)
	fmt.Fprintf(out, "Scheduled time: %s (span %s)\n", r.TotalScheduled, r.Span)
	for _, p := range schedule.Priorities {
		fmt.Fprintf(out, "  %-8s %2d  (%.0f%%)\n", p, r.ByPriority[p], r.PriorityShare[p]*100)
	}
	for _, g := range r.Gaps {
		fmt.Fprintf(out, "Gap %s-%s (%s)\n", g.Start, g.End, g.Length)
	}
	if len(r.Recommendations) > 0 {
		fmt.Fprintln(out, "Recommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
}

func exportTasks(d Deps, read readFn, out io.Writer) {
	format, ok := read("Format (text/csv): ")
	if !ok {
		return
	}
	path, err := export.ToFile(d.ExportDir(), format, d.Schedule.Tasks())
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "Exported to %s.\n", path)
}

// Message translates a typed schedule error into a user-facing line.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ce, ok := schedule.AsConflict(err); ok {
		t := ce.Conflicting
		return fmt.Sprintf("Task conflict detected! Conflicting with: %s (%s-%s)",
			t.Description, t.Start, t.End)
	}
	if ve, ok := schedule.AsValidation(err); ok {
		switch ve.Code {
		case schedule.CodeEmptyDescription:
			return "Description cannot be blank."
		case schedule.CodeDescriptionLength:
			return fmt.Sprintf("Description must be %d-%d characters.",
				schedule.MinDescriptionLen, schedule.MaxDescriptionLen)
		case schedule.CodeInvalidTimeFormat:
			return "Times must be 24-hour HH:mm (e.g. 09:30)."
		case schedule.CodeStartAfterEnd:
			return "Start time must be before end time."
		case schedule.CodeDurationTooShort:
			return fmt.Sprintf("Tasks must run at least %s.", formatDur(schedule.MinTaskDuration))
		case schedule.CodeDurationTooLong:
			return fmt.Sprintf("Tasks may run at most %s.", formatDur(schedule.MaxTaskDuration))
		}
		return ve.Error()
	}
	if _, ok := schedule.AsNotFound(err); ok {
		return "That task no longer exists."
	}
	return err.Error()
}

func formatDur(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
