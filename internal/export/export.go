// Package export renders schedule snapshots to text and CSV files.
//
// Exporters only consume the start-sorted copies handed out by
// schedule.Service.Tasks(); the core itself does no file I/O.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dayplan/internal/schedule"
)

// WriteText renders a human-readable schedule listing.
func WriteText(w io.Writer, tasks []schedule.Task) error {
	if _, err := fmt.Fprintf(w, "Daily Schedule (%d tasks)\n", len(tasks)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}
	for _, t := range tasks {
		_, err := fmt.Fprintf(w, "%s-%s  [%-8s] %-9s %s\n",
			t.Start, t.End, t.Priority, t.Status, t.Description)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders one row per task with a header.
func WriteCSV(w io.Writer, tasks []schedule.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "description", "start", "end", "duration_minutes", "priority", "status"}); err != nil {
		return err
	}
	for _, t := range tasks {
		rec := []string{
			t.ID,
			t.Description,
			t.Start.String(),
			t.End.String(),
			fmt.Sprintf("%d", int(t.Duration()/time.Minute)),
			t.Priority.String(),
			t.Status.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes the schedule to dir in the given format ("text" or "csv")
// and returns the created path. The file is written atomically via rename.
func ToFile(dir, format string, tasks []schedule.Task) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	var ext string
	var render func(io.Writer, []schedule.Task) error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "txt", "":
		ext, render = "txt", WriteText
	case "csv":
		ext, render = "csv", WriteCSV
	default:
		return "", fmt.Errorf("unknown export format %q (use text or csv)", format)
	}

	name := fmt.Sprintf("schedule-%s.%s", time.Now().Format("20060102-150405"), ext)
	path := filepath.Join(dir, name)

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	if err := render(f, tasks); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return path, nil
}
