package gantry

import (
	"fmt"
	"time"
)

// Task is a single schedulable row. ID must be unique within a load. End is
// exclusive of the instant: a one-day task on Jan 1 ends at Jan 2 00:00.
//
// After Load, task dates and progress are mutated only by the interaction
// controller (and UpdateTask); bar geometry is always derived from them.
type Task struct {
	ID   string
	Name string

	Start time.Time
	End   time.Time
	// Duration is an optional duration string ("4d", "2mo"). When End is
	// zero it derives the end date from Start.
	Duration string

	// Progress is the completion percentage, clamped into [0, 100] on
	// every write.
	Progress float64

	// Dependencies lists ids of tasks this task depends on.
	Dependencies []string

	// Index is the row position, assigned in load order.
	Index int

	// Invalid marks tasks that failed validation. Invalid tasks are
	// excluded from the working set.
	Invalid bool

	// ignoredDuration counts the days of the task span that fall on ignored
	// dates. Derived on load and kept current after committed drags; read
	// through IgnoredDuration.
	ignoredDuration int
}

// IgnoredDuration returns how many days of the task span fall on ignored
// dates under the current axis. Zero when nothing is ignored.
func (t *Task) IgnoredDuration() int { return t.ignoredDuration }

// SetProgress writes the progress value, clamped into [0, 100].
func (t *Task) SetProgress(p float64) {
	t.Progress = clampProgress(p)
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// normalizeTask validates and derives a task's date fields in place.
// Returns a validation error when the task must be rejected; warn conditions
// are reported through logf and keep the task.
func normalizeTask(t *Task, logf func(format string, args ...any)) error {
	if t.Start.IsZero() {
		return fmt.Errorf("gantry: task %q has no start date", t.ID)
	}
	if t.End.IsZero() && t.Duration != "" {
		d, err := ParseTaskDuration(t.Duration)
		if err != nil {
			return fmt.Errorf("gantry: task %q: %w", t.ID, err)
		}
		t.End = dateAdd(t.Start, d.Count, d.Unit)
	}
	if t.End.IsZero() {
		return fmt.Errorf("gantry: task %q has neither end date nor duration", t.ID)
	}
	if !t.End.After(t.Start) {
		return fmt.Errorf("gantry: task %q end is not after start", t.ID)
	}

	t.Progress = clampProgress(t.Progress)

	// Long spans are suspicious but legal. Ten years exactly and beyond ten
	// years report under distinct keys so callers can tell them apart.
	tenYears := dateAdd(t.Start, 10, UnitYear)
	if t.End.Equal(tenYears) {
		logf("task %q duration-ten-years: spans exactly ten years", t.ID)
	} else if t.End.After(tenYears) {
		logf("task %q duration-over-ten-years: spans more than ten years", t.ID)
	}
	return nil
}

// TaskUpdate carries the optional fields of UpdateTask. Nil fields are left
// unchanged.
type TaskUpdate struct {
	Name         *string
	Start        *time.Time
	End          *time.Time
	Duration     *string
	Progress     *float64
	Dependencies *[]string
}
