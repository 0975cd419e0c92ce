package gantry

import (
	"errors"
	"strings"
	"testing"
)

const sampleConfig = `
view_mode: Week
column_width: 60
layout:
  bar_height: 24
  padding: 12
move_dependencies: false
readonly_progress: true
ignore:
  - weekend
  - "2024-12-25"
tasks:
  - id: design
    name: Design
    start: 2024-01-01
    end: 2024-01-05
    progress: 40
  - id: build
    name: Build
    start: 2024-01-03
    duration: 5d
    dependencies: [design]
`

func TestLoadConfig(t *testing.T) {
	opts, tasks, err := LoadConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if opts.ViewModeName != "Week" {
		t.Errorf("view mode = %q, want Week", opts.ViewModeName)
	}
	assertNear(t, "column width", opts.ColumnWidth, 60)
	assertNear(t, "bar height", opts.BarHeight, 24)
	assertNear(t, "padding", opts.Padding, 12)
	// Omitted layout fields keep their defaults.
	assertNear(t, "header height", opts.HeaderHeight, DefaultHeaderHeight)
	if opts.MoveDependencies {
		t.Error("move_dependencies: false not applied")
	}
	if !opts.ReadonlyProgress {
		t.Error("readonly_progress: true not applied")
	}
	if len(opts.Ignore) != 2 || opts.Ignore[0] != "weekend" {
		t.Errorf("ignore = %v", opts.Ignore)
	}

	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(tasks))
	}
	if !tasks[0].Start.Equal(date(t, "2024-01-01")) {
		t.Errorf("design start = %v", tasks[0].Start)
	}
	assertNear(t, "design progress", tasks[0].Progress, 40)
	if tasks[1].Duration != "5d" {
		t.Errorf("build duration = %q", tasks[1].Duration)
	}
	if len(tasks[1].Dependencies) != 1 || tasks[1].Dependencies[0] != "design" {
		t.Errorf("build dependencies = %v", tasks[1].Dependencies)
	}
}

func TestLoadConfigDefaultsWhenEmpty(t *testing.T) {
	opts, tasks, err := LoadConfig(strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if opts.ViewModeName != "Day" {
		t.Errorf("view mode = %q, want Day", opts.ViewModeName)
	}
	if !opts.MoveDependencies {
		t.Error("move_dependencies should default to true")
	}
	if !opts.InfinitePadding {
		t.Error("infinite_padding should default to true")
	}
	if len(tasks) != 0 {
		t.Errorf("tasks = %d, want 0", len(tasks))
	}
}

func TestLoadConfigUnknownViewMode(t *testing.T) {
	_, _, err := LoadConfig(strings.NewReader("view_mode: Decade"))
	if !errors.Is(err, ErrUnknownViewMode) {
		t.Errorf("error = %v, want ErrUnknownViewMode", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, _, err := LoadConfig(strings.NewReader("tasks: [unterminated"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigBadTaskDateDeferredToLoad(t *testing.T) {
	cfg := `
tasks:
  - id: broken
    start: yesterday-ish
    end: 2024-01-05
`
	_, tasks, err := LoadConfig(strings.NewReader(cfg))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	// The unparseable start stays zero; Load rejects the task later.
	if !tasks[0].Start.IsZero() {
		t.Errorf("start = %v, want zero", tasks[0].Start)
	}

	c := New(DefaultOptions())
	c.mode = testDayMode
	c.Logf = func(string, ...any) {}
	if err := c.Load(tasks); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Tasks()) != 0 {
		t.Errorf("invalid task survived load")
	}
}
