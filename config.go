package gantry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML file format for chart options and an optional task
// list. All fields are optional; omitted values fall back to the package
// defaults via DefaultOptions.
type Config struct {
	ViewMode    string  `yaml:"view_mode"`    // "Hour", "Quarter Day", "Half Day", "Day", "Week", "Month", "Year"
	ColumnWidth float64 `yaml:"column_width"` // 0 = view-mode default

	Layout struct {
		HeaderHeight    float64 `yaml:"header_height"`
		BarHeight       float64 `yaml:"bar_height"`
		BarCornerRadius float64 `yaml:"bar_corner_radius"`
		Padding         float64 `yaml:"padding"`
		ArrowCurve      float64 `yaml:"arrow_curve"`
	} `yaml:"layout"`

	MoveDependencies *bool `yaml:"move_dependencies"` // default true
	InfinitePadding  *bool `yaml:"infinite_padding"`  // default true

	Readonly         bool `yaml:"readonly"`
	ReadonlyDates    bool `yaml:"readonly_dates"`
	ReadonlyProgress bool `yaml:"readonly_progress"`

	Holidays []string `yaml:"holidays"` // dates
	Ignore   []string `yaml:"ignore"`   // dates or "weekend"

	Language string `yaml:"language"`

	Tasks []ConfigTask `yaml:"tasks"`
}

// ConfigTask is the YAML shape of one task.
type ConfigTask struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Duration     string   `yaml:"duration"`
	Progress     float64  `yaml:"progress"`
	Dependencies []string `yaml:"dependencies"`
}

// LoadConfig reads a YAML configuration and returns the resolved options and
// task list. Date parse failures on a task are left to Load's validation
// (the task carries a zero date and is rejected there); a malformed document
// fails here.
func LoadConfig(r io.Reader) (Options, []Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Options{}, nil, fmt.Errorf("gantry: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Options{}, nil, fmt.Errorf("gantry: parse config: %w", err)
	}
	return cfg.Resolve()
}

// LoadConfigFile is LoadConfig over a file path.
func LoadConfigFile(path string) (Options, []Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, nil, fmt.Errorf("gantry: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Resolve converts the YAML shape into Options and Tasks, applying defaults.
func (cfg Config) Resolve() (Options, []Task, error) {
	opts := DefaultOptions()
	if cfg.ViewMode != "" {
		if _, ok := ViewModeByName(cfg.ViewMode); !ok {
			return opts, nil, fmt.Errorf("%w: %q", ErrUnknownViewMode, cfg.ViewMode)
		}
		opts.ViewModeName = cfg.ViewMode
	}
	opts.ColumnWidth = cfg.ColumnWidth
	if cfg.Layout.HeaderHeight > 0 {
		opts.HeaderHeight = cfg.Layout.HeaderHeight
	}
	if cfg.Layout.BarHeight > 0 {
		opts.BarHeight = cfg.Layout.BarHeight
	}
	if cfg.Layout.BarCornerRadius > 0 {
		opts.BarCornerRadius = cfg.Layout.BarCornerRadius
	}
	if cfg.Layout.Padding > 0 {
		opts.Padding = cfg.Layout.Padding
	}
	if cfg.Layout.ArrowCurve > 0 {
		opts.ArrowCurve = cfg.Layout.ArrowCurve
	}
	if cfg.MoveDependencies != nil {
		opts.MoveDependencies = *cfg.MoveDependencies
	}
	if cfg.InfinitePadding != nil {
		opts.InfinitePadding = *cfg.InfinitePadding
	}
	opts.Readonly = cfg.Readonly
	opts.ReadonlyDates = cfg.ReadonlyDates
	opts.ReadonlyProgress = cfg.ReadonlyProgress
	opts.Holidays = cfg.Holidays
	opts.Ignore = cfg.Ignore
	if cfg.Language != "" {
		opts.Language = cfg.Language
	}

	tasks := make([]Task, 0, len(cfg.Tasks))
	for _, ct := range cfg.Tasks {
		t := Task{
			ID:           ct.ID,
			Name:         ct.Name,
			Duration:     ct.Duration,
			Progress:     ct.Progress,
			Dependencies: ct.Dependencies,
		}
		if ct.Start != "" {
			if parsed, err := ParseDate(ct.Start); err == nil {
				t.Start = parsed
			}
		}
		if ct.End != "" {
			if parsed, err := ParseDate(ct.End); err == nil {
				t.End = parsed
			}
		}
		tasks = append(tasks, t)
	}
	return opts, tasks, nil
}
