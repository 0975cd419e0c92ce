package gantry

import (
	"fmt"
	"os"
	"time"
)

// LayoutStats summarizes one full layout pass, for diagnostics.
type LayoutStats struct {
	Tasks         int
	Columns       int
	Arrows        int
	IgnoredRanges int
	Elapsed       time.Duration
}

// LayoutStats runs a full geometry pass over the working set and reports
// counts and timing. When debug is enabled the stats are also printed to
// stderr.
func (c *Chart) LayoutStats() (LayoutStats, error) {
	t0 := time.Now()
	stats := LayoutStats{Tasks: len(c.tasks)}
	if c.axis == nil {
		return stats, fmt.Errorf("%w: no axis", ErrConfiguration)
	}
	stats.Columns = len(c.axis.Columns)
	stats.IgnoredRanges = len(c.axis.ignored)

	for _, t := range c.tasks {
		if _, err := barGeometry(t, c.axis, c.opts); err != nil {
			return stats, err
		}
	}
	arrows, err := c.Arrows()
	if err != nil {
		return stats, err
	}
	stats.Arrows = len(arrows)
	stats.Elapsed = time.Since(t0)

	if c.debug {
		fmt.Fprintf(os.Stderr,
			"[gantry] layout: %d tasks | %d columns | %d arrows | %d ignored ranges | %v\n",
			stats.Tasks, stats.Columns, stats.Arrows, stats.IgnoredRanges, stats.Elapsed)
	}
	return stats, nil
}
