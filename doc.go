// Package gantry is an interactive Gantt chart layout and interaction engine.
//
// Gantry computes the date axis, bar geometry, dependency arrows, and
// drag-based rescheduling that every interactive Gantt view needs, while
// staying independent of any particular rendering backend. Any frontend that
// can draw rectangles and paths and deliver pointer coordinates can host it.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with a
// minimal Ebitengine frontend and a ready-made game loop:
//
//	chart := gantry.New(gantry.DefaultOptions())
//	chart.Load([]gantry.Task{
//		{ID: "design", Name: "Design", Start: d("2024-01-01"), End: d("2024-01-05")},
//		{ID: "build", Name: "Build", Start: d("2024-01-05"), End: d("2024-01-12"),
//			Dependencies: []string{"design"}},
//	})
//	gantry.Run(chart, gantry.RunConfig{Title: "Plan", Width: 960, Height: 480})
//
// For full control, host the [Chart] yourself: feed pointer events with
// [Chart.PointerDown], [Chart.PointerMove], and [Chart.PointerUp], advance
// animations with [Chart.Update], and pull geometry with [Chart.Geometry],
// [Chart.Arrows], and [Chart.GridColumns] on every tick.
//
// # Layout model
//
// A [Chart] resolves the active [ViewMode] (Day, Week, Month, and friends)
// into a column grid of dates, one pixel column per step. Each [Task] becomes
// a [Bar] positioned along the grid; holidays and other ignored dates reduce
// progress accounting without shrinking the bar itself. Dependency arrows are
// routed as typed path segments ([PathSegment]) and serialized to SVG path
// text only at the rendering boundary ([SerializePath], [RenderSVG]).
//
// # Interaction
//
// Dragging a bar body moves the task (optionally cascading the move to all
// transitive dependents), dragging its edges resizes, and dragging the
// progress handle edits completion. Commit notifications fire exactly once
// per completed gesture via [Chart.OnDateChange] and [Chart.OnProgressChange].
//
// Gantry includes animated scrolling (via [gween]), YAML configuration
// loading, synthetic pointer injection for scripted tests, and an SVG
// exporter.
//
// [gween]: https://github.com/tanema/gween
package gantry
