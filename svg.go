package gantry

import (
	"fmt"
	"html"
	"io"
)

// SVG palette. Kept close to the conventional Gantt look; charts needing
// theming should post-process the class attributes instead.
const (
	svgGridBackground  = "#ffffff"
	svgRowStripe       = "#f5f5f5"
	svgGridLine        = "#ebeff2"
	svgThickLine       = "#c0c6cc"
	svgTodayHighlight  = "#fcf8e3"
	svgIgnoredColumn   = "#f4f5f7"
	svgBarFill         = "#b8c2cc"
	svgBarProgressFill = "#a3a3ff"
	svgArrowStroke     = "#666666"
	svgTextColor       = "#333333"
)

// RenderSVG writes the chart as a standalone SVG document: header labels,
// column grid, task bars with progress fills, and dependency arrows. This is
// the textual rendering boundary; all geometry comes from the same functions
// interactive frontends use.
func RenderSVG(c *Chart, w io.Writer) error {
	if c.Axis() == nil {
		return fmt.Errorf("%w: render before load", ErrConfiguration)
	}
	width := c.Width()
	height := c.Height()
	opts := c.Options()

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(w, `<rect class="grid-background" x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		num(width), num(height), svgGridBackground)

	// Row stripes under the bars.
	rowHeight := opts.BarHeight + opts.Padding
	for i := range c.Tasks() {
		if i%2 == 0 {
			continue
		}
		y := opts.HeaderHeight + rowHeight*float64(i)
		fmt.Fprintf(w, `<rect class="grid-row" x="0" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(y), num(width), num(rowHeight), svgRowStripe)
	}

	// Columns: ignored shading, today highlight, tick lines, header labels.
	for _, col := range c.GridColumns() {
		if col.Ignored {
			fmt.Fprintf(w, `<rect class="ignored-column" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(col.X), num(opts.HeaderHeight), num(col.Width),
				num(height-opts.HeaderHeight), svgIgnoredColumn)
		}
		if col.Today {
			fmt.Fprintf(w, `<rect class="today-highlight" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(col.X), num(opts.HeaderHeight), num(col.Width),
				num(height-opts.HeaderHeight), svgTodayHighlight)
		}
		stroke := svgGridLine
		if col.ThickLine {
			stroke = svgThickLine
		}
		fmt.Fprintf(w, `<line class="tick" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
			num(col.X), num(opts.HeaderHeight), num(col.X), num(height), stroke)
		if col.UpperText != "" {
			fmt.Fprintf(w, `<text class="upper-text" x="%s" y="25" fill="%s">%s</text>`+"\n",
				num(col.X+col.Width/2), svgTextColor, html.EscapeString(col.UpperText))
		}
		fmt.Fprintf(w, `<text class="lower-text" x="%s" y="50" fill="%s" text-anchor="middle">%s</text>`+"\n",
			num(col.X+col.Width/2), svgTextColor, html.EscapeString(col.LowerText))
	}

	// Arrows go under the bars so bar drags read cleanly.
	arrows, err := c.Arrows()
	if err != nil {
		return err
	}
	for _, a := range arrows {
		fmt.Fprintf(w, `<path class="arrow" d="%s" fill="none" stroke="%s" stroke-width="1.4"/>`+"\n",
			a.SVGPath(), svgArrowStroke)
	}

	for _, t := range c.Tasks() {
		bar, err := c.Geometry(t.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, `<g class="bar-wrapper" data-id="%s">`+"\n", html.EscapeString(t.ID))
		fmt.Fprintf(w, `<rect class="bar" x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`+"\n",
			num(bar.X), num(bar.Y), num(bar.Width), num(bar.Height),
			num(opts.BarCornerRadius), svgBarFill)
		if bar.ProgressWidth > 0 {
			fmt.Fprintf(w, `<rect class="bar-progress" x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`+"\n",
				num(bar.X), num(bar.Y), num(bar.ProgressWidth), num(bar.Height),
				num(opts.BarCornerRadius), svgBarProgressFill)
		}
		fmt.Fprintf(w, `<text class="bar-label" x="%s" y="%s" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
			num(bar.X+bar.Width/2), num(bar.Y+bar.Height/2), svgTextColor, html.EscapeString(t.Name))
		fmt.Fprintln(w, `</g>`)
	}

	_, err = fmt.Fprintln(w, `</svg>`)
	return err
}
