package gantry

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// WheelScrollSpeed is pixels per wheel unit. 0 uses a sensible default.
	WheelScrollSpeed float64
}

// Run opens a window hosting the chart with a minimal Ebitengine frontend:
// bars, progress fills, grid lines, and dependency arrows, with full drag
// interaction and wheel scrolling. It blocks until the window closes.
//
// Run is a reference frontend, not the only one; any backend able to draw
// rectangles and paths can host a Chart the same way.
func Run(c *Chart, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 960
	}
	if cfg.Height == 0 {
		cfg.Height = 540
	}
	if cfg.WheelScrollSpeed == 0 {
		cfg.WheelScrollSpeed = 20
	}
	if cfg.Title == "" {
		cfg.Title = "gantry"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&chartGame{chart: c, cfg: cfg})
}

// chartGame adapts a Chart to ebiten.Game.
type chartGame struct {
	chart       *Chart
	cfg         RunConfig
	prevPressed bool
}

var (
	runBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	runRowStripe  = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	runGridLine   = color.RGBA{0xeb, 0xef, 0xf2, 0xff}
	runThickLine  = color.RGBA{0xc0, 0xc6, 0xcc, 0xff}
	runToday      = color.RGBA{0xfc, 0xf8, 0xe3, 0xff}
	runIgnored    = color.RGBA{0xf4, 0xf5, 0xf7, 0xff}
	runBar        = color.RGBA{0xb8, 0xc2, 0xcc, 0xff}
	runProgress   = color.RGBA{0xa3, 0xa3, 0xff, 0xff}
	runArrow      = color.RGBA{0x66, 0x66, 0x66, 0xff}
)

func (g *chartGame) Update() error {
	g.chart.SetViewWidth(float64(g.cfg.Width))

	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < g.cfg.Width && my < g.cfg.Height
	// Content coordinates: screen position plus scroll offset.
	x := float64(mx) + g.chart.ScrollX()
	y := float64(my)

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !g.prevPressed:
		g.chart.PointerDown(x, y)
	case pressed && g.prevPressed:
		if inside {
			g.chart.PointerMove(x, y)
		} else {
			g.chart.PointerCancel()
		}
	case !pressed && g.prevPressed:
		g.chart.PointerMove(x, y)
		g.chart.PointerUp()
	}
	g.prevPressed = pressed

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		delta := wx
		if delta == 0 {
			delta = wy // vertical wheels scroll the timeline too
		}
		g.chart.SetScrollX(g.chart.ScrollX() - delta*g.cfg.WheelScrollSpeed)
	}

	g.chart.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *chartGame) Draw(screen *ebiten.Image) {
	screen.Fill(runBackground)
	scroll := float32(g.chart.ScrollX())
	opts := g.chart.Options()
	h := float32(g.chart.Height())
	w := float32(g.cfg.Width)

	rowHeight := float32(opts.BarHeight + opts.Padding)
	for i := range g.chart.Tasks() {
		if i%2 == 1 {
			y := float32(opts.HeaderHeight) + rowHeight*float32(i)
			vector.DrawFilledRect(screen, 0, y, w, rowHeight, runRowStripe, false)
		}
	}

	for _, col := range g.chart.GridColumns() {
		x := float32(col.X) - scroll
		if x < -float32(col.Width) || x > w {
			continue
		}
		if col.Ignored {
			vector.DrawFilledRect(screen, x, float32(opts.HeaderHeight),
				float32(col.Width), h-float32(opts.HeaderHeight), runIgnored, false)
		}
		if col.Today {
			vector.DrawFilledRect(screen, x, float32(opts.HeaderHeight),
				float32(col.Width), h-float32(opts.HeaderHeight), runToday, false)
		}
		stroke := runGridLine
		width := float32(1)
		if col.ThickLine {
			stroke = runThickLine
			width = 2
		}
		vector.StrokeLine(screen, x, float32(opts.HeaderHeight), x, h, width, stroke, false)
		if col.UpperText != "" {
			ebitenutil.DebugPrintAt(screen, col.UpperText, int(x), 10)
		}
		ebitenutil.DebugPrintAt(screen, col.LowerText, int(x)+2, 35)
	}

	arrows, err := g.chart.Arrows()
	if err == nil {
		for _, a := range arrows {
			drawPath(screen, a.Path, scroll, runArrow)
		}
	}

	for _, t := range g.chart.Tasks() {
		bar, err := g.chart.Geometry(t.ID)
		if err != nil {
			continue
		}
		x := float32(bar.X) - scroll
		vector.DrawFilledRect(screen, x, float32(bar.Y),
			float32(bar.Width), float32(bar.Height), runBar, false)
		if bar.ProgressWidth > 0 {
			vector.DrawFilledRect(screen, x, float32(bar.Y),
				float32(bar.ProgressWidth), float32(bar.Height), runProgress, false)
		}
		ebitenutil.DebugPrintAt(screen, t.Name, int(x)+4, int(bar.Y)+8)
	}
}

func (g *chartGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cfg.Width = outsideWidth
	g.cfg.Height = outsideHeight
	return outsideWidth, outsideHeight
}

// drawPath strokes a segment path as a polyline: each segment contributes a
// straight stroke to its endpoint, with arcs flattened to chords. Accurate
// enough at the 5px arc radius arrows use.
func drawPath(dst *ebiten.Image, path []PathSegment, scroll float32, clr color.Color) {
	var curX, curY float64
	for _, s := range path {
		nextX, nextY := curX, curY
		switch s.Kind {
		case PathVertical:
			if s.Rel {
				nextY += s.Y
			} else {
				nextY = s.Y
			}
		case PathHorizontal:
			if s.Rel {
				nextX += s.X
			} else {
				nextX = s.X
			}
		default:
			if s.Rel {
				nextX += s.X
				nextY += s.Y
			} else {
				nextX, nextY = s.X, s.Y
			}
		}
		if s.Kind != PathMove {
			vector.StrokeLine(dst,
				float32(curX)-scroll, float32(curY),
				float32(nextX)-scroll, float32(nextY),
				1.4, clr, true)
		}
		curX, curY = nextX, nextY
	}
}
