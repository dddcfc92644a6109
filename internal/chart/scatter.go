package chart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/charmbracelet/lipgloss"
)

// ScatterOptions configures Scatterplot. Zero fields take the Default
// values; nil ranges are derived from the data with ExpandRange.
type ScatterOptions struct {
	XRange, YRange *Range
	// Height and Width are the number of row and column steps.
	Height, Width  int
	XScale, YScale ScaleFunc
	// XLabel and YLabel may span several lines.
	XLabel, YLabel string
	// Glyphs mark cells of increasing density.
	Glyphs string
	// UnitBlock is the background of empty cells.
	UnitBlock              string
	XTicks, YTicks         int
	XFormatter, YFormatter Formatter
	HideKey                bool
	Title                  string
	Border                 bool
}

func (o ScatterOptions) withDefaults() ScatterOptions {
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.XScale == nil {
		o.XScale = Linear
	}
	if o.YScale == nil {
		o.YScale = Linear
	}
	if o.Glyphs == "" {
		o.Glyphs = DefaultGlyphs
	}
	if o.UnitBlock == "" {
		o.UnitBlock = DefaultUnit
	}
	if o.XTicks == 0 {
		o.XTicks = DefaultTicks
	}
	if o.YTicks == 0 {
		o.YTicks = DefaultTicks
	}
	if o.XFormatter == nil {
		o.XFormatter = Num
	}
	if o.YFormatter == nil {
		o.YFormatter = Num
	}
	return o
}

func (o ScatterOptions) validate() error {
	switch {
	case o.Height < 0 || o.Width < 0:
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, o.Width, o.Height)
	case o.XTicks < 0 || o.YTicks < 0:
		return fmt.Errorf("%w: tick counts %d, %d", ErrInvalidConfig, o.XTicks, o.YTicks)
	}
	return nil
}

// ExpandRange returns the span of vals widened by a tenth of its spread on
// each side. The lower bound never exceeds 0.
func ExpandRange(vals []float64) Range {
	lo, hi := stats.Bounds(vals)
	spread := hi - lo
	lo -= spread / 10
	hi += spread / 10
	return Range{Min: min(lo, 0), Max: hi}
}

// Ranges returns the x and y ranges Scatterplot uses for points: the given
// ranges, or ones derived with ExpandRange when nil.
func (o ScatterOptions) Ranges(points []Point) (x, y Range, err error) {
	if o.XRange != nil {
		x = *o.XRange
	} else {
		x = ExpandRange(coords(points, func(p Point) float64 { return p.X }))
	}
	if o.YRange != nil {
		y = *o.YRange
	} else {
		y = ExpandRange(coords(points, func(p Point) float64 { return p.Y }))
	}
	if !(x.Max > x.Min) {
		return x, y, fmt.Errorf("%w: x range must increase, got [%g, %g]", ErrInvalidRange, x.Min, x.Max)
	}
	if !(y.Max > y.Min) {
		return x, y, fmt.Errorf("%w: y range must increase, got [%g, %g]", ErrInvalidRange, y.Min, y.Max)
	}
	return x, y, nil
}

func coords(points []Point, f func(Point) float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = f(p)
	}
	return out
}

// Scatterplot renders points as a density grid with axes, an optional key
// to the density glyphs, title, and border.
func Scatterplot(points []Point, opts ScatterOptions) (string, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return "", err
	}
	if len(points) == 0 {
		return "", fmt.Errorf("%w: no points", ErrNothingToRender)
	}
	xr, yr, err := opts.Ranges(points)
	if err != nil {
		return "", err
	}
	rowVal := func(r int) float64 { return opts.YScale(yr.Min, yr.Max, opts.Height, r) }
	colVal := func(c int) float64 { return opts.XScale(xr.Min, xr.Max, opts.Width, c) }

	counts := Bin(points, opts.Height, opts.Width, rowVal, colVal)
	pal := Palette(opts.Glyphs, opts.UnitBlock)
	th, err := Thresholds(len(pal)-2, counts)
	if err != nil {
		return "", err
	}

	graph := axes{
		xTicks: opts.XTicks,
		yTicks: opts.YTicks,
		rowVal: rowVal,
		colVal: colVal,
		xFmt:   opts.XFormatter,
		yFmt:   opts.YFormatter,
	}.decorate(renderScatter(counts, pal, th))
	slices.Reverse(graph)

	graph = append(graph, "")
	for _, l := range strings.Split(opts.XLabel, "\n") {
		graph = append(graph, justify(l, opts.Width, lipgloss.Center))
	}

	side := make([]string, len(graph))
	yLabel := strings.Split(opts.YLabel, "\n")
	copy(side[max(0, (opts.Height-len(yLabel))/2):], yLabel)
	graph = combine(side, graph, lipgloss.Center, 2)

	if !opts.HideKey {
		key, err := BorderLines(Key(counts, pal, th), BorderOptions{Fit: true})
		if err != nil {
			return "", err
		}
		graph = combine(graph, key, lipgloss.Left, 0)
	}
	if opts.Title != "" {
		graph = append([]string{justify(opts.Title, cellWidth(graph[0]), lipgloss.Center), ""}, graph...)
	}
	if opts.Border {
		graph, err = BorderLines(graph, BorderOptions{Fit: true})
		if err != nil {
			return "", err
		}
	}
	return strings.Join(trimRight(graph), "\n"), nil
}
