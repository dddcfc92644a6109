package chart

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// LabelValue is one bar of a bar graph.
type LabelValue struct {
	Label any
	Value float64
}

// PairsFromMap returns the entries of m ordered by key.
func PairsFromMap(m map[string]float64) []LabelValue {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	pairs := make([]LabelValue, len(keys))
	for i, k := range keys {
		pairs[i] = LabelValue{Label: k, Value: m[k]}
	}
	return pairs
}

// BarOptions configures BarGraph. The zero value draws horizontal bars
// DefaultBarWidth fillers long, sorted alphabetically, with values shown.
type BarOptions struct {
	Filler   string
	Sort     Sorter
	MaxWidth int
	// Vertical bars are not implemented.
	Vertical   bool
	HideValues bool
	Border     bool
	Title      string
}

func (o BarOptions) withDefaults() BarOptions {
	if o.Filler == "" {
		o.Filler = DefaultFiller
	}
	if o.Sort == nil {
		o.Sort = Alphabetical
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = DefaultBarWidth
	}
	return o
}

// BarGraph renders a horizontal bar graph. The largest value gets a bar of
// MaxWidth cells; the others are scaled down proportionally and floored to
// whole fillers. Values of zero or less draw no bar.
func BarGraph(pairs []LabelValue, opts BarOptions) (string, error) {
	if opts.Vertical {
		return "", fmt.Errorf("%w: vertical bar graphs", ErrNotImplemented)
	}
	opts = opts.withDefaults()
	if opts.MaxWidth < 0 {
		return "", fmt.Errorf("%w: negative bar width %d", ErrInvalidConfig, opts.MaxWidth)
	}
	fillerWidth := runewidth.StringWidth(opts.Filler)
	if fillerWidth == 0 {
		return "", fmt.Errorf("%w: filler %q has no width", ErrInvalidConfig, opts.Filler)
	}
	if len(pairs) == 0 {
		return "", fmt.Errorf("%w: no bars", ErrNothingToRender)
	}

	labelWidth := 0
	maxVal := math.Inf(-1)
	for _, p := range pairs {
		labelWidth = max(labelWidth, cellWidth(fmt.Sprint(p.Label)))
		maxVal = max(maxVal, p.Value)
	}

	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b LabelValue) int {
		return opts.Sort(a.Label, b.Label)
	})

	lines := make([]string, 0, len(sorted)+2)
	for _, p := range sorted {
		n := 0
		if maxVal > 0 && p.Value > 0 {
			n = int(math.Floor(float64(opts.MaxWidth) / float64(fillerWidth) * p.Value / maxVal))
		}
		line := justify(fmt.Sprint(p.Label), labelWidth, lipgloss.Right) + ": " + strings.Repeat(opts.Filler, n)
		if !opts.HideValues {
			line += " " + strconv.FormatFloat(p.Value, 'f', -1, 64)
		}
		lines = append(lines, line)
	}
	if opts.Title != "" {
		lines = append([]string{justify(opts.Title, maxWidth(lines), lipgloss.Center), ""}, lines...)
	}
	if opts.Border {
		var err error
		lines, err = BorderLines(lines, BorderOptions{Fit: true})
		if err != nil {
			return "", err
		}
	}
	return strings.Join(lines, "\n"), nil
}
