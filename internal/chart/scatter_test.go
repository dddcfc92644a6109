package chart

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/maruel/ut"
)

var smallPoints = []Point{{1, 1}, {1, 1}, {3, 3}}

func smallOptions() ScatterOptions {
	return ScatterOptions{
		XRange:     &Range{0, 4},
		YRange:     &Range{0, 4},
		Height:     4,
		Width:      4,
		XTicks:     2,
		YTicks:     2,
		XFormatter: Int,
		YFormatter: Int,
	}
}

func TestScatterplot(t *testing.T) {
	t.Parallel()
	opts := smallOptions()
	opts.HideKey = true
	got, err := Scatterplot(smallPoints, opts)
	ut.AssertEqual(t, nil, err)
	expected := []string{
		"  4┨",
		"   ┃   x",
		"   ┃",
		"  1┨ *",
		"   ┃",
		"  0╄━━━┯━┯",
		"   0   3 5",
		"",
		"",
	}
	ut.AssertEqual(t, expected, strings.Split(got, "\n"))
}

func TestScatterplotDecorated(t *testing.T) {
	t.Parallel()
	opts := smallOptions()
	opts.Title = "T"
	opts.Border = true
	opts.XLabel = "xs"
	opts.YLabel = "ys"
	got, err := Scatterplot(smallPoints, opts)
	ut.AssertEqual(t, nil, err)
	expected := []string{
		"┌───────────────────────────────┐",
		"│               T               │",
		"│                               │",
		"│     4┨      ┌───────────────┐ │",
		"│  ys  ┃   x  │ \"x\": 1 point  │ │",
		"│      ┃      │ \"*\": 2 points │ │",
		"│     1┨ *    └───────────────┘ │",
		"│      ┃                        │",
		"│     0╄━━━┯━┯                  │",
		"│      0   3 5                  │",
		"│                               │",
		"│      xs                       │",
		"└───────────────────────────────┘",
	}
	ut.AssertEqual(t, expected, strings.Split(got, "\n"))
}

func TestScatterplotSinglePoint(t *testing.T) {
	t.Parallel()
	got, err := Scatterplot([]Point{{5, 5}}, ScatterOptions{
		XRange: &Range{0, 10},
		YRange: &Range{0, 10},
	})
	ut.AssertEqual(t, nil, err)
	// One cell in the grid, one line in the key.
	ut.AssertEqual(t, 2, strings.Count(got, "*"))
	ut.AssertEqual(t, true, strings.Contains(got, `"*": 1 point `))
}

func TestScatterplotDegenerate(t *testing.T) {
	t.Parallel()
	points := make([]Point, 50)
	for i := range points {
		points[i] = Point{5, 5}
	}
	got, err := Scatterplot(points, ScatterOptions{
		XRange: &Range{0, 10},
		YRange: &Range{0, 10},
	})
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, true, strings.Contains(got, `"*": 50 points`))
}

func TestScatterplotKeyTallerThanPlot(t *testing.T) {
	t.Parallel()
	// Column c holds c+1 points, giving eight distinct counts and an
	// eight line key.
	var points []Point
	for c := 0; c < 8; c++ {
		for n := 0; n < c+1; n++ {
			points = append(points, Point{float64(c) + 0.5, 0.5})
		}
	}
	got, err := Scatterplot(points, ScatterOptions{
		XRange: &Range{0, 8},
		YRange: &Range{0, 1},
		Height: 1,
		Width:  8,
		Glyphs: "abcdefgh",
	})
	ut.AssertEqual(t, nil, err)
	lines := strings.Split(got, "\n")
	ut.AssertEqual(t, 10, len(lines))
	// The key starts right of the widest plot row.
	left := len([]rune(lines[0][:strings.Index(lines[0], "┌")]))
	pad := strings.Repeat(" ", left)
	for i := 7; i < len(lines); i++ {
		// Rows past the plot are blank up to the key.
		ut.AssertEqualIndex(t, i, true, strings.HasPrefix(lines[i], pad))
	}
	ut.AssertEqual(t, pad+`│ "h": 8 points │`, lines[8])
	ut.AssertEqual(t, pad+"└"+strings.Repeat("─", 15)+"┘", lines[9])
}

func TestScatterplotLogScale(t *testing.T) {
	t.Parallel()
	points := []Point{{1, 1}, {10, 10}, {100, 100}, {1000, 1000}}
	got, err := Scatterplot(points, ScatterOptions{
		XRange:  &Range{0, 2000},
		YRange:  &Range{0, 2000},
		XScale:  Log,
		YScale:  Log,
		Height:  8,
		Width:   16,
		HideKey: true,
	})
	ut.AssertEqual(t, nil, err)
	// Log spacing keeps every point in its own cell.
	ut.AssertEqual(t, 4, strings.Count(got, "*"))
}

func TestScatterplotErrors(t *testing.T) {
	t.Parallel()
	_, err := Scatterplot(nil, ScatterOptions{})
	ut.AssertEqual(t, true, errors.Is(err, ErrNothingToRender))

	_, err = Scatterplot([]Point{{50, 50}}, ScatterOptions{XRange: &Range{0, 10}, YRange: &Range{0, 10}})
	ut.AssertEqual(t, true, errors.Is(err, ErrNothingToRender))

	_, err = Scatterplot(smallPoints, ScatterOptions{XRange: &Range{1, 1}})
	ut.AssertEqual(t, true, errors.Is(err, ErrInvalidRange))

	_, err = Scatterplot(smallPoints, ScatterOptions{YRange: &Range{3, 2}})
	ut.AssertEqual(t, true, errors.Is(err, ErrInvalidRange))

	// Identical negative points leave no spread to expand.
	_, err = Scatterplot([]Point{{-2, -2}, {-2, -2}}, ScatterOptions{})
	ut.AssertEqual(t, true, errors.Is(err, ErrInvalidRange))

	_, err = Scatterplot(smallPoints, ScatterOptions{Height: -1})
	ut.AssertEqual(t, true, errors.Is(err, ErrInvalidConfig))
}

func TestExpandRange(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       []float64
		expected Range
	}{
		{[]float64{0, 10}, Range{-1, 11}},
		{[]float64{5, 15, 10}, Range{0, 16}},
		{[]float64{-20, -10}, Range{-21, -9}},
		{[]float64{5, 5}, Range{0, 5}},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, ExpandRange(line.in))
	}
}

func TestScales(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, 0.0, Linear(0, 10, 4, 0))
	ut.AssertEqual(t, 2.5, Linear(0, 10, 4, 1))
	ut.AssertEqual(t, 10.0, Linear(0, 10, 4, 4))
	ut.AssertEqual(t, 12.5, Linear(0, 10, 4, 5))

	ut.AssertEqual(t, 0.0, Log(0, 100, 2, 0))
	near := func(want, got float64) bool { return math.Abs(want-got) < 1e-9 }
	ut.AssertEqual(t, true, near(math.Sqrt(101)-1, Log(0, 100, 2, 1)))
	ut.AssertEqual(t, true, near(100, Log(0, 100, 2, 2)))
	// Ranges starting at 1 or above are not shifted.
	ut.AssertEqual(t, true, near(10, Log(1, 100, 2, 1)))
	ut.AssertEqual(t, true, near(100, Log(10, 1000, 2, 1)))
	ut.AssertEqual(t, true, near(-10, Log(-10, 10, 2, 0)))
}

func TestFormatters(t *testing.T) {
	t.Parallel()
	data := []struct {
		f        Formatter
		in       float64
		expected string
	}{
		{Num, 3.14159, "3.1"},
		{Num, -0.7, "-0.7"},
		{Num, 205.25, "205.2"},
		{Int, 2.5, "2"},
		{Int, 3.5, "4"},
		{Int, -0.3, "0"},
		{Int, -1.6, "-2"},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, line.f(line.in))
	}
}
