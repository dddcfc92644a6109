package chart

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Point is an x/y pair. Duplicate points add to the density of their cell.
type Point struct {
	X, Y float64
}

// Range is an axis span. Max must be greater than Min.
type Range struct {
	Min, Max float64
}

// Bin counts points into a grid of rows+1 by cols cells. Cell (r, c) holds
// the points with colVal(c) <= x < colVal(c+1) and rowVal(r) <= y < rowVal(r+1).
// Row indices run from 0 through rows inclusive, so the top row covers the
// span just above rowVal(rows).
func Bin(points []Point, rows, cols int, rowVal, colVal func(int) float64) [][]int {
	counts := make([][]int, rows+1)
	for r := range counts {
		bottom, top := rowVal(r), rowVal(r+1)
		row := make([]int, cols)
		for c := range row {
			left, right := colVal(c), colVal(c+1)
			for _, p := range points {
				if left <= p.X && p.X < right && bottom <= p.Y && p.Y < top {
					row[c]++
				}
			}
		}
		counts[r] = row
	}
	return counts
}

// Thresholds picks n glyph thresholds from the distinct non-zero counts in
// counts by sampling the sorted counts at a fixed stride. Thresholds may
// repeat when there are fewer distinct counts than glyphs.
func Thresholds(n int, counts [][]int) ([]int, error) {
	var distinct []int
	for _, row := range counts {
		for _, c := range row {
			if c != 0 {
				distinct = append(distinct, c)
			}
		}
	}
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	if len(distinct) == 0 {
		return nil, fmt.Errorf("%w: no points fall inside the axis ranges", ErrNothingToRender)
	}
	step := float64(len(distinct)) / float64(n)
	th := make([]int, n)
	for i := range th {
		th[i] = distinct[min(int(float64(i)*step), len(distinct)-1)]
	}
	return th, nil
}

// Palette returns [unit, glyphs..., unit]: the glyph for an empty cell, one
// glyph per threshold, and the overflow glyph.
func Palette(glyphs, unit string) []string {
	g := strings.Split(glyphs, "")
	p := make([]string, 0, len(g)+2)
	p = append(p, unit)
	p = append(p, g...)
	return append(p, unit)
}

// glyphIndex counts the thresholds that count meets or exceeds.
func glyphIndex(count int, thresholds []int) int {
	n := 0
	for _, t := range thresholds {
		if count >= t {
			n++
		}
	}
	return n
}

func renderScatter(counts [][]int, pal []string, thresholds []int) []string {
	out := make([]string, len(counts))
	for r, row := range counts {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(pal[glyphIndex(c, thresholds)])
		}
		out[r] = b.String()
	}
	return out
}

// Key describes the range of counts each glyph of a Palette stands for, one line
// per glyph in use, ordered by count. A line whose lowest count repeats the
// previous line's is dropped.
func Key(counts [][]int, pal []string, thresholds []int) []string {
	type entry struct {
		glyph    string
		min, max int
		seen     bool
	}
	var entries []*entry
	byGlyph := make(map[string]*entry)
	for _, g := range pal[1 : len(pal)-1] {
		if _, ok := byGlyph[g]; !ok {
			e := &entry{glyph: g}
			byGlyph[g] = e
			entries = append(entries, e)
		}
	}
	for _, row := range counts {
		for _, c := range row {
			e, ok := byGlyph[pal[glyphIndex(c, thresholds)]]
			if !ok {
				continue
			}
			if !e.seen {
				e.min, e.max, e.seen = c, c, true
				continue
			}
			e.min = min(e.min, c)
			e.max = max(e.max, c)
		}
	}
	entries = slices.DeleteFunc(entries, func(e *entry) bool { return !e.seen })
	slices.SortFunc(entries, func(a, b *entry) int {
		if c := cmp.Compare(a.min, b.min); c != 0 {
			return c
		}
		if c := cmp.Compare(a.max, b.max); c != 0 {
			return c
		}
		return strings.Compare(a.glyph, b.glyph)
	})

	var lines []string
	for i, e := range entries {
		if i > 0 && entries[i-1].min == e.min {
			continue
		}
		switch {
		case e.min != e.max:
			lines = append(lines, fmt.Sprintf(`"%s": %d - %d points`, e.glyph, e.min, e.max))
		case e.max == 1:
			lines = append(lines, fmt.Sprintf(`"%s": %d point`, e.glyph, e.max))
		default:
			lines = append(lines, fmt.Sprintf(`"%s": %d points`, e.glyph, e.max))
		}
	}
	return lines
}
