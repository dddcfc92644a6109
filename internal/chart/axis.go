package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// xLabelRows is how many stacked rows x tick labels may spread over.
const xLabelRows = 3

type axes struct {
	xTicks, yTicks int
	rowVal, colVal func(int) float64
	xFmt, yFmt     Formatter
}

// stride returns the tick spacing for n positions and ticks labels,
// rounding up so at most ticks labels are placed.
func stride(n, ticks int) int {
	return max(1, (n+ticks-1)/ticks)
}

// decorate adds y tick labels and bar on the left of scatter and the x bar
// and tick labels below it. Rows are returned bottom up: x label rows,
// x bar, then the scatter rows.
func (a axes) decorate(scatter []string) []string {
	rows := len(scatter)
	ys := stride(rows, a.yTicks)
	yAxis := make([]string, 0, rows+1)
	yAxis = append(yAxis, a.yFmt(a.rowVal(0)))
	yBar := make([]string, rows)
	for r := range scatter {
		if r == rows-1 || (r != 0 && (rows-1-r)%ys == 0) {
			yAxis = append(yAxis, a.yFmt(a.rowVal(r)))
			yBar[r] = yTickGlyph
		} else {
			yAxis = append(yAxis, "")
			yBar[r] = yBarGlyph
		}
	}
	withBar := combine(yBar, scatter, lipgloss.Right, 0)

	cols := cellWidth(withBar[0])
	xs := stride(cols, a.xTicks)
	type tick struct {
		val float64
		ok  bool
	}
	ticks := make([]tick, 0, cols+2)
	ticks = append(ticks, tick{a.colVal(0), true})
	for c := 0; c < cols; c++ {
		ticks = append(ticks, tick{a.colVal(c), c != 0 && (cols+1-c)%xs == 0})
	}
	ticks = append(ticks, tick{a.colVal(cols), true})

	var bar strings.Builder
	bar.WriteString(xOrigin)
	for _, t := range ticks[1:] {
		if t.ok {
			bar.WriteString(xTickGlyph)
		} else {
			bar.WriteString(xBarGlyph)
		}
	}

	labelRows := make([][]rune, xLabelRows)
	for i := range labelRows {
		labelRows[i] = []rune(strings.Repeat(" ", len(ticks)))
	}
	for i, t := range ticks {
		if !t.ok {
			continue
		}
		label := []rune(a.xFmt(t.val))
		for j, row := range labelRows {
			if !vacant(row, i, i+len(label)) {
				continue
			}
			labelRows[j] = place(row, i, label)
			break
		}
	}
	var xAxis []string
	for _, row := range labelRows {
		if s := string(row); strings.TrimSpace(s) != "" {
			xAxis = append(xAxis, s)
		}
	}

	body := make([]string, 0, len(xAxis)+1+len(withBar))
	body = append(body, xAxis...)
	body = append(body, bar.String())
	body = append(body, withBar...)
	yCol := append(make([]string, len(xAxis)), yAxis...)
	return combine(yCol, body, lipgloss.Right, 0)
}

// vacant reports whether row holds only spaces in [from, to).
func vacant(row []rune, from, to int) bool {
	for i := max(from, 0); i < min(to, len(row)); i++ {
		if row[i] != ' ' {
			return false
		}
	}
	return true
}

// place writes label into row at i, growing row as needed.
func place(row []rune, i int, label []rune) []rune {
	for len(row) < i+len(label) {
		row = append(row, ' ')
	}
	copy(row[i:], label)
	return row
}
