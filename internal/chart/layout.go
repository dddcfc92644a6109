package chart

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cellWidth reports how many terminal cells s occupies.
func cellWidth(s string) int {
	return lipgloss.Width(s)
}

// justify pads s with spaces to n cells. Strings already n cells or wider
// are returned unchanged.
func justify(s string, n int, pos lipgloss.Position) string {
	return lipgloss.PlaceHorizontal(n, pos, s)
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, cellWidth(l))
	}
	return w
}

// combine joins a[i] and b[i] side by side, justifying every a[i] to the
// widest entry of a plus margin. The shorter slice is padded with empty
// strings.
func combine(a, b []string, pos lipgloss.Position, margin int) []string {
	n := max(len(a), len(b))
	w := maxWidth(a) + margin
	out := make([]string, n)
	for i := range out {
		var left, right string
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}
		out[i] = justify(left, w, pos) + right
	}
	return out
}

// splitWidth breaks s into pieces no wider than w cells.
func splitWidth(s string, w int) []string {
	var (
		out []string
		b   strings.Builder
		n   int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if n > 0 && n+rw > w {
			out = append(out, b.String())
			b.Reset()
			n = 0
		}
		b.WriteRune(r)
		n += rw
	}
	if b.Len() > 0 || len(out) == 0 {
		out = append(out, b.String())
	}
	return out
}

func trimRight(lines []string) []string {
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	return lines
}
