package chart

import "github.com/charmbracelet/lipgloss"

// Box character sets, ordered vertical, top-right, bottom-left,
// bottom-right, top-left, horizontal.
const (
	DefaultBoxChars = "│┐└┘┌─"
	BoldBoxChars    = "┃┓┗┛┏━"
)

// Axis glyphs
const (
	yBarGlyph  = "┃"
	yTickGlyph = "┨"
	xOrigin    = "╄"
	xBarGlyph  = "━"
	xTickGlyph = "┯"
)

const (
	DefaultMaxWidth = 80
	DefaultBarWidth = 40
	DefaultFiller   = "■"
	DefaultHeight   = 15
	DefaultWidth    = 40
	DefaultTicks    = 5
	DefaultGlyphs   = ".x*"
	DefaultUnit     = " "
)

// BoxChars converts a lipgloss border into a box character set usable as
// BorderOptions.BoxChars.
func BoxChars(b lipgloss.Border) string {
	return b.Left + b.TopRight + b.BottomLeft + b.BottomRight + b.TopLeft + b.Top
}
