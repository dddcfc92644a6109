package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderOptions configures Border and BorderLines.
type BorderOptions struct {
	// MaxWidth is the wrap width. Zero means DefaultMaxWidth, or no cap
	// when Fit is set.
	MaxWidth int
	// Fit sizes the border to the widest line instead of MaxWidth.
	Fit bool
	// BoxChars overrides DefaultBoxChars. See BoxChars.
	BoxChars string
	// Bold draws with BoldBoxChars. It cannot be combined with BoxChars.
	Bold bool
}

func (o BorderOptions) box() ([]string, error) {
	chars := o.BoxChars
	if chars == "" {
		chars = DefaultBoxChars
	}
	if o.Bold {
		if chars != DefaultBoxChars {
			return nil, fmt.Errorf("%w: cannot set both box chars and bold", ErrInvalidConfig)
		}
		chars = BoldBoxChars
	}
	box := strings.Split(chars, "")
	if len(box) != 6 {
		return nil, fmt.Errorf("%w: box chars %q must have 6 characters", ErrInvalidConfig, chars)
	}
	return box, nil
}

func (o BorderOptions) width(lines []string) (int, error) {
	if o.MaxWidth < 0 {
		return 0, fmt.Errorf("%w: negative max width %d", ErrInvalidConfig, o.MaxWidth)
	}
	if o.Fit {
		fit := maxWidth(lines) + 1
		if o.MaxWidth > 0 {
			return min(fit, o.MaxWidth), nil
		}
		return fit, nil
	}
	if o.MaxWidth > 0 {
		return o.MaxWidth, nil
	}
	return DefaultMaxWidth, nil
}

// Border draws a box around s, wrapping lines that do not fit. The result
// ends with a newline.
func Border(s string, opts BorderOptions) (string, error) {
	lines, err := BorderLines(strings.Split(s, "\n"), opts)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// BorderLines draws a box around lines and returns the boxed lines, ready
// to be composed into a larger layout.
func BorderLines(lines []string, opts BorderOptions) ([]string, error) {
	box, err := opts.box()
	if err != nil {
		return nil, err
	}
	w, err := opts.width(lines)
	if err != nil {
		return nil, err
	}
	vertical, horizontal := box[0], box[5]
	edge := strings.Repeat(horizontal, w+1)
	out := []string{box[4] + edge + box[1]}
	for _, line := range lines {
		for _, l := range wrap(line, w) {
			out = append(out, vertical+" "+justify(l, w, lipgloss.Left)+vertical)
		}
	}
	return append(out, box[2]+edge+box[3]), nil
}

// wrap greedily fills lines of at most w cells from the space separated
// words of line. Each word keeps a trailing space while it fits; words at
// least w wide are hard split into w-cell chunks.
func wrap(line string, w int) []string {
	var out []string
	cur := ""
	for _, word := range strings.Split(line, " ") {
		if cellWidth(cur)+cellWidth(word) < w {
			cur += word + " "
			continue
		}
		if cur != "" {
			out = append(out, cur)
		}
		if cellWidth(word) < w {
			cur = word + " "
			continue
		}
		chunks := splitWidth(word, w)
		out = append(out, chunks[:len(chunks)-1]...)
		cur = chunks[len(chunks)-1]
		if cellWidth(cur) < w {
			cur += " "
		}
	}
	return append(out, cur)
}
