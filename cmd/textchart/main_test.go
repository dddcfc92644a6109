package main

import (
	"testing"

	"github.com/maruel/ut"

	"textchart/internal/chart"
)

func TestParseRange(t *testing.T) {
	t.Parallel()
	r, err := parseRange("")
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, (*chart.Range)(nil), r)

	r, err = parseRange("-1.5, 10")
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, chart.Range{Min: -1.5, Max: 10}, *r)

	for i, in := range []string{"1", "a,2", "1,b"} {
		_, err := parseRange(in)
		ut.AssertEqualIndex(t, i, true, err != nil)
	}
}

func TestSorter(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, 0, sorter("none")("b", "a"))
	ut.AssertEqual(t, -1, sorter("alpha")("a", "b"))
	ut.AssertEqual(t, 1, sorter("identity")(2, 1))
	ut.AssertEqual(t, -1, sorter("b, a")("b", "a"))
	ut.AssertEqual(t, 1, sorter("b,a")("z", "a"))
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, "number of\nunits", unescape(`number of\nunits`))
}

func TestBoxChars(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"normal", chart.DefaultBoxChars},
		{"thick", chart.BoldBoxChars},
		{"rounded", "│╮╰╯╭─"},
		{"double", "║╗╚╝╔═"},
		{"abcdef", "abcdef"},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, boxChars(line.in))
	}

	got, err := chart.Border("x", chart.BorderOptions{Fit: true, BoxChars: boxChars("double")})
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, "╔═══╗\n║ x ║\n╚═══╝\n", got)
}
