// Command textchart renders bordered text, bar graphs and scatterplots as
// plain text.
//
// Usage:
//
//	textchart border [flags] [file]
//	textchart bar [flags] [file]
//	textchart scatter [flags] [file]
//
// Input is read from file, or stdin when no file is given. bar reads
// label,value CSV rows. scatter reads points as CSV, WKT, GeoJSON or KML,
// chosen by file extension or -format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"textchart/internal/chart"
	"textchart/internal/dataset"
)

func main() {
	log.SetPrefix("textchart: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}
	var (
		out string
		err error
	)
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "border":
		out, err = runBorder(args)
	case "bar":
		out, err = runBar(args)
	case "scatter":
		out, err = runScatter(args)
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.TrimSuffix(out, "\n"))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s border|bar|scatter [flags] [file]\n", os.Args[0])
	os.Exit(2)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [flags] [file]\n", os.Args[0], name)
		fs.PrintDefaults()
	}
	return fs
}

// open returns the single file argument, or stdin.
func open(fs *flag.FlagSet) (io.ReadCloser, string, error) {
	switch fs.NArg() {
	case 0:
		return io.NopCloser(os.Stdin), "", nil
	case 1:
		f, err := os.Open(fs.Arg(0))
		return f, fs.Arg(0), err
	}
	fs.Usage()
	os.Exit(2)
	return nil, "", nil
}

func runBorder(args []string) (string, error) {
	fs := newFlagSet("border")
	var (
		flagWidth = fs.Int("width", chart.DefaultMaxWidth, "wrap text at `cells`")
		flagFit   = fs.Bool("fit", false, "fit the border to the text")
		flagBold  = fs.Bool("bold", false, "draw a bold border")
		flagBox   = fs.String("box", "", "border `style`: normal, thick, rounded, double, or six chars ordered vertical, top-right, bottom-left, bottom-right, top-left, horizontal")
	)
	fs.Parse(args)
	r, _, err := open(fs)
	if err != nil {
		return "", err
	}
	defer r.Close()
	text, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return chart.Border(strings.TrimSuffix(string(text), "\n"), chart.BorderOptions{
		MaxWidth: *flagWidth,
		Fit:      *flagFit,
		Bold:     *flagBold,
		BoxChars: boxChars(*flagBox),
	})
}

// boxChars maps a lipgloss border name to its box character set. Anything
// else is taken as a literal set.
func boxChars(name string) string {
	switch name {
	case "normal":
		return chart.BoxChars(lipgloss.NormalBorder())
	case "thick":
		return chart.BoxChars(lipgloss.ThickBorder())
	case "rounded":
		return chart.BoxChars(lipgloss.RoundedBorder())
	case "double":
		return chart.BoxChars(lipgloss.DoubleBorder())
	}
	return name
}

func runBar(args []string) (string, error) {
	fs := newFlagSet("bar")
	var (
		flagFiller   = fs.String("filler", chart.DefaultFiller, "bar filler `string`")
		flagSort     = fs.String("sort", "alpha", "label order: alpha, identity, none, or a comma separated list of labels")
		flagWidth    = fs.Int("width", chart.DefaultBarWidth, "length of the longest bar in `cells`")
		flagNoValues = fs.Bool("novalues", false, "omit values after the bars")
		flagBorder   = fs.Bool("border", false, "draw a border")
		flagTitle    = fs.String("title", "", "graph `title`")
	)
	fs.Parse(args)
	r, _, err := open(fs)
	if err != nil {
		return "", err
	}
	defer r.Close()
	pairs, err := dataset.ReadPairs(r)
	if err != nil {
		return "", err
	}
	return chart.BarGraph(pairs, chart.BarOptions{
		Filler:     *flagFiller,
		Sort:       sorter(*flagSort),
		MaxWidth:   *flagWidth,
		HideValues: *flagNoValues,
		Border:     *flagBorder,
		Title:      *flagTitle,
	})
}

func sorter(name string) chart.Sorter {
	switch name {
	case "alpha":
		return chart.Alphabetical
	case "identity":
		return chart.Identity
	case "none":
		return chart.Unsorted
	}
	var ref []any
	for _, l := range strings.Split(name, ",") {
		ref = append(ref, strings.TrimSpace(l))
	}
	return chart.LookupList(ref...)
}

func runScatter(args []string) (string, error) {
	fs := newFlagSet("scatter")
	var (
		flagFormat = fs.String("format", "", "input `format`: csv, wkt, geojson, kml (default: by extension, csv for stdin)")
		flagHeight = fs.Int("height", chart.DefaultHeight, "plot height in `rows`")
		flagWidth  = fs.Int("width", chart.DefaultWidth, "plot width in `columns`")
		flagXRange = fs.String("xrange", "", "x axis `min,max` (default: from data)")
		flagYRange = fs.String("yrange", "", "y axis `min,max` (default: from data)")
		flagLogX   = fs.Bool("logx", false, "logarithmic x axis")
		flagLogY   = fs.Bool("logy", false, "logarithmic y axis")
		flagIntX   = fs.Bool("intx", false, "label x ticks as integers")
		flagIntY   = fs.Bool("inty", false, "label y ticks as integers")
		flagXLabel = fs.String("xlabel", "", "x axis `label`")
		flagYLabel = fs.String("ylabel", "", "y axis `label`")
		flagGlyphs = fs.String("glyphs", chart.DefaultGlyphs, "density `glyphs`, sparsest first")
		flagXTicks = fs.Int("xticks", chart.DefaultTicks, "number of x axis ticks")
		flagYTicks = fs.Int("yticks", chart.DefaultTicks, "number of y axis ticks")
		flagNoKey  = fs.Bool("nokey", false, "omit the glyph key")
		flagTitle  = fs.String("title", "", "plot `title`")
		flagBorder = fs.Bool("border", false, "draw a border")
		flagV      = fs.Bool("v", false, "log dataset details")
	)
	fs.Parse(args)
	r, name, err := open(fs)
	if err != nil {
		return "", err
	}
	defer r.Close()
	format := *flagFormat
	if format == "" {
		format = dataset.FormatOf(name)
	}
	points, err := dataset.Read(r, format)
	if err != nil {
		return "", err
	}

	opts := chart.ScatterOptions{
		Height:  *flagHeight,
		Width:   *flagWidth,
		XLabel:  unescape(*flagXLabel),
		YLabel:  unescape(*flagYLabel),
		Glyphs:  *flagGlyphs,
		XTicks:  *flagXTicks,
		YTicks:  *flagYTicks,
		HideKey: *flagNoKey,
		Title:   *flagTitle,
		Border:  *flagBorder,
	}
	if opts.XRange, err = parseRange(*flagXRange); err != nil {
		return "", err
	}
	if opts.YRange, err = parseRange(*flagYRange); err != nil {
		return "", err
	}
	if *flagLogX {
		opts.XScale = chart.Log
	}
	if *flagLogY {
		opts.YScale = chart.Log
	}
	if *flagIntX {
		opts.XFormatter = chart.Int
	}
	if *flagIntY {
		opts.YFormatter = chart.Int
	}
	if *flagV {
		log.Printf("read %d points (%s)", len(points), format)
		if xr, yr, err := opts.Ranges(points); err == nil {
			log.Printf("x range [%g, %g], y range [%g, %g]", xr.Min, xr.Max, yr.Min, yr.Max)
		}
	}
	return chart.Scatterplot(points, opts)
}

func parseRange(s string) (*chart.Range, error) {
	if s == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("bad range %q: want min,max", s)
	}
	var (
		rng        chart.Range
		err1, err2 error
	)
	rng.Min, err1 = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	rng.Max, err2 = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err := errors.Join(err1, err2); err != nil {
		return nil, fmt.Errorf("bad range %q: %w", s, err)
	}
	return &rng, nil
}

// unescape lets multi-line labels be given as "a\nb" on the command line.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
