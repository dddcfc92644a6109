package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"textchart/internal/chart"
)

// ReadCSV reads points from CSV. Columns are found by header name:
// x|lon|lng|long|longitude and y|lat|latitude (case-insensitive). Without
// such a header the first two columns are x and y. Rows that do not parse
// are skipped.
func ReadCSV(r io.Reader) ([]chart.Point, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	rows := recs[1:]
	if idxX == -1 || idxY == -1 {
		idxX, idxY = 0, 1
		rows = recs
	}
	var points []chart.Point
	for _, row := range rows {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := parseFloat(row[idxX])
		y, err2 := parseFloat(row[idxY])
		if err1 != nil || err2 != nil {
			continue
		}
		points = append(points, chart.Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}
	return points, nil
}

// ReadPairs reads label,value rows from CSV. A first row whose value does
// not parse is taken as a header.
func ReadPairs(r io.Reader) ([]chart.LabelValue, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var pairs []chart.LabelValue
	for i, row := range recs {
		if len(row) < 2 {
			continue
		}
		v, err := parseFloat(row[1])
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, errors.New("csv: line " + strconv.Itoa(i+1) + ": bad value " + strconv.Quote(row[1]))
		}
		pairs = append(pairs, chart.LabelValue{Label: strings.TrimSpace(row[0]), Value: v})
	}
	if len(pairs) == 0 {
		return nil, errors.New("csv: no label,value rows")
	}
	return pairs, nil
}

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	return recs, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
