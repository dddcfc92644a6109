package dataset

import (
	"errors"
	"strings"

	"textchart/internal/chart"
)

// ParseWKT returns the vertices of a WKT geometry as points.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON, MULTIPOLYGON.
func ParseWKT(wkt string) ([]chart.Point, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "POINT"),
		strings.HasPrefix(up, "MULTIPOINT"),
		strings.HasPrefix(up, "LINESTRING"),
		strings.HasPrefix(up, "MULTILINESTRING"),
		strings.HasPrefix(up, "POLYGON"),
		strings.HasPrefix(up, "MULTIPOLYGON"):
	default:
		return nil, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: unbalanced parentheses")
	}
	// Ring and member boundaries do not matter for vertices.
	body := strings.NewReplacer("(", " ", ")", " ").Replace(s[i+1 : j])
	var points []chart.Point
	for _, tup := range strings.Split(body, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := parseFloat(parts[0])
		y, err2 := parseFloat(parts[1])
		if err1 != nil || err2 != nil {
			continue
		}
		points = append(points, chart.Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return points, nil
}
