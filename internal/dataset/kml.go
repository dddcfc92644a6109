package dataset

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"textchart/internal/chart"
)

// ReadKML returns the contents of every <coordinates> element in a KML
// document as points. KML tuples are "lon,lat[,alt]"; altitude is ignored.
func ReadKML(r io.Reader) ([]chart.Point, error) {
	dec := xml.NewDecoder(r)
	var points []chart.Point
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "coordinates" {
			continue
		}
		var coords string
		if err := dec.DecodeElement(&coords, &se); err != nil {
			return nil, err
		}
		for _, tuple := range strings.Fields(coords) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := parseFloat(vals[0])
			lat, err2 := parseFloat(vals[1])
			if err1 != nil || err2 != nil {
				continue
			}
			points = append(points, chart.Point{X: lon, Y: lat})
		}
	}
	if len(points) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return points, nil
}
