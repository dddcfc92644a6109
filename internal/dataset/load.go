package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"textchart/internal/chart"
)

// Formats understood by Read.
const (
	CSV     = "csv"
	WKT     = "wkt"
	GeoJSON = "geojson"
	KML     = "kml"
)

// FormatOf guesses a point format from a file extension, defaulting to CSV.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return GeoJSON
	case ".kml":
		return KML
	case ".wkt":
		return WKT
	}
	return CSV
}

// Read parses points in the given format.
func Read(r io.Reader, format string) ([]chart.Point, error) {
	switch format {
	case CSV:
		return ReadCSV(r)
	case GeoJSON:
		return ReadGeoJSON(r)
	case KML:
		return ReadKML(r)
	case WKT:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return ParseWKT(string(data))
	}
	return nil, errors.New("unsupported format: " + format)
}

// Load reads points from the file at path, choosing the format by extension.
func Load(path string) ([]chart.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, FormatOf(path))
}
