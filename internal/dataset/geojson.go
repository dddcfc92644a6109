package dataset

import (
	"encoding/json"
	"errors"
	"io"

	"textchart/internal/chart"
)

// ReadGeoJSON returns every coordinate of a GeoJSON document as points.
// Geometries, Features, FeatureCollections and GeometryCollections are
// walked; altitude is ignored.
func ReadGeoJSON(r io.Reader) ([]chart.Point, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	if t, _ := raw["type"].(string); t == "" {
		return nil, errors.New("invalid geojson: missing type")
	}
	var points []chart.Point
	var walkCoords func(v any)
	walkCoords = func(v any) {
		arr, ok := v.([]any)
		if !ok {
			return
		}
		if len(arr) >= 2 {
			x, xok := arr[0].(float64)
			y, yok := arr[1].(float64)
			if xok && yok {
				points = append(points, chart.Point{X: x, Y: y})
				return
			}
		}
		for _, el := range arr {
			walkCoords(el)
		}
	}
	var walk func(obj map[string]any)
	walk = func(obj map[string]any) {
		switch obj["type"] {
		case "Feature":
			if g, ok := obj["geometry"].(map[string]any); ok {
				walk(g)
			}
		case "FeatureCollection":
			fs, _ := obj["features"].([]any)
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					walk(fm)
				}
			}
		case "GeometryCollection":
			gs, _ := obj["geometries"].([]any)
			for _, g := range gs {
				if gm, ok := g.(map[string]any); ok {
					walk(gm)
				}
			}
		default:
			walkCoords(obj["coordinates"])
		}
	}
	walk(raw)
	if len(points) == 0 {
		return nil, errors.New("no points found in geojson")
	}
	return points, nil
}
