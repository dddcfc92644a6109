package chart

import (
	"math"
	"strconv"
)

// A Formatter renders an axis tick value.
type Formatter func(float64) string

// Num formats v with one decimal place.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Int formats v rounded to the nearest integer, halves to even.
func Int(v float64) string {
	r := math.RoundToEven(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
