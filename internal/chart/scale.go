package chart

import "math"

// A ScaleFunc returns the axis value at step n of an axis divided into
// steps between lo and hi.
type ScaleFunc func(lo, hi float64, steps, n int) float64

// Linear interpolates evenly between lo and hi.
func Linear(lo, hi float64, steps, n int) float64 {
	return lo + float64(n)*((hi-lo)/float64(steps))
}

// Log interpolates evenly in log10 space. Ranges reaching below 1 are
// shifted up to start at 1 before taking logs and shifted back after.
func Log(lo, hi float64, steps, n int) float64 {
	var rescale float64
	if lo < 1 {
		rescale = 1 - lo
	}
	exp := Linear(math.Log10(lo+rescale), math.Log10(hi+rescale), steps, n)
	return math.Pow(10, exp) - rescale
}
