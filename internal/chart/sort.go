package chart

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// A Sorter orders bar labels. It returns a negative number when a sorts
// before b, a positive number when after, and zero to keep input order.
type Sorter func(a, b any) int

// Unsorted keeps labels in their input order.
func Unsorted(a, b any) int { return 0 }

// Identity orders labels by their natural order: numbers numerically,
// anything else by its string form. Numbers sort before non-numbers.
func Identity(a, b any) int {
	af, aok := number(a)
	bf, bok := number(b)
	switch {
	case aok && bok:
		return cmp.Compare(af, bf)
	case aok:
		return -1
	case bok:
		return 1
	}
	return Alphabetical(a, b)
}

// Alphabetical orders labels lexicographically by their string form.
func Alphabetical(a, b any) int {
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// LookupList orders labels by their position in ref. Labels missing from
// ref sort after every listed label and keep their input order.
func LookupList(ref ...any) Sorter {
	pos := func(label any) int {
		if i := slices.Index(ref, label); i >= 0 {
			return i
		}
		return len(ref) + 1
	}
	return func(a, b any) int {
		return cmp.Compare(pos(a), pos(b))
	}
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}
