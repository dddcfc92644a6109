package chart

import "errors"

var (
	// ErrInvalidConfig reports conflicting or malformed options.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidRange reports an axis range whose max is not above its min.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNothingToRender reports a dataset that yields no bars or no binned points.
	ErrNothingToRender = errors.New("nothing to render")
	// ErrNotImplemented reports a requested mode that is not supported.
	ErrNotImplemented = errors.New("not implemented")
)
