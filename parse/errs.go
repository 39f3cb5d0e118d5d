package parse

import "errors"

var (
	// ErrParse reports malformed input for the detected format.
	ErrParse = errors.New("parse error")
	// ErrDetect reports input whose format could not be classified.
	ErrDetect = errors.New("could not detect format")
)
