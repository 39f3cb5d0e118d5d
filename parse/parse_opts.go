package parse

import "github.com/datapivot/pivot/format"

type parseOpts struct {
	format       format.Format
	strictIndent bool
}

type ParseOption func(*parseOpts)

// ParseFormat fixes the input format, bypassing detection.
func ParseFormat(f format.Format) ParseOption {
	return func(po *parseOpts) { po.format = f }
}

// StrictIndent makes the YAML scanner fail with ErrParse on lines that
// match no production instead of skipping them.
func StrictIndent() ParseOption {
	return func(po *parseOpts) { po.strictIndent = true }
}
