// Package parse turns JSON, YAML, or XML text into canonical ir nodes,
// detecting the input format when it is not fixed by an option.
package parse

import (
	"fmt"

	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"
)

// Parse parses d into a canonical node. Without a ParseFormat option
// the format is detected first; undetectable input fails with
// ErrDetect, malformed input for a known format with ErrParse.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	fmat := pOpts.format
	if fmat.IsUnknown() {
		fmat = Detect(d)
	}
	switch fmat {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d, pOpts)
	case format.XMLFormat:
		return parseXML(d)
	default:
		return nil, fmt.Errorf("%w", ErrDetect)
	}
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}
