package encode

import (
	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"
)

type EncState struct {
	indent  int
	rootTag string

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// RootTag sets the XML root element name (default "root").
func RootTag(tag string) EncodeOption {
	return func(es *EncState) {
		if tag != "" {
			es.rootTag = tag
		}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func (es *EncState) color(t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func (es *EncState) pad(indent int) string {
	n := indent * es.indent
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
