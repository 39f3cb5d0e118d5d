// Package convert ties detection, parsing, and encoding together: it
// turns a document in any supported format into any other, pivoting
// through the canonical ir tree.
package convert

import (
	"bytes"
	"fmt"

	"github.com/datapivot/pivot/debug"
	"github.com/datapivot/pivot/encode"
	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/parse"
)

type config struct {
	source  format.Format
	strict  bool
	indent  int
	rootTag string
	colors  *encode.Colors
}

type Option func(*config)

// Source fixes the input format, bypassing detection.
func Source(f format.Format) Option {
	return func(c *config) { c.source = f }
}

// StrictIndent makes YAML input fail on unparseable lines instead of
// skipping them.
func StrictIndent() Option {
	return func(c *config) { c.strict = true }
}

func Indent(n int) Option {
	return func(c *config) { c.indent = n }
}

func RootTag(tag string) Option {
	return func(c *config) { c.rootTag = tag }
}

func WithColors(colors *encode.Colors) Option {
	return func(c *config) { c.colors = colors }
}

// Result is a completed conversion: the formats involved, the pivot
// tree, and the rendered output.
type Result struct {
	Source format.Format
	Target format.Format
	Node   *ir.Node
	Output string
}

// Convert renders data, in any supported format, as target. When the
// source and target formats coincide the effect is a pretty print.
func Convert(data []byte, target format.Format, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if target.IsUnknown() {
		return nil, fmt.Errorf("%w: no target format", encode.ErrEncoding)
	}
	source := cfg.source
	if source.IsUnknown() {
		source = parse.Detect(data)
		if source.IsUnknown() {
			return nil, fmt.Errorf("%w", parse.ErrDetect)
		}
	}
	if debug.Convert() {
		debug.Logf("convert: %s -> %s (%d bytes)", source, target, len(data))
	}
	node, err := parse.Parse(data, cfg.parseOptions(source)...)
	if err != nil {
		return nil, err
	}
	out, err := render(node, target, cfg)
	if err != nil {
		return nil, err
	}
	return &Result{
		Source: source,
		Target: target,
		Node:   node,
		Output: out,
	}, nil
}

// ConvertString is Convert for string input.
func ConvertString(text string, target format.Format, opts ...Option) (*Result, error) {
	return Convert([]byte(text), target, opts...)
}

// Format pretty-prints data in its own, detected format.
func Format(data []byte, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	source := cfg.source
	if source.IsUnknown() {
		source = parse.Detect(data)
		if source.IsUnknown() {
			return nil, fmt.Errorf("%w", parse.ErrDetect)
		}
	}
	// pin the source so Convert does not detect a second time
	return Convert(data, source, append(opts, Source(source))...)
}

// Detect classifies data without parsing it fully.
func Detect(data []byte) format.Format {
	return parse.Detect(data)
}

func (c *config) parseOptions(source format.Format) []parse.ParseOption {
	opts := []parse.ParseOption{parse.ParseFormat(source)}
	if c.strict {
		opts = append(opts, parse.StrictIndent())
	}
	return opts
}

func (c *config) encodeOptions(target format.Format) []encode.EncodeOption {
	opts := []encode.EncodeOption{encode.EncodeFormat(target)}
	if c.indent > 0 {
		opts = append(opts, encode.Indent(c.indent))
	}
	if c.rootTag != "" {
		opts = append(opts, encode.RootTag(c.rootTag))
	}
	if c.colors != nil {
		opts = append(opts, encode.EncodeColors(c.colors))
	}
	return opts
}

func render(node *ir.Node, target format.Format, cfg *config) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, cfg.encodeOptions(target)...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
