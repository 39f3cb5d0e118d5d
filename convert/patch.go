package convert

import (
	"fmt"

	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies patchData to docData and renders the result as target.
// Both inputs may be in any supported format; the patch is applied on
// the canonical JSON rendering. A patch whose top level is an array is
// treated as an RFC 6902 operation list, anything else as an RFC 7386
// merge patch.
func Patch(docData, patchData []byte, target format.Format, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	docJSON, err := toJSON(docData, cfg)
	if err != nil {
		return nil, err
	}
	patchNode, err := parse.Parse(patchData, cfg.parseOptions(parse.Detect(patchData))...)
	if err != nil {
		return nil, err
	}
	patchJSON, err := renderJSON(patchNode, cfg)
	if err != nil {
		return nil, err
	}
	var outJSON []byte
	if patchNode.Type == ir.ArrayType {
		ops, err := jsonpatch.DecodePatch(patchJSON)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", parse.ErrParse, err)
		}
		outJSON, err = ops.Apply(docJSON)
		if err != nil {
			return nil, err
		}
	} else {
		outJSON, err = jsonpatch.MergePatch(docJSON, patchJSON)
		if err != nil {
			return nil, err
		}
	}
	node, err := parse.Parse(outJSON, parse.ParseFormat(format.JSONFormat))
	if err != nil {
		return nil, err
	}
	out, err := render(node, target, cfg)
	if err != nil {
		return nil, err
	}
	return &Result{
		Source: format.JSONFormat,
		Target: target,
		Node:   node,
		Output: out,
	}, nil
}

func toJSON(data []byte, cfg *config) ([]byte, error) {
	source := cfg.source
	if source.IsUnknown() {
		source = parse.Detect(data)
		if source.IsUnknown() {
			return nil, fmt.Errorf("%w", parse.ErrDetect)
		}
	}
	node, err := parse.Parse(data, cfg.parseOptions(source)...)
	if err != nil {
		return nil, err
	}
	return renderJSON(node, cfg)
}

func renderJSON(node *ir.Node, cfg *config) ([]byte, error) {
	// colors would corrupt the intermediate document
	plain := &config{indent: cfg.indent}
	out, err := render(node, format.JSONFormat, plain)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
