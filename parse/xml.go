package parse

import (
	"fmt"

	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/xmltree"
)

// AttributesKey is the reserved object key holding an element's
// attributes.
const AttributesKey = "@attributes"

func parseXML(d []byte) (*ir.Node, error) {
	root, err := xmltree.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return xmlNode(root), nil
}

// xmlNode maps one element into the canonical model. Same-named
// sibling elements become an array; a tag appearing once stays a plain
// field, which is where the xml round trip loses single-item arrays.
func xmlNode(el *xmltree.Node) *ir.Node {
	var obj *ir.Node
	if len(el.Attrs) > 0 {
		attrs := ir.NewObject()
		for _, a := range el.Attrs {
			attrs.Set(a.Name, ir.FromString(a.Value))
		}
		obj = ir.NewObject()
		obj.Set(AttributesKey, attrs)
	}

	elems := el.Elems()
	if len(elems) == 0 {
		if text := el.Text(); text != "" {
			return coerceScalar(text)
		}
		if obj != nil {
			return obj
		}
		return ir.Null()
	}

	if obj == nil {
		obj = ir.NewObject()
	}
	counts := map[string]int{}
	for _, ch := range elems {
		counts[ch.Tag]++
	}
	for _, ch := range elems {
		mapped := xmlNode(ch)
		if counts[ch.Tag] == 1 {
			obj.Set(ch.Tag, mapped)
			continue
		}
		arr := obj.Get(ch.Tag)
		if arr == nil {
			arr = ir.FromSlice(nil)
			obj.Set(ch.Tag, arr)
		}
		arr.Append(mapped)
	}
	return obj
}
