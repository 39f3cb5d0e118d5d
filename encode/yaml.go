package encode

import (
	"strings"

	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/token"
)

// yamlRender renders a node as block-style YAML at the given nesting
// level. Container chunks carry their own leading indentation on every
// line and no trailing newline.
func yamlRender(node *ir.Node, indent int, es *EncState) string {
	switch node.Type {
	case ir.ArrayType:
		return yamlRenderArray(node, indent, es)
	case ir.ObjectType:
		return yamlRenderObject(node, indent, es)
	default:
		return es.pad(indent) + yamlScalar(node, es)
	}
}

func yamlScalar(node *ir.Node, es *EncState) string {
	switch node.Type {
	case ir.NullType:
		return es.color(ir.NullType, ValueColor, "null")
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return es.color(ir.BoolType, ValueColor, v)
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, formatNumber(node.Number))
	case ir.StringType:
		v := node.String
		if token.NeedsQuote(v) {
			v = token.Quote(v)
		}
		return es.color(ir.StringType, ValueColor, v)
	default:
		panic("type")
	}
}

func yamlRenderArray(node *ir.Node, indent int, es *EncState) string {
	if node.Len() == 0 {
		return es.pad(indent) + es.color(ir.ArrayType, SepColor, "[]")
	}
	marker := es.color(ir.ArrayType, SepColor, "-") + " "
	pad := es.pad(indent)
	lines := []string{}
	for _, v := range node.Values {
		// the item body renders relative to the marker; continuation
		// lines share the marker's two columns so the block stays
		// aligned for any indent width
		body := yamlRender(v, 0, es)
		first, rest, more := strings.Cut(body, "\n")
		lines = append(lines, pad+marker+first)
		if more {
			for _, line := range strings.Split(rest, "\n") {
				lines = append(lines, pad+"  "+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func yamlRenderObject(node *ir.Node, indent int, es *EncState) string {
	if node.Len() == 0 {
		return es.pad(indent) + es.color(ir.ObjectType, SepColor, "{}")
	}
	sep := es.color(ir.ObjectType, SepColor, ":")
	lines := make([]string, 0, node.Len())
	for i, key := range node.Keys {
		k := key
		if token.NeedsQuote(k) {
			k = token.Quote(k)
		}
		k = es.pad(indent) + es.color(ir.ObjectType, FieldColor, k) + sep
		val := node.Values[i]
		switch val.Type {
		case ir.ArrayType, ir.ObjectType:
			if val.Len() == 0 {
				lines = append(lines, k+" "+yamlRender(val, 0, es))
				continue
			}
			// non-empty containers go on the following lines, one
			// level deeper, leaving the key line bare
			lines = append(lines, k, yamlRender(val, indent+1, es))
		default:
			lines = append(lines, k+" "+yamlScalar(val, es))
		}
	}
	return strings.Join(lines, "\n")
}
