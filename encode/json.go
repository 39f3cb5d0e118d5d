package encode

import (
	"strings"

	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/token"
)

// jsonRender pretty-prints a node as JSON at the given nesting level.
// The canonical model is JSON's native tree, so this is a direct walk.
func jsonRender(node *ir.Node, indent int, es *EncState) string {
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
		return es.color(ir.StringType, ValueColor, token.Quote(node.String))
	case ir.ArrayType:
		return jsonRenderArray(node, indent, es)
	case ir.ObjectType:
		return jsonRenderObject(node, indent, es)
	default:
		panic("type")
	}
}

func jsonRenderArray(node *ir.Node, indent int, es *EncState) string {
	if node.Len() == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString(es.color(ir.ArrayType, SepColor, "["))
	for i, v := range node.Values {
		b.WriteString("\n")
		b.WriteString(es.pad(indent + 1))
		b.WriteString(jsonRender(v, indent+1, es))
		if i < node.Len()-1 {
			b.WriteString(es.color(ir.ArrayType, SepColor, ","))
		}
	}
	b.WriteString("\n")
	b.WriteString(es.pad(indent))
	b.WriteString(es.color(ir.ArrayType, SepColor, "]"))
	return b.String()
}

func jsonRenderObject(node *ir.Node, indent int, es *EncState) string {
	if node.Len() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString(es.color(ir.ObjectType, SepColor, "{"))
	for i, key := range node.Keys {
		b.WriteString("\n")
		b.WriteString(es.pad(indent + 1))
		b.WriteString(es.color(ir.ObjectType, FieldColor, token.Quote(key)))
		b.WriteString(es.color(ir.ObjectType, SepColor, ":"))
		b.WriteString(" ")
		b.WriteString(jsonRender(node.Values[i], indent+1, es))
		if i < node.Len()-1 {
			b.WriteString(es.color(ir.ObjectType, SepColor, ","))
		}
	}
	b.WriteString("\n")
	b.WriteString(es.pad(indent))
	b.WriteString(es.color(ir.ObjectType, SepColor, "}"))
	return b.String()
}
