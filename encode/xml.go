package encode

import (
	"strings"

	"github.com/datapivot/pivot/ir"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// AttributesKey mirrors the reserved key the XML parser stores element
// attributes under; scalar values beneath it are restored as real
// attributes when serializing.
const AttributesKey = "@attributes"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// ItemTagName derives the element name for the items of an array
// serialized under parentTag: a trailing "s" is stripped, otherwise
// "_item" is appended. A naming heuristic only; it does not always
// singularize correctly and does not round trip.
func ItemTagName(parentTag string) string {
	if strings.HasSuffix(parentTag, "s") && len(parentTag) > 1 {
		return parentTag[:len(parentTag)-1]
	}
	return parentTag + "_item"
}

func xmlRender(node *ir.Node, tag string, indent int, es *EncState) string {
	pad := es.pad(indent)
	open, close := xmlTags(node, tag, es)
	switch node.Type {
	case ir.NullType:
		return pad + open + close
	case ir.BoolType, ir.NumberType, ir.StringType:
		return pad + open + es.color(node.Type, ValueColor, xmlEscaper.Replace(xmlText(node))) + close
	case ir.ArrayType:
		if node.Len() == 0 {
			return pad + open + close
		}
		// siblings are emitted directly under the derived item name,
		// with no wrapping element around the sequence
		itemTag := ItemTagName(tag)
		lines := make([]string, 0, node.Len())
		for _, v := range node.Values {
			lines = append(lines, xmlRender(v, itemTag, indent, es))
		}
		return strings.Join(lines, "\n")
	case ir.ObjectType:
		keys, values := node.Keys, node.Values
		if attrs := node.Get(AttributesKey); attrs != nil && attrs.Type == ir.ObjectType {
			open, close = xmlTagsWithAttrs(node, tag, attrs, es)
			keys, values = withoutKey(node, AttributesKey)
		}
		if len(keys) == 0 {
			return pad + open + close
		}
		lines := make([]string, 0, len(keys)+2)
		lines = append(lines, pad+open)
		for i, key := range keys {
			lines = append(lines, xmlRender(values[i], key, indent+1, es))
		}
		lines = append(lines, pad+close)
		return strings.Join(lines, "\n")
	default:
		panic("type")
	}
}

func xmlText(node *ir.Node) string {
	switch node.Type {
	case ir.BoolType:
		if node.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		return formatNumber(node.Number)
	default:
		return node.String
	}
}

func xmlTags(node *ir.Node, tag string, es *EncState) (string, string) {
	t := es.color(node.Type, TagColor, tag)
	return "<" + t + ">", "</" + t + ">"
}

func xmlTagsWithAttrs(node *ir.Node, tag string, attrs *ir.Node, es *EncState) (string, string) {
	t := es.color(node.Type, TagColor, tag)
	var b strings.Builder
	b.WriteString("<" + t)
	for i, name := range attrs.Keys {
		val := attrs.Values[i]
		switch val.Type {
		case ir.ObjectType, ir.ArrayType:
			// attributes hold text only; structured values under the
			// reserved key are dropped
			continue
		}
		b.WriteString(" ")
		b.WriteString(es.color(node.Type, FieldColor, name))
		b.WriteString(`="` + xmlEscaper.Replace(xmlText(val)) + `"`)
	}
	b.WriteString(">")
	return b.String(), "</" + t + ">"
}

func withoutKey(node *ir.Node, drop string) ([]string, []*ir.Node) {
	keys := make([]string, 0, len(node.Keys))
	values := make([]*ir.Node, 0, len(node.Values))
	for i, key := range node.Keys {
		if key == drop {
			continue
		}
		keys = append(keys, key)
		values = append(values, node.Values[i])
	}
	return keys, values
}
