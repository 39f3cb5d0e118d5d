package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"
)

// Encode writes node to w in the format selected by the options. The
// serializers are total over the node value space; the only error
// sources are the writer and a missing or unknown format option.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:  2,
		rootTag: "root",
	}
	for _, opt := range opts {
		opt(es)
	}
	var out string
	switch es.format {
	case format.JSONFormat:
		out = jsonRender(node, 0, es)
	case format.YAMLFormat:
		out = yamlRender(node, 0, es)
	case format.XMLFormat:
		out = xmlDeclaration + "\n" + xmlRender(node, es.rootTag, 0, es)
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrEncoding, es.format)
	}
	return writeString(w, out+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// formatNumber renders the unified float64 number model: integral
// values print without a decimal point.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
