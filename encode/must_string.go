package encode

import (
	"bytes"
	"strings"

	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"
)

// MustString renders node as JSON, panicking on failure. Intended for
// tests and debug output where the node is known to be well formed.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.JSONFormat)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
