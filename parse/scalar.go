package parse

import (
	"strconv"

	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/token"
)

// coerceScalar interprets raw scalar text as a typed value. Anything
// that is not recognizably null, bool, numeric, or quoted stays a
// string, including numeric-looking text strconv rejects.
func coerceScalar(v string) *ir.Node {
	switch v {
	case "null", "~":
		return ir.Null()
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if token.IsNumeric(v) {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return ir.FromNumber(f)
		}
		return ir.FromString(v)
	}
	if token.IsQuoted(v) {
		return ir.FromString(token.Unquote(v))
	}
	return ir.FromString(v)
}
