// Package encode serializes IR nodes to JSON, YAML, or XML text.
//
// # Usage
//
//	// Encode to YAML
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromNumber(30)},
//	})
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// Encode to XML with a custom root element
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.XMLFormat),
//	    encode.RootTag("person"))
//
// # Related Packages
//
//   - github.com/datapivot/pivot/ir - IR representation
//   - github.com/datapivot/pivot/parse - Parse text to IR
package encode
