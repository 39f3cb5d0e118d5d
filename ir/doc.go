// Package ir provides the canonical in-memory value model that all
// supported document formats (JSON, YAML, XML) parse into and
// serialize from.
//
// # Overview
//
// A Node is a tagged union over Type: Null, Bool, Number, String,
// Array, Object. Numbers are float64; integer and decimal source
// notation is unified and not preserved. Objects keep their keys in
// insertion order with parallel Keys/Values slices, and keys are
// unique per object (Set is last-write-wins).
//
// Conversions between two formats always pivot through this model
// rather than translating format to format directly.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromNumber(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromNumber(30)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2)})
//
// # Constraints
//
// For ObjectType nodes, Keys[i] is the key for the value at Values[i],
// so there are always as many keys as values. ArrayType nodes use
// Values only. A Node tree has no parent pointers and no cycles; it is
// constructed fresh per conversion call and discarded after
// serialization.
//
// # Comparison
//
// Nodes compare by value, with object key order significant:
//
//	equal := ir.Compare(a, b) == 0 // or ir.Equal(a, b)
//
// # Interoperability
//
// ToAny and FromAny bridge to the plain Go values used by
// encoding/json and yaml libraries. Object key order is lost through
// the map[string]any representation, so order-sensitive code must use
// the Node tree directly.
//
// # Thread Safety
//
// Node structures are not thread-safe, but the package holds no global
// state: independent conversions may run concurrently.
//
// # Related Packages
//
//   - github.com/datapivot/pivot/parse - parses text into nodes
//   - github.com/datapivot/pivot/encode - encodes nodes to text
//   - github.com/datapivot/pivot/convert - detect/parse/encode pipeline
package ir
