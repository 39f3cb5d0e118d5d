package ir

import (
	"maps"
	"slices"
)

// Node is the canonical value every supported format parses into and
// serializes from. It is a tagged union over Type: exactly one of the
// payload fields is meaningful for a given Type.
//
// Objects keep Keys[i] naming Values[i], in insertion order. Arrays use
// Values only. Trees carry no parent pointers and no cycles; a tree is
// built by one parse call and consumed by one encode call.
type Node struct {
	Type   Type
	Keys   []string
	Values []*Node

	String string
	Bool   bool
	Number float64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromNumber(v float64) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs. Duplicate
// keys are last-write-wins, keeping the first occurrence's position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromMap builds an object with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// Get returns the value under field, or nil if absent or if y is not
// an object.
func (y *Node) Get(field string) *Node {
	for i, key := range y.Keys {
		if key == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set sets field to val, replacing in place when the key is already
// present (last-write-wins, position preserved).
func (y *Node) Set(field string, val *Node) {
	if val == nil {
		val = Null()
	}
	for i, key := range y.Keys {
		if key == field {
			y.Values[i] = val
			return
		}
	}
	y.Keys = append(y.Keys, field)
	y.Values = append(y.Values, val)
}

// Append appends val to an array node.
func (y *Node) Append(val *Node) {
	if val == nil {
		val = Null()
	}
	y.Values = append(y.Values, val)
}

// Len returns the number of entries of an object or array, 0 otherwise.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Keys != nil {
		res.Keys = slices.Clone(y.Keys)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree in document order, calling f twice per node,
// pre- and post-order. A false pre-order return skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
