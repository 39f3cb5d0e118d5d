package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// ToAny converts a node to the plain Go value encoding/json produces:
// nil, bool, float64, string, []any, map[string]any. Object key order
// is lost in the map; callers needing order must walk the node itself.
func ToAny(node *Node) any {
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case NumberType:
		return node.Number
	case StringType:
		return node.String
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Keys))
		for i, key := range node.Keys {
			res[key] = ToAny(node.Values[i])
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny converts a plain Go value to a node. Map keys are emitted in
// sorted order since Go maps carry no insertion order.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case float64:
		return FromNumber(t), nil
	case float32:
		return FromNumber(float64(t)), nil
	case int:
		return FromNumber(float64(t)), nil
	case int64:
		return FromNumber(float64(t)), nil
	case uint64:
		return FromNumber(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FromNumber(f), nil
	case string:
		return FromString(t), nil
	case []any:
		vals := make([]*Node, len(t))
		for i, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			n, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case *Node:
		return t.Clone(), nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}
