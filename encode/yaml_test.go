package encode

import (
	"testing"

	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestYAMLScalars(t *testing.T) {
	for _, tc := range []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), "null\n"},
		{ir.FromBool(true), "true\n"},
		{ir.FromNumber(42), "42\n"},
		{ir.FromNumber(1.5), "1.5\n"},
		{ir.FromString("plain"), "plain\n"},
		// strings that would read back as another type get quoted
		{ir.FromString("true"), "\"true\"\n"},
		{ir.FromString("42"), "\"42\"\n"},
		{ir.FromString("null"), "\"null\"\n"},
		{ir.FromString("a: b"), "\"a: b\"\n"},
		{ir.FromString("no # comment"), "\"no # comment\"\n"},
		{ir.FromString(" padded "), "\" padded \"\n"},
		{ir.FromString(""), "\"\"\n"},
	} {
		got := encodeString(t, tc.node, EncodeFormat(format.YAMLFormat))
		if got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}

func TestYAMLObject(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("alice")},
		{Key: "age", Val: ir.FromNumber(30)},
		{Key: "address", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "city", Val: ir.FromString("Berlin")},
			{Key: "zip", Val: ir.FromString("10115")},
		})},
	})
	want := `name: alice
age: 30
address:
  city: Berlin
  zip: "10115"
`
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestYAMLArrayOfObjects(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "users", Val: ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "id", Val: ir.FromNumber(1)},
				{Key: "name", Val: ir.FromString("John")},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "id", Val: ir.FromNumber(2)},
				{Key: "name", Val: ir.FromString("Jane")},
			}),
		})},
	})
	want := `users:
  - id: 1
    name: John
  - id: 2
    name: Jane
`
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestYAMLScalarArray(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.FromString("a"),
		ir.FromNumber(2),
		ir.Null(),
	})
	want := `- a
- 2
- null
`
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestYAMLNestedArrays(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromSlice([]*ir.Node{
				ir.FromNumber(1),
				ir.FromNumber(2),
			}),
		})},
	})
	want := `a:
  - - 1
    - 2
`
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

// continuation lines of an array item share the marker's two columns,
// keeping the block aligned when the indent width is not 2
func TestYAMLWideIndentAlignment(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "users", Val: ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "id", Val: ir.FromNumber(1)},
				{Key: "name", Val: ir.FromString("John")},
			}),
		})},
	})
	want := "users:\n    - id: 1\n      name: John\n"
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat), Indent(4))
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestYAMLEmptyContainers(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "obj", Val: ir.NewObject()},
		{Key: "arr", Val: ir.FromSlice(nil)},
	})
	want := `obj: {}
arr: []
`
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

// normalizeYAML collapses the oracle decoder's number and map types so
// documents can be compared structurally.
func normalizeYAML(v any) any {
	switch vv := v.(type) {
	case uint64:
		return float64(vv)
	case int64:
		return float64(vv)
	case int:
		return float64(vv)
	case []any:
		res := make([]any, len(vv))
		for i := range vv {
			res[i] = normalizeYAML(vv[i])
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(vv))
		for k := range vv {
			res[k] = normalizeYAML(vv[k])
		}
		return res
	default:
		return v
	}
}

// the output must read back, via an independent decoder, as the same
// document that was encoded
func TestYAMLOutputOracle(t *testing.T) {
	nodes := []*ir.Node{
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "name", Val: ir.FromString("alice")},
			{Key: "scores", Val: ir.FromSlice([]*ir.Node{
				ir.FromNumber(1),
				ir.FromNumber(2.5),
			})},
			{Key: "active", Val: ir.FromBool(true)},
			{Key: "note", Val: ir.FromString("42")},
			{Key: "nested", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "deep", Val: ir.FromKeyVals([]ir.KeyVal{
					{Key: "leaf", Val: ir.Null()},
				})},
			})},
		}),
		ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "id", Val: ir.FromNumber(1)},
				{Key: "tags", Val: ir.FromSlice([]*ir.Node{
					ir.FromString("x"),
					ir.FromString("y"),
				})},
			}),
		}),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "matrix", Val: ir.FromSlice([]*ir.Node{
				ir.FromSlice([]*ir.Node{
					ir.FromNumber(1),
					ir.FromNumber(2),
				}),
				ir.FromSlice([]*ir.Node{
					ir.FromNumber(3),
				}),
			})},
		}),
	}
	for _, node := range nodes {
		out := encodeString(t, node, EncodeFormat(format.YAMLFormat))
		var got any
		if err := yaml.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("oracle rejected %q: %v", out, err)
		}
		want := ir.ToAny(node)
		if d := cmp.Diff(want, normalizeYAML(got)); d != "" {
			t.Errorf("oracle mismatch for %q: %s", out, d)
		}
	}
}
