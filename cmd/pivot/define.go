package main

import (
	"fmt"
	"strings"

	"github.com/datapivot/pivot/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func defineOptTypeFunc(doc *ir.Node) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		if err := defineFunc(doc, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// defineFunc sets a dotted path in doc to a value given on the command
// line; the value is read with yaml syntax so `-e debug=true` and
// `-e replicas=3` come out typed.
func defineFunc(doc *ir.Node, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected path=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	cur := doc
	for i, part := range parts {
		if i == len(parts)-1 {
			cur.Set(part, node)
			break
		}
		next := cur.Get(part)
		if next == nil || next.Type != ir.ObjectType {
			next = ir.NewObject()
			cur.Set(part, next)
		}
		cur = next
	}
	return nil
}
