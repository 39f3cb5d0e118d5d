// Package xmltree builds a minimal document tree from XML markup.
//
// The tree keeps exactly what the conversion engine needs: tag names,
// attribute order, and interleaved text and element children. Comments,
// processing instructions, and directives are discarded while parsing.
// The tree is an internal staging structure; it does not survive the
// mapping into the canonical value model.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMarkup = errors.New("malformed xml")

type Attr struct {
	Name  string
	Value string
}

// Child holds either a text run or an element node. Elem is nil for
// text.
type Child struct {
	Text string
	Elem *Node
}

func (c Child) IsText() bool { return c.Elem == nil }

// Node is one element: its tag, attributes in document order, and
// children in document order with text and elements intermixed.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []Child
}

// Text returns the concatenation of the node's direct text children,
// trimmed.
func (n *Node) Text() string {
	var b strings.Builder
	for _, c := range n.Children {
		if c.IsText() {
			b.WriteString(c.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// Elems returns the node's element children in document order.
func (n *Node) Elems() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if !c.IsText() {
			res = append(res, c.Elem)
		}
	}
	return res
}

// Parse builds the tree for a single-rooted XML document. The error
// wraps ErrMarkup and carries the underlying decoder message.
func Parse(d []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		stack []*Node
		root  *Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMarkup, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("%w: multiple root elements", ErrMarkup)
			}
			node := &Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, Child{Elem: node})
			}
			stack = append(stack, node)
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = top
			}
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("%w: text outside root element", ErrMarkup)
				}
				continue
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, Child{Text: string(t)})
		case xml.Comment, xml.ProcInst, xml.Directive:
			// not represented in the tree
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMarkup)
	}
	return root, nil
}
