package parse

import (
	"fmt"
	"strings"

	"github.com/datapivot/pivot/debug"
	"github.com/datapivot/pivot/ir"
	"github.com/datapivot/pivot/token"
)

// The YAML scanner works line by line over an explicit stack of open
// containers. Each frame records the indentation column of the line
// that opened it; a line indented at or below that column closes the
// frame. The root frame sits at indent -1 and is never popped.
type yamlFrame struct {
	node    *ir.Node
	indent  int
	isArray bool
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	lines := strings.Split(string(d), "\n")

	first, ok := firstContent(lines, 0)
	if !ok {
		return ir.Null(), nil
	}
	_, content := splitIndent(lines[first])
	content = stripLineComment(content)
	if !isArrayItem(content) && !strings.Contains(content, ":") {
		// a bare scalar document
		return coerceScalar(strings.TrimSpace(content)), nil
	}

	var root *ir.Node
	if isArrayItem(content) {
		root = ir.FromSlice(nil)
	} else {
		root = ir.NewObject()
	}
	stack := []yamlFrame{{node: root, indent: -1, isArray: root.Type == ir.ArrayType}}

	for i := first; i < len(lines); i++ {
		indent, content := splitIndent(lines[i])
		if content == "" || content[0] == '#' {
			continue
		}
		content = stripLineComment(content)
		if content == "" {
			continue
		}
		for len(stack) > 1 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		top := &stack[len(stack)-1]

		switch {
		case isArrayItem(content):
			if !top.isArray {
				if err := skipLine(opts, i, "array item outside a sequence"); err != nil {
					return nil, err
				}
				continue
			}
			rem := strings.TrimSpace(strings.TrimPrefix(content, "-"))
			dashCol := indent
			// each further "- " on the same line opens a nested
			// sequence; its items continue at the marker column + 2
			for isArrayItem(rem) {
				inner := ir.FromSlice(nil)
				top.node.Append(inner)
				stack = append(stack, yamlFrame{node: inner, indent: dashCol, isArray: true})
				top = &stack[len(stack)-1]
				dashCol += 2
				rem = strings.TrimSpace(strings.TrimPrefix(rem, "-"))
			}
			switch {
			case rem == "":
				item := ir.NewObject()
				top.node.Append(item)
				stack = append(stack, yamlFrame{node: item, indent: dashCol})
			case strings.Contains(rem, ":"):
				key, val, _ := strings.Cut(rem, ":")
				item := ir.NewObject()
				item.Set(token.Unquote(strings.TrimSpace(key)), coerceScalar(strings.TrimSpace(val)))
				top.node.Append(item)
				// keys on following deeper lines extend this item
				stack = append(stack, yamlFrame{node: item, indent: dashCol})
			default:
				top.node.Append(coerceScalar(rem))
			}

		case strings.Contains(content, ":"):
			if top.isArray {
				if err := skipLine(opts, i, "mapping entry inside a sequence"); err != nil {
					return nil, err
				}
				continue
			}
			key, val, _ := strings.Cut(content, ":")
			key = token.Unquote(strings.TrimSpace(key))
			val = strings.TrimSpace(val)
			if val != "" {
				top.node.Set(key, coerceScalar(val))
				continue
			}
			// an empty value opens a container; the next contentful
			// line decides whether it is a sequence or a mapping
			if j, ok := firstContent(lines, i+1); ok {
				nIndent, nContent := splitIndent(lines[j])
				if nIndent > indent && isArrayItem(stripLineComment(nContent)) {
					arr := ir.FromSlice(nil)
					top.node.Set(key, arr)
					stack = append(stack, yamlFrame{node: arr, indent: indent, isArray: true})
					continue
				}
			}
			obj := ir.NewObject()
			top.node.Set(key, obj)
			stack = append(stack, yamlFrame{node: obj, indent: indent})

		default:
			if err := skipLine(opts, i, "unrecognized line"); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

func isArrayItem(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// splitIndent returns the indentation width and the line's content
// with trailing whitespace removed.
func splitIndent(line string) (int, string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i, strings.TrimRight(line[i:], " \t\r")
}

// firstContent returns the index of the first line at or after start
// that is neither blank nor comment-only.
func firstContent(lines []string, start int) (int, bool) {
	for i := start; i < len(lines); i++ {
		_, content := splitIndent(lines[i])
		if content == "" || content[0] == '#' {
			continue
		}
		return i, true
	}
	return 0, false
}

// stripLineComment removes a trailing "# ..." comment. A hash inside
// quotes or glued to preceding text (as in anchors of URLs) is kept.
func stripLineComment(content string) string {
	var quote byte
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			if i == 0 || content[i-1] == ' ' || content[i-1] == '\t' {
				return strings.TrimRight(content[:i], " \t")
			}
		}
	}
	return content
}

func skipLine(opts *parseOpts, i int, why string) error {
	if opts.strictIndent {
		return fmt.Errorf("%w: line %d: %s", ErrParse, i+1, why)
	}
	if debug.Parse() {
		debug.Logf("yaml: skipping line %d: %s", i+1, why)
	}
	return nil
}
