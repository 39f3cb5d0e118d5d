package parse

import (
	"encoding/json"
	"strings"

	"github.com/datapivot/pivot/debug"
	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/xmltree"
)

// Detect classifies d as one of the supported formats, first match
// wins: XML looks like markup and builds a tree, JSON passes a strict
// syntax check, YAML is recognized by the colon heuristic. Detect
// never fails; unclassifiable input is UnknownFormat.
func Detect(d []byte) format.Format {
	text := strings.TrimSpace(string(d))
	if text == "" {
		return logDetect(format.UnknownFormat, "empty input")
	}
	if strings.HasPrefix(text, "<?xml") ||
		(strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">")) {
		if _, err := xmltree.Parse([]byte(text)); err == nil {
			return logDetect(format.XMLFormat, "markup envelope and well-formed tree")
		}
	}
	if json.Valid(d) {
		return logDetect(format.JSONFormat, "strict json syntax")
	}
	if strings.Contains(text, ":") &&
		!strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		return logDetect(format.YAMLFormat, "colon heuristic")
	}
	return logDetect(format.UnknownFormat, "no match")
}

func logDetect(f format.Format, why string) format.Format {
	if debug.Detect() {
		debug.Logf("detect: %s (%s)", f, why)
	}
	return f
}
