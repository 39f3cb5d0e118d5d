package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Detect  bool
	Parse   bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Detect = boolEnv("PIVOT_DEBUG_DETECT")
	d.Parse = boolEnv("PIVOT_DEBUG_PARSE")
	d.Convert = boolEnv("PIVOT_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Detect() bool {
	return d.Detect
}
func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
