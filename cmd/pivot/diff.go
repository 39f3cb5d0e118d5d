package main

import (
	"fmt"
	"strings"

	"github.com/datapivot/pivot/convert"
	"github.com/datapivot/pivot/format"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := diffSide(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffSide(cfg, args[1])
	if err != nil {
		return err
	}
	useColor := cfg.wantColor(cc.Out)
	for _, line := range diffLines(from, to) {
		if useColor {
			switch {
			case strings.HasPrefix(line, "-"):
				line = color.RedString("%s", line)
			case strings.HasPrefix(line, "+"):
				line = color.GreenString("%s", line)
			}
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// diffSide renders one argument in the common comparison format, so
// that documents in different notations diff over the same canonical
// text.
func diffSide(cfg *DiffConfig, arg string) (string, error) {
	in, err := readArg(arg)
	if err != nil {
		return "", err
	}
	target := cfg.outFormat()
	if target.IsUnknown() {
		target = format.YAMLFormat
	}
	opts := []convert.Option{}
	if f := cfg.inFormat(); !f.IsUnknown() {
		opts = append(opts, convert.Source(f))
	}
	if cfg.Strict {
		opts = append(opts, convert.StrictIndent())
	}
	res, err := convert.Convert(in, target, opts...)
	if err != nil {
		return "", fmt.Errorf("error converting %s: %w", arg, err)
	}
	return res.Output, nil
}

// diffLines produces unified-style lines, a line-mode character diff
// mapped back to text.
func diffLines(from, to string) []string {
	dmp := diffpatch.New()
	c1, c2, lineText := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lineText)
	res := []string{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			res = append(res, prefix+line)
		}
	}
	return res
}
