package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datapivot/pivot/convert"
	"github.com/datapivot/pivot/encode"
	"github.com/datapivot/pivot/format"

	"github.com/scott-cotton/cli"
)

func pivotMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y, cfg.X) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml] -x[ml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

// docSep separates documents in multi-document streams, both on input
// and output.
var docSep = []byte("\n---\n")

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

// eachDoc runs f over every document of every argument, writing the
// separator between results. Without arguments the input is stdin.
func eachDoc(cc *cli.Context, args []string, f func(doc []byte) (string, error)) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	first := true
	for _, arg := range args {
		in, err := readArg(arg)
		if err != nil {
			return err
		}
		for i, doc := range bytes.Split(in, docSep) {
			out, err := f(doc)
			if err != nil {
				return fmt.Errorf("error processing %s document %d: %w", arg, i+1, err)
			}
			if !first {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if _, err := io.WriteString(cc.Out, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func runConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	target := cfg.outFormat()
	if target.IsUnknown() {
		return fmt.Errorf("%w: convert requires an output format (-O, -j, -y or -x)", cli.ErrUsage)
	}
	opts := cfg.convertOpts(cc.Out)
	return eachDoc(cc, args, func(doc []byte) (string, error) {
		res, err := convert.Convert(doc, target, opts...)
		if err != nil {
			return "", err
		}
		return res.Output, nil
	})
}

func runFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.convertOpts(cc.Out)
	return eachDoc(cc, args, func(doc []byte) (string, error) {
		res, err := convert.Format(doc, opts...)
		if err != nil {
			return "", err
		}
		return res.Output, nil
	})
}

func runDetect(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		in, err := readArg(arg)
		if err != nil {
			return err
		}
		f := convert.Detect(in)
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, f)
			continue
		}
		fmt.Fprintf(cc.Out, "%s\n", f)
	}
	return nil
}

func runView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	// view is fmt with color forced on
	cfg.Color = true
	opts := cfg.convertOpts(cc.Out)
	target := cfg.outFormat()
	return eachDoc(cc, args, func(doc []byte) (string, error) {
		var (
			res *convert.Result
			err error
		)
		if target.IsUnknown() {
			res, err = convert.Format(doc, opts...)
		} else {
			res, err = convert.Convert(doc, target, opts...)
		}
		if err != nil {
			return "", err
		}
		return res.Output, nil
	})
}

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	var patchData []byte
	switch {
	case cfg.Defines.Len() > 0:
		// -e defines form the merge patch themselves
		patchData = []byte(encode.MustString(cfg.Defines))
	case len(args) == 0:
		return fmt.Errorf("%w: patch requires a patch document or -e defines", cli.ErrUsage)
	case cfg.String:
		patchData = []byte(args[0])
		args = args[1:]
	default:
		patchData, err = readArg(args[0])
		if err != nil {
			return err
		}
		args = args[1:]
	}
	opts := cfg.convertOpts(cc.Out)
	return eachDoc(cc, args, func(doc []byte) (string, error) {
		target := cfg.outFormat()
		if target.IsUnknown() {
			target = convert.Detect(doc)
			if target.IsUnknown() {
				target = format.JSONFormat
			}
		}
		res, err := convert.Patch(doc, patchData, target, opts...)
		if err != nil {
			return "", err
		}
		return res.Output, nil
	})
}
