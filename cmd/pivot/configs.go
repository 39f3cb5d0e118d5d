package main

import (
	"fmt"
	"io"
	"os"

	"github.com/datapivot/pivot/convert"
	"github.com/datapivot/pivot/encode"
	"github.com/datapivot/pivot/format"
	"github.com/datapivot/pivot/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='fail on unparseable yaml lines'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`

	Root string `cli:"name=root desc='xml root element name'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) ioFormat() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.X:
		return format.XMLFormat
	}
	return format.UnknownFormat
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.ioFormat()
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.ioFormat()
}

// convertOpts assembles the conversion options shared by all
// subcommands; w is the destination, consulted for terminal color
// detection.
func (cfg *MainConfig) convertOpts(w io.Writer) []convert.Option {
	res := []convert.Option{}
	if f := cfg.inFormat(); !f.IsUnknown() {
		res = append(res, convert.Source(f))
	}
	if cfg.Strict {
		res = append(res, convert.StrictIndent())
	}
	if cfg.Indent > 0 {
		res = append(res, convert.Indent(cfg.Indent))
	}
	if cfg.Root != "" {
		res = append(res, convert.RootTag(cfg.Root))
	}
	if cfg.wantColor(w) {
		res = append(res, convert.WithColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) wantColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as a literal document'"`

	Defines *ir.Node

	Patch *cli.Command
}
