package main

import (
	"io"
	"os"

	"github.com/signadot/gml/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// encOpts returns the GML encoding options for writing to w. Colors are
// used when requested or, unless -color was given explicitly, when w is a
// terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Diff  bool `cli:"name=d desc='display diffs instead of formatted output'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Plain bool `cli:"name=plain desc='view without color'"`
	View  *cli.Command
}

type DumpConfig struct {
	*MainConfig

	JSON bool `cli:"name=j aliases=json desc='dump as json instead of yaml'"`
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Load *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}
